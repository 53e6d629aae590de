package config

// This file binds CLI flags onto a cobra command.
// Negated flags (--no-color) are applied after parsing so Config defaults hold unless set.

import (
	"github.com/spf13/cobra"
)

// Flags holds flag values that are not stored directly in Config. They either
// override a default (--color / --no-color) or carry positional arguments.
type Flags struct {
	forceColor bool
	noColor    bool
}

// BindFlags registers all flags on cmd, writing plain values straight into
// cfg. The returned Flags must be passed to [ApplyFlags] once cobra has parsed
// the command line.
func BindFlags(cmd *cobra.Command, cfg *Config) *Flags {
	f := &Flags{}
	fs := cmd.Flags()

	fs.BoolVarP(&cfg.DryRun, "dry-run", "d", false, "Log planned renames without touching any file")
	fs.BoolVarP(&cfg.CheckOnly, "check", "c", false, "Report directory status and pending renames, then exit")
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Verbose output (log skipped entries)")
	fs.StringVarP(&cfg.LogFile, "log", "l", "", "Append logs to file")
	fs.BoolVar(&f.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&f.noColor, "no-color", false, "Disable colored logs")

	cmd.MarkFlagsMutuallyExclusive("color", "no-color")
	return f
}

// ApplyFlags copies negated flag values into cfg and sets Dir from the
// optional positional argument. "~" is expanded and trailing slashes are
// stripped.
func ApplyFlags(cfg *Config, f *Flags, args []string) {
	if f.noColor {
		cfg.ColorMode = ColorNever
	} else if f.forceColor {
		cfg.ColorMode = ColorAlways
	}

	if len(args) > 0 && args[0] != "" {
		cfg.Dir = ExpandHome(NormalizeDirArg(args[0]))
	}
}
