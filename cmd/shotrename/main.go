// Command shotrename renames OS-generated screenshot files in a single
// directory to the sortable form Screenshot_YYYY_MM_DD_HHMMSS.jpg.
//
// With no arguments it scans ~/Screenshots. It is safe to run repeatedly,
// e.g. from cron or launchd: already-renamed files are skipped.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/backmassage/shotrename/internal/check"
	"github.com/backmassage/shotrename/internal/config"
	"github.com/backmassage/shotrename/internal/logging"
	"github.com/backmassage/shotrename/internal/pipeline"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "1.0.0"
	commit  = "unknown"
)

// errReported marks failures already written through the logger so main
// does not print them a second time.
var errReported = errors.New("reported")

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg := config.DefaultConfig()
	cmd := newRootCmd(&cfg)
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "shotrename: %v\n", err)
		}
		return 1
	}
	return 0
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	var flags *config.Flags
	cmd := &cobra.Command{
		Use:   "shotrename [dir]",
		Short: "Rename screenshots to Screenshot_YYYY_MM_DD_HHMMSS.jpg",
		Long: `shotrename renames screenshots such as

  Screenshot 2026-01-22 at 6.38.05 PM.jpg
  Screenshot 2026-01-22 at 18.38.05.jpg

to Screenshot_2026_01_22_183805.jpg in place. Only the given directory is
scanned (default: ~/Screenshots). Files that are already renamed, that do
not look like screenshots, or whose new name is taken are left alone.`,
		Version:       fmt.Sprintf("%s (%s)", version, commit),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			config.ApplyFlags(cfg, flags, args)
			return execute(cfg)
		},
	}
	flags = config.BindFlags(cmd, cfg)
	return cmd
}

// execute runs after flag parsing. Until the logger exists errors are
// returned for main to print; afterwards they go through the logger.
func execute(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.NewLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Close()

	if cfg.CheckOnly {
		if !check.RunCheck(cfg, log) {
			return errReported
		}
		return nil
	}

	if cfg.DryRun {
		log.Warn("DRY RUN: no files will be renamed")
	}

	// Cancel on SIGINT/SIGTERM so the run stops between files.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if _, err := pipeline.Run(ctx, cfg, log); err != nil {
		log.Error("%v", err)
		return errReported
	}
	return nil
}
