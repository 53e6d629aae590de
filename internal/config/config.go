// Package config holds runtime configuration: defaults, CLI flag binding, and
// validation. There is no configuration file; every setting has a default
// that can be overridden from the command line.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// DefaultDirName is the folder under the user's home directory that is
// scanned when no directory argument is given.
const DefaultDirName = "Screenshots"

// ErrEmptyDir is returned by [Config.Validate] when no target directory is set.
var ErrEmptyDir = errors.New("target directory must not be empty")

// Config holds all runtime settings. It is populated by [DefaultConfig] and
// then mutated by [ApplyFlags] before being passed (by pointer) to packages
// that need it.
type Config struct {
	// Dir is the single directory scanned per run. Default: ~/Screenshots.
	Dir string

	// Behavior flags.
	DryRun    bool // Log planned renames without touching the filesystem.
	CheckOnly bool // Run --check diagnostics and exit.

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
}

// DefaultConfig returns a Config targeting [DefaultDir].
func DefaultConfig() Config {
	return Config{
		Dir:       DefaultDir(),
		ColorMode: ColorAuto,
	}
}

// DefaultDir returns the home-relative screenshots folder. When the home
// directory cannot be resolved it falls back to "~/Screenshots" unexpanded,
// which will simply not exist and make the run a no-op.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join("~", DefaultDirName)
	}
	return filepath.Join(home, DefaultDirName)
}

// ExpandHome replaces a leading "~" or "~/" with the user's home directory.
// Paths such as "~other/x" are returned unchanged.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks the color mode and requires a non-empty directory.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}
	if strings.TrimSpace(c.Dir) == "" {
		return ErrEmptyDir
	}
	return nil
}
