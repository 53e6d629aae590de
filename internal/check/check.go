// Package check provides the --check report: whether the target directory
// is usable and what a run would do to it. Nothing is renamed.
package check

import (
	"errors"
	"io/fs"
	"os"

	"github.com/backmassage/shotrename/internal/config"
	"github.com/backmassage/shotrename/internal/naming"
	"github.com/backmassage/shotrename/internal/pipeline"
)

// ErrNotDirectory is returned by [Survey] when the target path exists but is
// not a directory.
var ErrNotDirectory = errors.New("target path is not a directory")

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// Report summarizes what a run over Dir would do.
type Report struct {
	Dir     string
	Exists  bool
	Pending []pipeline.Decision // Entries a run would rename, in listing order.
	Stats   pipeline.RunStats   // Counters as a dry run would produce them.
}

// Survey inspects dir without modifying it. A missing dir yields a Report
// with Exists false and no error, matching the run's no-op behavior.
func Survey(dir string) (Report, error) {
	r := Report{Dir: dir}

	fi, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return r, nil
		}
		return r, err
	}
	if !fi.IsDir() {
		return r, ErrNotDirectory
	}
	r.Exists = true

	names, err := pipeline.Discover(dir)
	if err != nil {
		return r, err
	}
	r.Stats.Total = len(names)

	claims := naming.NewClaims()
	for _, name := range names {
		d := pipeline.Resolve(dir, pipeline.Plan(name), claims)
		r.Stats.Record(d.Action)
		if d.Action == pipeline.ActionRename {
			r.Pending = append(r.Pending, d)
		}
	}
	return r, nil
}

// RunCheck logs the survey of cfg.Dir. It returns false only when the
// directory exists but cannot be inspected.
func RunCheck(cfg *config.Config, log Logger) bool {
	log.Info("=== Directory Check ===")
	log.Info("Target: %s", cfg.Dir)

	r, err := Survey(cfg.Dir)
	if err != nil {
		log.Error("Cannot inspect target: %v", err)
		return false
	}
	if !r.Exists {
		log.Warn("Directory not found (runs will do nothing)")
		return true
	}

	log.Success("Directory found: %d entries", r.Stats.Total)
	log.Info("  Pending renames:      %d", r.Stats.Renamed)
	log.Info("  Already canonical:    %d", r.Stats.Canonical)
	log.Info("  Unrecognized names:   %d", r.Stats.Unparsed)
	log.Info("  Target already taken: %d", r.Stats.Collisions)
	log.Info("  Other files:          %d", r.Stats.Foreign)
	for _, d := range r.Pending {
		log.Debug(cfg.Verbose, "  %s -> %s", d.Name, d.Target)
	}
	return true
}
