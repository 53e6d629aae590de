package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/backmassage/shotrename/internal/config"
	"github.com/backmassage/shotrename/internal/logging"
	"github.com/backmassage/shotrename/internal/naming"
)

// Run is the top-level entry point. It lists cfg.Dir once and processes each
// entry in listing order. A missing directory is not an error: there is
// simply nothing to do. The first failed rename aborts the run and is
// returned; everything already renamed stays renamed, and a later run picks
// up where this one stopped.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger) (RunStats, error) {
	var stats RunStats

	names, err := Discover(cfg.Dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debug(cfg.Verbose, "Directory not found, nothing to do: %s", cfg.Dir)
			return stats, nil
		}
		return stats, fmt.Errorf("list %s: %w", cfg.Dir, err)
	}

	stats.Total = len(names)
	claims := naming.NewClaims()
	log.Debug(cfg.Verbose, "Scanning %d entries in %s", stats.Total, cfg.Dir)

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			log.Warn("Interrupted")
			return stats, err
		}
		if err := processEntry(cfg, log, Resolve(cfg.Dir, Plan(name), claims), &stats); err != nil {
			return stats, err
		}
	}

	logSummary(cfg, log, &stats)
	return stats, nil
}

// processEntry applies one decision. Only a failed rename returns an error.
func processEntry(cfg *config.Config, log *logging.Logger, d Decision, stats *RunStats) error {
	switch d.Action {
	case ActionRename:
		// handled below
	case ActionSkipExists:
		log.Debug(cfg.Verbose, "Skip (exists): %s -> %s", d.Name, d.Target)
		stats.Record(d.Action)
		return nil
	default:
		log.Debug(cfg.Verbose, "Skip (%s): %s", d.Action, d.Name)
		stats.Record(d.Action)
		return nil
	}

	log.Info("Renaming: %s -> %s", d.Name, d.Target)
	if cfg.DryRun {
		log.Success("[DRY] Would rename")
		stats.Record(d.Action)
		return nil
	}

	oldPath := filepath.Join(cfg.Dir, d.Name)
	newPath := filepath.Join(cfg.Dir, d.Target)
	if err := os.Rename(oldPath, newPath); err != nil {
		return fmt.Errorf("rename %s -> %s: %w", d.Name, d.Target, err)
	}
	stats.Record(d.Action)
	return nil
}

// logSummary stays quiet for runs that changed nothing unless verbose, so a
// scheduled run over a tidy folder prints nothing.
func logSummary(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	if stats.Renamed == 0 {
		log.Debug(cfg.Verbose, "Done: nothing to rename (%d skipped)", stats.Skipped())
		return
	}
	verb := "renamed"
	if cfg.DryRun {
		verb = "would be renamed"
	}
	log.Info("Done: %d %s, %d skipped", stats.Renamed, verb, stats.Skipped())
	log.Debug(cfg.Verbose, "  canonical: %d, unparsed: %d, collisions: %d, other files: %d",
		stats.Canonical, stats.Unparsed, stats.Collisions, stats.Foreign)
}
