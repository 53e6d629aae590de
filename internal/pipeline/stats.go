package pipeline

// RunStats tracks per-outcome counters across a run.
type RunStats struct {
	Total      int // Entries listed in the directory.
	Renamed    int // Renamed, or would be renamed in a dry run.
	Foreign    int // Name lacks the screenshot prefix.
	Canonical  int // Already normalized.
	Unparsed   int // Screenshot prefix but no recognizable timestamp.
	Collisions int // Target already exists or was claimed earlier in the run.
}

// Skipped returns the number of entries left untouched.
func (s *RunStats) Skipped() int {
	return s.Foreign + s.Canonical + s.Unparsed + s.Collisions
}

// Record bumps the counter for a decision's action.
func (s *RunStats) Record(a Action) {
	switch a {
	case ActionRename:
		s.Renamed++
	case ActionSkipForeign:
		s.Foreign++
	case ActionSkipCanonical:
		s.Canonical++
	case ActionSkipUnparsed:
		s.Unparsed++
	case ActionSkipExists:
		s.Collisions++
	}
}
