package pipeline

import (
	"os"
	"path/filepath"

	"github.com/backmassage/shotrename/internal/naming"
)

// Action is the outcome decided for one directory entry.
type Action int

const (
	ActionRename        Action = iota // Rename to Decision.Target.
	ActionSkipForeign                 // Not a screenshot.
	ActionSkipCanonical               // Already normalized.
	ActionSkipUnparsed                // No recognizable timestamp.
	ActionSkipExists                  // Target taken; first one wins.
)

func (a Action) String() string {
	switch a {
	case ActionRename:
		return "rename"
	case ActionSkipForeign:
		return "foreign"
	case ActionSkipCanonical:
		return "canonical"
	case ActionSkipUnparsed:
		return "unparsed"
	case ActionSkipExists:
		return "exists"
	default:
		return "unknown"
	}
}

// Decision pairs an entry name with its planned action. Target is set only
// when a timestamp was parsed.
type Decision struct {
	Name   string
	Target string
	Action Action
}

// Plan decides what to do with name from the name alone. It never touches
// the filesystem, so a rename decision may still be refused by [Resolve].
func Plan(name string) Decision {
	d := Decision{Name: name}
	switch {
	case !naming.IsScreenshot(name):
		d.Action = ActionSkipForeign
		return d
	case naming.IsCanonical(name):
		d.Action = ActionSkipCanonical
		return d
	}

	ts, ok := naming.ParseTimestamp(name)
	if !ok {
		d.Action = ActionSkipUnparsed
		return d
	}
	d.Target = naming.CanonicalName(ts)
	d.Action = ActionRename
	return d
}

// Resolve downgrades a rename decision to ActionSkipExists when the target
// already exists in dir or was claimed by an earlier entry of this run.
// Other decisions are returned unchanged. Existing targets are never
// overwritten.
func Resolve(dir string, d Decision, claims *naming.Claims) Decision {
	if d.Action != ActionRename {
		return d
	}
	if _, err := os.Lstat(filepath.Join(dir, d.Target)); err == nil {
		d.Action = ActionSkipExists
		return d
	}
	if !claims.Claim(d.Name, d.Target) {
		d.Action = ActionSkipExists
	}
	return d
}
