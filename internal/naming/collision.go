package naming

import "sync"

// Claims tracks target names handed out during a single run. The first
// source to claim a target owns it; later sources mapping to the same target
// are refused. This keeps dry runs consistent with real runs, where the
// first rename makes the target exist on disk. All methods are
// goroutine-safe.
type Claims struct {
	mu     sync.Mutex
	owners map[string]string // target name → source name that owns it
}

// NewClaims creates a ready-to-use claim set.
func NewClaims() *Claims {
	return &Claims{owners: make(map[string]string)}
}

// Claim records source as the owner of target. It returns false when a
// different source already owns target.
func (c *Claims) Claim(source, target string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	owner, exists := c.owners[target]
	if exists && owner != source {
		return false
	}
	c.owners[target] = source
	return true
}

// Owner returns the source that claimed target, if any.
func (c *Claims) Owner(target string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	owner, ok := c.owners[target]
	return owner, ok
}
