package naming

import (
	"regexp"
	"strconv"
	"strings"
)

// Prefix is the literal every screenshot name starts with.
const Prefix = "Screenshot"

// Extension is appended to every canonical name regardless of the source
// file's extension.
const Extension = ".jpg"

// reCanonical matches names that are already normalized:
// Screenshot_YYYY_MM_DD_HHMMSS.jpg
var reCanonical = regexp.MustCompile(`^Screenshot_[0-9]{4}_[0-9]{2}_[0-9]{2}_[0-9]{6}\.jpg$`)

// reTimestamp captures the OS-generated timestamp anywhere in a name, e.g.
// "2026-01-22 at 6.38.05 PM" or "2026-01-22 at 18.38.05". Whitespace includes
// Unicode space separators: recent macOS puts U+202F before AM/PM.
var reTimestamp = regexp.MustCompile(
	`([0-9]{4})-([0-9]{2})-([0-9]{2})[\s\p{Zs}]+at[\s\p{Zs}]+([0-9]{1,2})\.([0-9]{2})\.([0-9]{2})[\s\p{Zs}]*(AM|PM)?`)

func atoi(s string) int {
	n, _ := strconv.Atoi(strings.TrimSpace(s))
	return n
}
