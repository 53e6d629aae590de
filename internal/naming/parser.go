package naming

import "strings"

// Meridiem is the AM/PM marker of a 12-hour timestamp.
type Meridiem string

const (
	MeridiemNone Meridiem = ""   // 24-hour timestamp.
	MeridiemAM   Meridiem = "AM" // Before noon.
	MeridiemPM   Meridiem = "PM" // Noon and after.
)

// Timestamp holds the fields captured from a screenshot name. All fields are
// kept as the digits that appeared in the name; only Hour is reinterpreted
// by [Timestamp.Hour24].
type Timestamp struct {
	Year     string
	Month    string
	Day      string
	Hour     string // 1 or 2 digits.
	Minute   string
	Second   string
	Meridiem Meridiem
}

// IsScreenshot reports whether name carries the screenshot prefix.
func IsScreenshot(name string) bool {
	return strings.HasPrefix(name, Prefix)
}

// IsCanonical reports whether name is already in the normalized form.
func IsCanonical(name string) bool {
	return reCanonical.MatchString(name)
}

// ParseTimestamp extracts the timestamp from an OS-generated screenshot name.
// The second result is false when no timestamp is found.
func ParseTimestamp(name string) (Timestamp, bool) {
	m := reTimestamp.FindStringSubmatch(name)
	if m == nil {
		return Timestamp{}, false
	}
	return Timestamp{
		Year:     m[1],
		Month:    m[2],
		Day:      m[3],
		Hour:     m[4],
		Minute:   m[5],
		Second:   m[6],
		Meridiem: Meridiem(m[7]),
	}, true
}

// Hour24 returns the hour on a 24-hour clock. Without a meridiem the hour is
// assumed to be 24-hour already and is returned as parsed.
func (t Timestamp) Hour24() int {
	h := atoi(t.Hour)
	switch t.Meridiem {
	case MeridiemPM:
		if h < 12 {
			h += 12
		}
	case MeridiemAM:
		if h == 12 {
			h = 0
		}
	}
	return h
}
