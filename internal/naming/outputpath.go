package naming

import "fmt"

// CanonicalName builds the sortable target name for ts:
//
//	Screenshot_<YYYY>_<MM>_<DD>_<HH><MM><SS>.jpg
//
// HH is the 24-hour hour zero-padded to two digits; minute and second are
// copied verbatim.
func CanonicalName(ts Timestamp) string {
	return fmt.Sprintf("%s_%s_%s_%s_%02d%s%s%s",
		Prefix, ts.Year, ts.Month, ts.Day, ts.Hour24(), ts.Minute, ts.Second, Extension)
}
