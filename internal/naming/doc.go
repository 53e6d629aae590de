// Package naming recognizes screenshot filenames and builds their canonical
// sortable form.
//
// Two source shapes are understood, both produced by the OS screenshot tool:
//
//	Screenshot 2026-01-22 at 6.38.05 PM.jpg   (12-hour, with meridiem)
//	Screenshot 2026-01-22 at 18.38.05.jpg     (24-hour)
//
// and both map to
//
//	Screenshot_2026_01_22_183805.jpg
//
// Names already in that form are reported by [IsCanonical] so callers can
// skip them, which makes repeated runs no-ops. [Claims] resolves several
// sources mapping to one target within a run: first one wins.
package naming
