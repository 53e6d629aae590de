package pipeline

import "os"

// Discover returns the names of the direct entries of dir. It does not
// recurse and does not filter; deciding what to do with each name is
// [Plan]'s job. A missing dir is reported as an error wrapping
// fs.ErrNotExist.
func Discover(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names, nil
}
