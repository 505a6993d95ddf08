package password

import (
	"os"
	"strings"
	"sync"
)

// newBlacklist returns a compute-once loader for the blacklist file. The
// load runs at most once per process lifetime of the Validator; both the
// result and a load failure are memoized and shared by all waiters.
func newBlacklist(path string) func() (map[string]struct{}, error) {
	if path == "" {
		empty := map[string]struct{}{}
		return func() (map[string]struct{}, error) { return empty, nil }
	}

	return sync.OnceValues(func() (map[string]struct{}, error) {
		return loadBlacklist(path)
	})
}

func loadBlacklist(path string) (map[string]struct{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	list := make(map[string]struct{})
	for _, line := range strings.Split(string(data), "\n") {
		entry := strings.TrimRight(line, "\r")
		if entry == "" {
			continue
		}
		list[entry] = struct{}{}
	}
	return list, nil
}
