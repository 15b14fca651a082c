package test262

import (
	"bufio"
	"os"
	"strings"
)

// IgnoreList is the set of test names excluded from a run. It is loaded
// once from an explicitly configured file and passed into the runner; there
// is no process-wide state.
type IgnoreList struct {
	names map[string]struct{}
}

// LoadIgnoreList reads one test name per line; blank lines and lines
// starting with // are skipped. An empty path yields an empty list.
func LoadIgnoreList(path string) (*IgnoreList, error) {
	list := &IgnoreList{names: make(map[string]struct{})}
	if path == "" {
		return list, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		list.names[line] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

func (l *IgnoreList) Contains(name string) bool {
	if l == nil {
		return false
	}
	_, ok := l.names[name]
	return ok
}

func (l *IgnoreList) Len() int {
	if l == nil {
		return 0
	}
	return len(l.names)
}
