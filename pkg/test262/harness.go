package test262

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Harness holds the preloaded harness sources: sta.js (defines
// Test262Error), assert.js, and the named include files a test may request.
type Harness struct {
	Assert   string
	Sta      string
	Includes map[string]string
}

// LoadHarness reads every file under <root>/harness.
func LoadHarness(root string) (*Harness, error) {
	dir := filepath.Join(root, "harness")
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("harness: read %s: %w", dir, err)
	}

	h := &Harness{Includes: make(map[string]string)}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".js") {
			continue
		}
		src, err := ReadSource(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("harness: %w", err)
		}
		switch entry.Name() {
		case "assert.js":
			h.Assert = src
		case "sta.js":
			h.Sta = src
		default:
			h.Includes[entry.Name()] = src
		}
	}

	if h.Assert == "" || h.Sta == "" {
		return nil, fmt.Errorf("harness: %s is missing assert.js or sta.js", dir)
	}
	return h, nil
}

// Include returns the source of a named include file.
func (h *Harness) Include(name string) (string, bool) {
	src, ok := h.Includes[name]
	return src, ok
}
