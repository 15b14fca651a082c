package test262

import (
	"context"
	"fmt"
	"io"
	"os"

	git "github.com/go-git/go-git/v5"
)

// DefaultSuiteURL is the upstream conformance suite repository.
const DefaultSuiteURL = "https://github.com/tc39/test262"

// CloneSuite fetches a shallow checkout of the suite into dir. An existing
// checkout is left untouched.
func CloneSuite(ctx context.Context, url, dir string, progress io.Writer) error {
	if url == "" {
		url = DefaultSuiteURL
	}
	if _, err := os.Stat(dir); err == nil {
		return fmt.Errorf("test262: %s already exists", dir)
	}

	_, err := git.PlainCloneContext(ctx, dir, false, &git.CloneOptions{
		URL:      url,
		Depth:    1,
		Progress: progress,
	})
	if err != nil {
		_ = os.RemoveAll(dir)
		return fmt.Errorf("git clone %s: %w", url, err)
	}
	return nil
}
