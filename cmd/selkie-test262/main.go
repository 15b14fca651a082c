package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"selkie/internal/logger"
	"selkie/pkg/test262"
)

func main() {
	var (
		suitePath  = flag.String("path", "", "Path to the test262 checkout")
		subPath    = flag.String("subpath", "", "Subdirectory within test/ (e.g. 'built-ins/Function')")
		ignoreFile = flag.String("ignore", "", "File listing test names to skip")
		enginePath = flag.String("engine", "", "Engine binary invoked as '<engine> [args] file.js'")
		engineArgs = flag.String("engine-args", "", "Space-separated extra arguments for the engine")
		timeout    = flag.Duration("timeout", 10*time.Second, "Timeout per test")
		limit      = flag.Int("limit", 0, "Limit number of test files (0 = no limit)")
		verbose    = flag.Bool("verbose", false, "Log every test, not only failures")
		noColor    = flag.Bool("no-color", false, "Disable colored output")
		clone      = flag.Bool("clone", false, "Clone the suite into -path before running")
		cloneURL   = flag.String("clone-url", test262.DefaultSuiteURL, "Suite repository URL for -clone")
	)
	flag.Parse()

	logger.Init(*verbose, *noColor)

	if *suitePath == "" {
		fmt.Fprintf(os.Stderr, "Usage: %s -path /path/to/test262 -engine /path/to/engine\n", os.Args[0])
		os.Exit(1)
	}

	if *clone {
		log.Info("cloning suite", "url", *cloneURL, "dir", *suitePath)
		if err := test262.CloneSuite(context.Background(), *cloneURL, *suitePath, os.Stderr); err != nil {
			log.Fatal("clone failed", "err", err)
		}
	}

	if *enginePath == "" {
		log.Fatal("no engine binary given, use -engine")
	}

	var extraArgs []string
	if *engineArgs != "" {
		extraArgs = strings.Fields(*engineArgs)
	}
	factory := func() (test262.Engine, error) {
		return &test262.CommandEngine{Path: *enginePath, Args: extraArgs}, nil
	}

	runner, err := test262.NewRunner(test262.Config{
		Root:       *suitePath,
		SubPath:    *subPath,
		IgnorePath: *ignoreFile,
		Timeout:    *timeout,
		Limit:      *limit,
		Verbose:    *verbose,
	}, factory)
	if err != nil {
		log.Fatal("runner setup failed", "err", err)
	}

	result, err := runner.Run()
	if err != nil {
		log.Fatal("run failed", "err", err)
	}

	printSummary(&result)

	if result.Failed > 0 || result.Crashed > 0 {
		os.Exit(1)
	}
}

func printSummary(result *test262.SuiteResult) {
	fmt.Printf("\n=== Test262 Summary ===\n")
	fmt.Printf("Total:       %d\n", result.Total)
	fmt.Printf("Passed:      %d\n", result.Passed)
	fmt.Printf("Failed:      %d\n", result.Failed)
	fmt.Printf("Ignored:     %d\n", result.Ignored)
	fmt.Printf("Crashed:     %d\n", result.Crashed)
	fmt.Printf("Conformance: %.2f%%\n", result.Conformance())
	fmt.Printf("=======================\n")
}
