package test262

import (
	"context"
	goerrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	errorsPkg "selkie/pkg/errors"
	"selkie/pkg/vm"
)

// Config carries everything a run needs. It is constructed explicitly by
// the caller; the runner keeps no ambient state.
type Config struct {
	// Root is the test262 checkout; tests live under Root/test, harness
	// files under Root/harness.
	Root string
	// SubPath restricts the run to a subdirectory of Root/test.
	SubPath string
	// IgnorePath names a file listing tests to skip, one per line.
	IgnorePath string
	// Timeout bounds one test run; zero means 10s.
	Timeout time.Duration
	// Limit stops the run after N tests; zero means no limit.
	Limit   int
	Verbose bool
}

// Runner walks a test262 checkout, runs every test through the configured
// engine and classifies the outcomes.
type Runner struct {
	cfg       Config
	harness   *Harness
	ignored   *IgnoreList
	newEngine EngineFactory
	logger    *log.Logger
	ran       int
}

func NewRunner(cfg Config, factory EngineFactory) (*Runner, error) {
	if factory == nil {
		return nil, fmt.Errorf("test262: engine factory is required")
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}

	harness, err := LoadHarness(cfg.Root)
	if err != nil {
		return nil, err
	}
	ignored, err := LoadIgnoreList(cfg.IgnorePath)
	if err != nil {
		return nil, fmt.Errorf("test262: load ignore list: %w", err)
	}

	return &Runner{
		cfg:       cfg,
		harness:   harness,
		ignored:   ignored,
		newEngine: factory,
		logger:    log.Default().With("component", "test262"),
	}, nil
}

// Run executes the configured slice of the suite and returns the aggregated
// result tree.
func (r *Runner) Run() (SuiteResult, error) {
	start := filepath.Join(r.cfg.Root, "test")
	if r.cfg.SubPath != "" {
		start = filepath.Join(start, filepath.FromSlash(r.cfg.SubPath))
	}
	if _, err := os.Stat(start); err != nil {
		return SuiteResult{}, fmt.Errorf("test262: suite directory: %w", err)
	}

	r.ran = 0
	root := filepath.Join(r.cfg.Root, "test")
	result, err := r.runSuite(start, root)
	if err != nil {
		return SuiteResult{}, err
	}
	r.logger.Info("run finished",
		"total", result.Total, "passed", result.Passed, "failed", result.Failed,
		"ignored", result.Ignored, "crashed", result.Crashed)
	return result, nil
}

func (r *Runner) runSuite(dir, root string) (SuiteResult, error) {
	name, err := filepath.Rel(root, dir)
	if err != nil || name == "." {
		name = filepath.Base(dir)
	}
	suite := SuiteResult{Name: filepath.ToSlash(name)}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return suite, fmt.Errorf("test262: read %s: %w", dir, err)
	}

	for _, entry := range entries {
		if r.limitReached() {
			break
		}
		path := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			child, err := r.runSuite(path, root)
			if err != nil {
				return suite, err
			}
			suite.merge(child)
			continue
		}
		if !strings.HasSuffix(entry.Name(), ".js") || strings.HasSuffix(entry.Name(), "_FIXTURE.js") {
			continue
		}
		for _, result := range r.runTest(path, root) {
			if r.cfg.Verbose || result.Outcome == Failed || result.Outcome == Crashed {
				r.logger.Info(result.Outcome.String(),
					"test", result.Name, "strict", result.Strict, "output", result.Output)
			}
			suite.record(result)
		}
		r.ran++
	}
	return suite, nil
}

func (r *Runner) limitReached() bool {
	return r.cfg.Limit > 0 && r.ran >= r.cfg.Limit
}

// runTest runs one file in every mode its flags request.
func (r *Runner) runTest(path, root string) []TestResult {
	name, err := filepath.Rel(root, path)
	if err != nil {
		name = path
	}
	name = strings.TrimSuffix(filepath.ToSlash(name), ".js")

	src, err := ReadSource(path)
	if err != nil {
		return []TestResult{{Name: name, Outcome: Crashed, Output: err.Error()}}
	}
	meta, err := ParseMetadata(src)
	if err != nil {
		return []TestResult{{Name: name, Outcome: Crashed, Output: err.Error()}}
	}

	if r.ignored.Contains(name) || meta.Async() || meta.Module() {
		return []TestResult{{Name: name, Outcome: Ignored}}
	}

	var results []TestResult
	for _, strict := range modes(meta) {
		results = append(results, r.runOnce(name, src, meta, strict))
	}
	return results
}

// modes decides which strictness variants to run: raw and noStrict tests
// run sloppy only, onlyStrict tests run strict only, everything else runs
// both.
func modes(meta Metadata) []bool {
	switch {
	case meta.Raw(), meta.NoStrict():
		return []bool{false}
	case meta.OnlyStrict():
		return []bool{true}
	default:
		return []bool{true, false}
	}
}

type evalResult struct {
	value    vm.Value
	err      error
	panicked bool
	panicMsg string
}

func (r *Runner) runOnce(name, src string, meta Metadata, strict bool) TestResult {
	result := TestResult{Name: name, Strict: strict}
	start := time.Now()
	defer func() { result.Duration = time.Since(start) }()

	full, err := r.assemble(src, meta, strict)
	if err != nil {
		result.Outcome = Crashed
		result.Output = err.Error()
		return result
	}

	ctx, cancel := context.WithTimeout(context.Background(), r.cfg.Timeout)
	defer cancel()

	resultChan := make(chan evalResult, 1)
	go func() {
		defer func() {
			if rec := recover(); rec != nil {
				resultChan <- evalResult{panicked: true, panicMsg: fmt.Sprint(rec)}
			}
		}()
		engine, err := r.newEngine()
		if err != nil {
			resultChan <- evalResult{err: err, panicked: true, panicMsg: err.Error()}
			return
		}
		value, err := engine.Eval(full)
		resultChan <- evalResult{value: value, err: err}
	}()

	select {
	case eval := <-resultChan:
		r.classify(&result, meta, eval)
	case <-ctx.Done():
		result.Outcome = Failed
		result.Output = fmt.Sprintf("timed out after %v", r.cfg.Timeout)
	}
	return result
}

// assemble builds the single source the engine evaluates: strict prelude,
// sta.js, assert.js, requested includes, then the test body. Raw tests run
// the body alone.
func (r *Runner) assemble(src string, meta Metadata, strict bool) (string, error) {
	if meta.Raw() {
		return src, nil
	}

	var b strings.Builder
	if strict {
		b.WriteString("\"use strict\";\n")
	}
	b.WriteString(r.harness.Sta)
	b.WriteString("\n")
	b.WriteString(r.harness.Assert)
	b.WriteString("\n")
	for _, inc := range meta.Includes {
		incSrc, ok := r.harness.Include(inc)
		if !ok {
			return "", fmt.Errorf("test262: missing include file %s", inc)
		}
		b.WriteString(incSrc)
		b.WriteString("\n")
	}
	b.WriteString(src)
	return b.String(), nil
}

// classify maps one evaluation to an outcome. A recovered panic is a crash
// (an engine defect, never a pass or a fail). A language-level error is an
// "uncaught" outcome matched against the test's expectation.
func (r *Runner) classify(result *TestResult, meta Metadata, eval evalResult) {
	if eval.panicked {
		result.Outcome = Crashed
		result.Output = eval.panicMsg
		return
	}

	if eval.err == nil {
		if meta.Negative != nil {
			result.Outcome = Failed
			result.Output = fmt.Sprintf("expected %s but test completed", meta.Negative.Type)
			return
		}
		result.Outcome = Passed
		result.Output = eval.value.Inspect()
		return
	}

	uncaught := fmt.Sprintf("Uncaught %s", eval.err.Error())
	if meta.Negative == nil {
		result.Outcome = Failed
		result.Output = uncaught
		return
	}

	if meta.Negative.Phase == PhaseParse {
		var engineErr errorsPkg.EngineError
		if goerrors.As(eval.err, &engineErr) && engineErr.Kind() == "Syntax" {
			result.Outcome = Passed
			result.Output = uncaught
			return
		}
		result.Outcome = Failed
		result.Output = fmt.Sprintf("expected SyntaxError, got: %s", uncaught)
		return
	}

	// Resolution/runtime phase: any language-level error satisfies the
	// expectation; matching the precise error type is the engine's concern.
	result.Outcome = Passed
	result.Output = uncaught
}
