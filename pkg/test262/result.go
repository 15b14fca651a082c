package test262

import "time"

// Outcome classifies one test run. Crashed is distinct from Failed: a crash
// is an engine defect (recovered panic), not a wrong answer.
type Outcome int

const (
	Passed Outcome = iota
	Failed
	Ignored
	Crashed
)

func (o Outcome) String() string {
	switch o {
	case Passed:
		return "passed"
	case Failed:
		return "failed"
	case Ignored:
		return "ignored"
	case Crashed:
		return "crashed"
	default:
		return "unknown"
	}
}

// TestResult is the outcome of one test in one mode.
type TestResult struct {
	Name     string
	Strict   bool
	Outcome  Outcome
	Output   string
	Duration time.Duration
}

// SuiteResult aggregates results for one directory of the suite tree.
type SuiteResult struct {
	Name    string
	Total   int
	Passed  int
	Failed  int
	Ignored int
	Crashed int
	Suites  []SuiteResult
	Tests   []TestResult
}

func (s *SuiteResult) record(r TestResult) {
	s.Total++
	switch r.Outcome {
	case Passed:
		s.Passed++
	case Failed:
		s.Failed++
	case Ignored:
		s.Ignored++
	case Crashed:
		s.Crashed++
	}
	s.Tests = append(s.Tests, r)
}

// merge folds a child suite's counters into the parent.
func (s *SuiteResult) merge(child SuiteResult) {
	s.Total += child.Total
	s.Passed += child.Passed
	s.Failed += child.Failed
	s.Ignored += child.Ignored
	s.Crashed += child.Crashed
	s.Suites = append(s.Suites, child)
}

// Conformance is the passed share in percent over non-ignored tests.
func (s *SuiteResult) Conformance() float64 {
	ran := s.Total - s.Ignored
	if ran <= 0 {
		return 0
	}
	return float64(s.Passed) / float64(ran) * 100
}
