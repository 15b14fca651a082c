package test262

import (
	"bytes"
	"os"
	"os/exec"
	"strings"

	errorsPkg "selkie/pkg/errors"
	"selkie/pkg/vm"
)

// Engine evaluates source text in a fresh execution context. The harness is
// a pure consumer: it never reaches into the core except through values and
// errors.
type Engine interface {
	Eval(src string) (vm.Value, error)
}

// EngineFactory builds one engine per test run so no state leaks between
// tests.
type EngineFactory func() (Engine, error)

// CommandEngine drives an external engine binary: the source is written to
// a scratch file and handed to the command as its last argument. A failing
// run whose output mentions SyntaxError is reported as a syntax error so
// negative parse-phase tests classify correctly.
type CommandEngine struct {
	Path string
	Args []string
	Dir  string // scratch directory for source files, "" = system temp
}

func (e *CommandEngine) Eval(src string) (vm.Value, error) {
	tmp, err := os.CreateTemp(e.Dir, "test262-*.js")
	if err != nil {
		return vm.Undefined, err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(src); err != nil {
		tmp.Close()
		return vm.Undefined, err
	}
	if err := tmp.Close(); err != nil {
		return vm.Undefined, err
	}

	args := append(append([]string{}, e.Args...), tmp.Name())
	cmd := exec.Command(e.Path, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = strings.TrimSpace(stdout.String())
		}
		if msg == "" {
			msg = err.Error()
		}
		if strings.Contains(msg, "SyntaxError") {
			return vm.Undefined, errorsPkg.NewSyntaxError("%s", msg)
		}
		return vm.Undefined, errorsPkg.NewRuntimeError("%s", msg)
	}
	return vm.Undefined, nil
}
