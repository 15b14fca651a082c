package test262

import (
	"fmt"

	"github.com/dlclark/regexp2"
	"gopkg.in/yaml.v3"
)

// Phase names the stage a negative test expects its error from.
type Phase string

const (
	PhaseParse      Phase = "parse"
	PhaseResolution Phase = "resolution"
	PhaseRuntime    Phase = "runtime"
)

// Negative describes the error a negative test expects.
type Negative struct {
	Phase Phase  `yaml:"phase"`
	Type  string `yaml:"type"`
}

// Metadata is the YAML frontmatter of one test file.
type Metadata struct {
	Description string    `yaml:"description"`
	Esid        string    `yaml:"esid"`
	Info        string    `yaml:"info"`
	Includes    []string  `yaml:"includes"`
	Flags       []string  `yaml:"flags"`
	Negative    *Negative `yaml:"negative"`
	Features    []string  `yaml:"features"`
	Locale      []string  `yaml:"locale"`
}

// frontmatterPattern matches the /*--- ---*/ block at the top of a test
// file; Singleline lets the capture span lines.
var frontmatterPattern = regexp2.MustCompile(`/\*---(.*?)---\*/`, regexp2.Singleline)

// ParseMetadata extracts and decodes the frontmatter block. A file without
// frontmatter yields empty metadata, which runs as a default (both-modes)
// test.
func ParseMetadata(src string) (Metadata, error) {
	var meta Metadata

	m, err := frontmatterPattern.FindStringMatch(src)
	if err != nil {
		return meta, fmt.Errorf("metadata: scan frontmatter: %w", err)
	}
	if m == nil {
		return meta, nil
	}

	block := m.GroupByNumber(1).String()
	if err := yaml.Unmarshal([]byte(block), &meta); err != nil {
		return meta, fmt.Errorf("metadata: decode frontmatter: %w", err)
	}
	return meta, nil
}

func (m Metadata) hasFlag(name string) bool {
	for _, f := range m.Flags {
		if f == name {
			return true
		}
	}
	return false
}

func (m Metadata) OnlyStrict() bool { return m.hasFlag("onlyStrict") }
func (m Metadata) NoStrict() bool   { return m.hasFlag("noStrict") }
func (m Metadata) Raw() bool        { return m.hasFlag("raw") }
func (m Metadata) Async() bool      { return m.hasFlag("async") }
func (m Metadata) Module() bool     { return m.hasFlag("module") }
