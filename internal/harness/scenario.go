package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/roach88/ifgen/internal/render"
)

// Scenario defines a conformance check over one rendered artifact.
type Scenario struct {
	// Name uniquely identifies this scenario. It also names the golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Catalog is the path to a catalog document. Relative paths are
	// resolved against the scenario file's directory by LoadScenario.
	Catalog string `yaml:"catalog,omitempty"`

	// Builtin names a built-in declaration routine. Exactly one of Catalog
	// and Builtin is set.
	Builtin string `yaml:"builtin,omitempty"`

	// Interface overrides the interface name declared by the source.
	Interface string `yaml:"interface,omitempty"`

	// Mode is the render mode. Defaults to "header".
	Mode string `yaml:"mode,omitempty"`

	// Assertions validate the rendered text.
	Assertions []Assertion `yaml:"assertions"`
}

// Assertion validates the rendered artifact.
type Assertion struct {
	// Type is one of contains, not_contains, count, order, balanced.
	Type string `yaml:"type"`

	// Text is the substring checked by contains, not_contains and count.
	Text string `yaml:"text,omitempty"`

	// Count is the expected number of occurrences (count only).
	Count int `yaml:"count,omitempty"`

	// Lines are the substrings that must appear in order (order only).
	Lines []string `yaml:"lines,omitempty"`
}

// Assertion type constants.
const (
	AssertContains    = "contains"
	AssertNotContains = "not_contains"
	AssertCount       = "count"
	AssertOrder       = "order"
	AssertBalanced    = "balanced"
)

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Strict field validation catches typos like "assertion:" vs "assertions:".
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if scenario.Catalog != "" && !filepath.IsAbs(scenario.Catalog) {
		scenario.Catalog = filepath.Join(filepath.Dir(path), scenario.Catalog)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	switch {
	case s.Catalog == "" && s.Builtin == "":
		return fmt.Errorf("one of catalog or builtin is required")
	case s.Catalog != "" && s.Builtin != "":
		return fmt.Errorf("catalog and builtin are mutually exclusive")
	}

	if s.Catalog != "" {
		if _, err := os.Stat(s.Catalog); os.IsNotExist(err) {
			return fmt.Errorf("catalog file not found: %s", s.Catalog)
		}
	}

	if s.Mode != "" {
		if _, err := render.ParseMode(s.Mode); err != nil {
			return err
		}
	}

	if len(s.Assertions) == 0 {
		return fmt.Errorf("assertions list is required and must be non-empty")
	}

	for i := range s.Assertions {
		if err := validateAssertion(i, &s.Assertions[i]); err != nil {
			return err
		}
	}

	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a *Assertion) error {
	if a.Type == "" {
		return fmt.Errorf("assertions[%d]: type is required", index)
	}

	switch a.Type {
	case AssertContains, AssertNotContains:
		if a.Text == "" {
			return fmt.Errorf("assertions[%d]: text is required for %s", index, a.Type)
		}
	case AssertCount:
		if a.Text == "" {
			return fmt.Errorf("assertions[%d]: text is required for count", index)
		}
		if a.Count < 0 {
			return fmt.Errorf("assertions[%d]: count must be non-negative", index)
		}
	case AssertOrder:
		if len(a.Lines) == 0 {
			return fmt.Errorf("assertions[%d]: lines list is required for order", index)
		}
	case AssertBalanced:
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}

	return nil
}
