package harness

import (
	"fmt"
	"log/slog"

	"github.com/roach88/ifgen/internal/catalog"
	"github.com/roach88/ifgen/internal/render"
)

// Resolve returns the declaration source a scenario renders.
func Resolve(s *Scenario) (*catalog.Source, error) {
	var (
		src *catalog.Source
		err error
	)
	if s.Builtin != "" {
		src, err = catalog.FromBuiltin(s.Builtin)
	} else {
		src, err = catalog.FromFile(s.Catalog)
	}
	if err != nil {
		return nil, err
	}
	if s.Interface != "" {
		src.Interface = s.Interface
	}
	return src, nil
}

// Run renders the scenario's artifact and evaluates its assertions.
//
// A returned error means the scenario could not be executed (unresolvable
// source, invalid mode). Failed assertions are reported in the result.
func Run(s *Scenario) (*Result, error) {
	src, err := Resolve(s)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve source: %w", err)
	}

	mode := render.ModeHeader
	if s.Mode != "" {
		mode, err = render.ParseMode(s.Mode)
		if err != nil {
			return nil, err
		}
	}

	out, err := render.Render(src.Interface, mode, src.Declare)
	if err != nil {
		return nil, err
	}

	fp, err := render.Fingerprint(src.Interface, src.Declare)
	if err != nil {
		return nil, fmt.Errorf("failed to fingerprint declarations: %w", err)
	}

	result := NewResult()
	result.Interface = src.Interface
	result.Mode = string(mode)
	result.Origin = src.Origin
	result.Fingerprint = fp
	result.Output = out

	for i, a := range s.Assertions {
		if err := evaluate(out, a); err != nil {
			result.AddError(fmt.Sprintf("assertions[%d]: %v", i, err))
		}
	}

	slog.Debug("scenario finished",
		"scenario", s.Name,
		"pass", result.Pass,
		"failures", len(result.Errors))

	return result, nil
}

// evaluate dispatches a single assertion.
func evaluate(out string, a Assertion) error {
	switch a.Type {
	case AssertContains:
		return assertContains(out, a)
	case AssertNotContains:
		return assertNotContains(out, a)
	case AssertCount:
		return assertCount(out, a)
	case AssertOrder:
		return assertOrder(out, a)
	case AssertBalanced:
		return assertBalanced(out)
	default:
		return fmt.Errorf("unknown assertion type %q", a.Type)
	}
}
