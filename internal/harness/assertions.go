package harness

import (
	"fmt"
	"strings"
)

// AssertionError is returned when an assertion fails.
type AssertionError struct {
	Type     string
	Expected string
	Actual   string
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	return fmt.Sprintf("%s: expected %s, got %s", e.Type, e.Expected, e.Actual)
}

func assertContains(out string, a Assertion) error {
	if strings.Contains(out, a.Text) {
		return nil
	}
	return &AssertionError{
		Type:     AssertContains,
		Expected: fmt.Sprintf("%q in artifact", a.Text),
		Actual:   "not found",
	}
}

func assertNotContains(out string, a Assertion) error {
	if !strings.Contains(out, a.Text) {
		return nil
	}
	return &AssertionError{
		Type:     AssertNotContains,
		Expected: fmt.Sprintf("%q absent", a.Text),
		Actual:   fmt.Sprintf("found at line %d", lineOf(out, strings.Index(out, a.Text))),
	}
}

func assertCount(out string, a Assertion) error {
	n := strings.Count(out, a.Text)
	if n == a.Count {
		return nil
	}
	return &AssertionError{
		Type:     AssertCount,
		Expected: fmt.Sprintf("%d occurrence(s) of %q", a.Count, a.Text),
		Actual:   fmt.Sprintf("%d", n),
	}
}

// assertOrder checks that each line occurs after the end of the previous
// one. Intervening text is allowed.
func assertOrder(out string, a Assertion) error {
	pos := 0
	for i, line := range a.Lines {
		idx := strings.Index(out[pos:], line)
		if idx < 0 {
			actual := "not found"
			if strings.Contains(out, line) {
				actual = fmt.Sprintf("found only before %q", a.Lines[i-1])
			}
			return &AssertionError{
				Type:     AssertOrder,
				Expected: fmt.Sprintf("lines[%d] %q after previous lines", i, line),
				Actual:   actual,
			}
		}
		pos += idx + len(line)
	}
	return nil
}

// assertBalanced checks that braces and parentheses nest correctly.
func assertBalanced(out string) error {
	var stack []byte
	pairs := map[byte]byte{'}': '{', ')': '('}
	for i := 0; i < len(out); i++ {
		c := out[i]
		switch c {
		case '{', '(':
			stack = append(stack, c)
		case '}', ')':
			if len(stack) == 0 || stack[len(stack)-1] != pairs[c] {
				return &AssertionError{
					Type:     AssertBalanced,
					Expected: "balanced braces and parentheses",
					Actual:   fmt.Sprintf("unmatched %q at line %d", c, lineOf(out, i)),
				}
			}
			stack = stack[:len(stack)-1]
		}
	}
	if len(stack) > 0 {
		return &AssertionError{
			Type:     AssertBalanced,
			Expected: "balanced braces and parentheses",
			Actual:   fmt.Sprintf("%d unclosed", len(stack)),
		}
	}
	return nil
}

// lineOf returns the 1-based line number of byte offset off.
func lineOf(s string, off int) int {
	return strings.Count(s[:off], "\n") + 1
}
