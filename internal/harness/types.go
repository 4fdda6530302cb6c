package harness

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass is true if every assertion held.
	Pass bool `json:"pass"`

	// Interface and Mode identify the rendered artifact.
	Interface string `json:"interface"`
	Mode      string `json:"mode"`

	// Origin is "builtin:NAME" or the catalog path.
	Origin string `json:"origin"`

	// Fingerprint is the declaration fingerprint of the source.
	Fingerprint string `json:"fingerprint"`

	// Output is the rendered artifact text.
	Output string `json:"-"`

	// Errors contains one message per failed assertion.
	// Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Errors: []string{},
	}
}

// AddError adds a validation error and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}
