package store

import (
	"encoding/json"
	"fmt"

	"github.com/roach88/ifgen/internal/ir"
)

// marshalSummary converts a declaration summary to canonical JSON TEXT.
func marshalSummary(s ir.Summary) (string, error) {
	data, err := ir.MarshalCanonical(ir.Object{
		"constants":    ir.Int(s.Constants),
		"fields":       ir.Int(s.Fields),
		"functions":    ir.Int(s.Functions),
		"tagged_types": ir.Int(s.TaggedTypes),
	})
	if err != nil {
		return "", fmt.Errorf("marshal summary: %w", err)
	}
	return string(data), nil
}

// unmarshalSummary parses a stored summary.
func unmarshalSummary(data string) (ir.Summary, error) {
	var s ir.Summary
	if err := json.Unmarshal([]byte(data), &s); err != nil {
		return ir.Summary{}, fmt.Errorf("unmarshal summary: %w", err)
	}
	return s, nil
}
