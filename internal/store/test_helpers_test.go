package store

import (
	"path/filepath"
	"testing"

	"github.com/roach88/ifgen/internal/ir"
)

// createTestStore creates a fresh on-disk store for testing.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// createTestRender creates a render row with a fixed summary.
func createTestRender(iface, mode, fingerprint, output string) Render {
	return NewRender(iface, mode, "builtin:test", fingerprint, output, "", ir.Summary{TaggedTypes: 1, Functions: 2})
}
