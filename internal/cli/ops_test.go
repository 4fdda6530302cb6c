package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/ifgen/internal/opgen"
)

func TestOps_Stdout(t *testing.T) {
	out, _, err := execute(t, "ops", "--target", "id", "--dim", "2", "--decl")
	require.NoError(t, err)

	want, err := opgen.Render(opgen.Config{Target: opgen.TargetID, Dim: 2, Decl: true})
	require.NoError(t, err)
	assert.Equal(t, want, out)
	assert.Contains(t, out, "struct id<2> {")
}

func TestOps_OutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "range_3_def.hpp")

	out, _, err := execute(t, "ops", "--target", "range", "--dim", "3", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, "✓ Wrote "+path)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	want, err := opgen.Render(opgen.Config{Target: opgen.TargetRange, Dim: 3})
	require.NoError(t, err)
	assert.Equal(t, want, string(got))
}

func TestOps_JSON(t *testing.T) {
	out, _, err := execute(t, "ops", "--dim", "1", "--format", "json")
	require.NoError(t, err)

	var payload map[string]string
	decodeResponse(t, out, &payload)
	assert.Equal(t, "id_1_def.hpp", payload["file"])
	assert.Contains(t, payload["text"], "CHARM_SYCL_INLINE")
}

func TestOps_OutDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "detail")

	out, _, err := execute(t, "ops", "--out-dir", dir, "--format", "json")
	require.NoError(t, err)

	var files []OpsFile
	decodeResponse(t, out, &files)
	require.Len(t, files, 12)

	for _, f := range files {
		_, err := os.Stat(f.Path)
		assert.NoError(t, err, f.Path)
	}
	for _, name := range []string{"id_1.hpp", "id_3_def.hpp", "range_2.hpp", "range_2_def.hpp"} {
		assert.FileExists(t, filepath.Join(dir, name))
	}
}

func TestOps_InvalidFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"dim too large", []string{"ops", "--dim", "4"}, "invalid dim 4"},
		{"dim zero", []string{"ops", "--dim", "0"}, "invalid dim 0"},
		{"bad target", []string{"ops", "--target", "item"}, `invalid target "item"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Equal(t, ExitCommandError, GetExitCode(err))
			assert.Contains(t, out, "Error [E003]")
			assert.Contains(t, out, tt.want)
		})
	}
}
