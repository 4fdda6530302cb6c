package harness

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/ifgen/internal/catalog"
	"github.com/roach88/ifgen/internal/render"
)

func TestRun_Scenarios(t *testing.T) {
	files, err := filepath.Glob("testdata/scenarios/*.y*ml")
	require.NoError(t, err)
	require.Len(t, files, 4)

	for _, file := range files {
		t.Run(filepath.Base(file), func(t *testing.T) {
			s, err := LoadScenario(file)
			require.NoError(t, err)

			result, err := Run(s)
			require.NoError(t, err)
			assert.True(t, result.Pass, "errors: %v", result.Errors)
			assert.Empty(t, result.Errors)
			assert.NotEmpty(t, result.Output)
			assert.Len(t, result.Fingerprint, 64)
		})
	}
}

func TestRun_DefaultsToHeader(t *testing.T) {
	result, err := Run(&Scenario{
		Name:        "defaults",
		Description: "no mode",
		Builtin:     "cuda",
		Assertions:  []Assertion{{Type: AssertBalanced}},
	})
	require.NoError(t, err)
	assert.Equal(t, string(render.ModeHeader), result.Mode)
	assert.Equal(t, catalog.CUDAInterface, result.Interface)
	assert.Equal(t, "builtin:cuda", result.Origin)
}

func TestRun_InterfaceOverride(t *testing.T) {
	s, err := LoadScenario("testdata/scenarios/renamed.yml")
	require.NoError(t, err)

	result, err := Run(s)
	require.NoError(t, err)
	assert.Equal(t, "other_interface", result.Interface)
	assert.Equal(t, string(render.ModeStorageReset), result.Mode)
}

func TestRun_FailedAssertionsAreReported(t *testing.T) {
	result, err := Run(&Scenario{
		Name:        "failing",
		Description: "two of three assertions fail",
		Catalog:     "testdata/catalogs/minimal.yaml",
		Assertions: []Assertion{
			{Type: AssertContains, Text: "static void* open_ptr;"},
			{Type: AssertContains, Text: "static void* close_ptr;"},
			{Type: AssertCount, Text: "static inline auto ", Count: 5},
		},
	})
	require.NoError(t, err)
	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 2)
	assert.Contains(t, result.Errors[0], "assertions[1]: contains")
	assert.Contains(t, result.Errors[1], "assertions[2]: count")
}

func TestRun_UnknownBuiltin(t *testing.T) {
	_, err := Run(&Scenario{Name: "x", Description: "d", Builtin: "opencl"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to resolve source")
	assert.Contains(t, err.Error(), `unknown builtin catalog "opencl"`)
}

func TestRun_FingerprintIgnoresMode(t *testing.T) {
	header, err := Run(&Scenario{Catalog: "testdata/catalogs/minimal.yaml", Mode: "header"})
	require.NoError(t, err)
	vars, err := Run(&Scenario{Catalog: "testdata/catalogs/minimal.yaml", Mode: "storage+reset"})
	require.NoError(t, err)

	assert.Equal(t, header.Fingerprint, vars.Fingerprint)
	assert.NotEqual(t, header.Output, vars.Output)
}
