package opgen

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpKindsAreExclusive(t *testing.T) {
	for _, op := range Ops {
		n := 0
		for _, is := range []bool{op.IsRel(), op.IsBin(), op.IsCompound()} {
			if is {
				n++
			}
		}
		assert.Equal(t, 1, n, "op=%s bin=%v compound=%v rel=%v", op, op.IsBin(), op.IsCompound(), op.IsRel())
	}
}

func TestOpKind(t *testing.T) {
	assert.Equal(t, Relational, Op("!=").Kind())
	assert.Equal(t, Binary, Op("<=").Kind())
	assert.Equal(t, Compound, Op("<<=").Kind())
	assert.Equal(t, OpKind(0), Op("<=>").Kind())
	assert.Equal(t, "binary", Binary.String())
	assert.Len(t, Ops, 28)
}

func TestConfig(t *testing.T) {
	id := Config{Target: TargetID, Dim: 1, Decl: true}
	assert.True(t, id.IsID())
	assert.Equal(t, "id", id.Name())
	assert.Equal(t, "id_1.hpp", id.FileName())

	r := Config{Target: TargetRange, Dim: 3}
	assert.False(t, r.IsID())
	assert.Equal(t, "range", r.Name())
	assert.Equal(t, "range_3_def.hpp", r.FileName())
}

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, Config{Target: TargetID, Dim: 3}.Validate())
	assert.Error(t, Config{Target: TargetID, Dim: 0}.Validate())
	assert.Error(t, Config{Target: TargetID, Dim: 4}.Validate())
	assert.Error(t, Config{Target: "item", Dim: 1}.Validate())
}

func TestParseTarget(t *testing.T) {
	got, err := ParseTarget("range")
	require.NoError(t, err)
	assert.Equal(t, TargetRange, got)

	_, err = ParseTarget("ID")
	require.Error(t, err)
}

func TestRender_Golden(t *testing.T) {
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)

	for _, target := range []Target{TargetID, TargetRange} {
		for dim := 1; dim <= MaxDim; dim++ {
			for _, decl := range []bool{true, false} {
				mode := "def"
				if decl {
					mode = "decl"
				}
				name := fmt.Sprintf("%s_%d_%s", target, dim, mode)
				t.Run(name, func(t *testing.T) {
					out, err := Render(Config{Target: target, Dim: dim, Decl: decl})
					require.NoError(t, err)
					g.Assert(t, name, []byte(out))
				})
			}
		}
	}
}

func TestRender_DeclOverloadCounts(t *testing.T) {
	out, err := Render(Config{Target: TargetRange, Dim: 2, Decl: true})
	require.NoError(t, err)

	// 2 relational + 16 binary * 3 + 10 compound * 2
	assert.Equal(t, 70, strings.Count(out, "friend inline CHARM_SYCL_INLINE"))
	assert.Equal(t, 2, strings.Count(out, "friend inline CHARM_SYCL_INLINE bool "))
	assert.NotContains(t, out, "inline range();")
	assert.True(t, strings.HasSuffix(out, "range(size_t, size_t) -> range<2>;\nCHARM_SYCL_END_NAMESPACE\n"))
}

func TestRender_IDConversionOnlyForRankOne(t *testing.T) {
	one, err := Render(Config{Target: TargetID, Dim: 1, Decl: true})
	require.NoError(t, err)
	two, err := Render(Config{Target: TargetID, Dim: 2, Decl: true})
	require.NoError(t, err)

	assert.Contains(t, one, "    inline operator size_t() const;\n")
	assert.NotContains(t, two, "operator size_t()")
}

func TestRender_Invalid(t *testing.T) {
	_, err := Render(Config{Target: TargetID, Dim: 9})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid dim 9")
}

func TestViewEach(t *testing.T) {
	v := newView(Config{Target: TargetID, Dim: 3})
	assert.Equal(t, "size_t dim0, size_t dim1, size_t dim2", v.Params())
	assert.Equal(t, "size_t, size_t, size_t", v.GuideParams())
	assert.Equal(t, "id_[0] * id_[1] * id_[2]", v.Each("$M[@]", " * "))
	assert.Equal(t, []int{0, 1, 2}, v.Indices())
}
