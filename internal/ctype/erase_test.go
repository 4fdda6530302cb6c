package ctype

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEraseTagged(t *testing.T) {
	status := NewTagged("status", Int32, "Status")

	n, err := Erase(status)
	require.NoError(t, err)
	assert.Equal(t, "typename status::native", n.String())

	nt, ok := n.(NativeTagged)
	require.True(t, ok)
	assert.Same(t, status, nt.Tagged())
}

func TestEraseRecord(t *testing.T) {
	rec := NewRecord(200, 8)

	n, err := Erase(rec)
	require.NoError(t, err)
	assert.Equal(t, "void*", n.String())

	nr, ok := n.(NativeRecord)
	require.True(t, ok)
	assert.Same(t, rec, nr.Record())
}

func TestEraseScalarIsIdentity(t *testing.T) {
	for _, s := range []Scalar{Char, Int32, UInt64, USize, Void} {
		n, err := Erase(s)
		require.NoError(t, err)
		assert.Equal(t, s, n)
	}
}

func TestEraseRecursesThroughComposition(t *testing.T) {
	ctx := NewTagged("ctx", VoidPtr(), "Ctx")
	memcpy := NewTagged("memcpy2d_t", NewRecord(128, 8), "CUDA_MEMCPY2D")

	tests := []struct {
		name string
		typ  Type
		want string
	}{
		{"pointer to tagged", PointerTo(ctx), "typename ctx::native*"},
		{"const pointer to tagged", ConstPointerTo(memcpy), "typename memcpy2d_t::native const*"},
		{"pointer to record", PointerTo(NewRecord(8, 8)), "void**"},
		{"pointer to scalar", PointerTo(Int32), "int32_t*"},
		{"cstring pointer", PointerTo(CString()), "char const**"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := Erase(tt.typ)
			require.NoError(t, err)
			assert.Equal(t, tt.want, n.String())
		})
	}
}

func TestEraseOfWrapperEqualsWrapOfErasure(t *testing.T) {
	inners := []Type{
		Int32,
		NewTagged("ctx", VoidPtr(), "Ctx"),
		NewRecord(16, 4),
		CString(),
	}

	for _, inner := range inners {
		erasedInner := MustErase(inner)

		assert.Equal(t, PointerTo(erasedInner).String(), MustErase(PointerTo(inner)).String())
		assert.Equal(t, ConstOf(erasedInner).String(), MustErase(ConstOf(inner)).String())
		assert.Equal(t, ConstPointerTo(erasedInner).String(), MustErase(ConstPointerTo(inner)).String())
	}
}

func TestEraseAlreadyErasedFails(t *testing.T) {
	ctx := NewTagged("ctx", VoidPtr(), "Ctx")
	erased := MustErase(ctx)

	_, err := Erase(erased)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAlreadyErased))

	var ee *ErasureError
	require.True(t, errors.As(err, &ee))
	assert.Equal(t, erased, ee.Type)
}

func TestEraseAlreadyErasedNestedFails(t *testing.T) {
	erased := MustErase(PointerTo(NewRecord(8, 8)))

	_, err := Erase(erased)
	assert.ErrorIs(t, err, ErrAlreadyErased)

	_, err = Erase(ConstOf(erased))
	assert.ErrorIs(t, err, ErrAlreadyErased)
}

func TestMustErasePanicsOnReErasure(t *testing.T) {
	erased := MustErase(NewTagged("status", Int32, "Status"))

	assert.PanicsWithError(t, "erase typename status::native: type is already in native form", func() {
		MustErase(erased)
	})
}

func TestIsNative(t *testing.T) {
	ctx := NewTagged("ctx", VoidPtr(), "Ctx")

	assert.False(t, IsNative(ctx))
	assert.False(t, IsNative(PointerTo(ctx)))
	assert.True(t, IsNative(MustErase(ctx)))
	assert.True(t, IsNative(MustErase(PointerTo(ctx))))
	assert.False(t, IsNative(MustErase(Int32)))
}
