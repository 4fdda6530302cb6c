package ctype

import (
	"errors"
	"fmt"
)

// ErrAlreadyErased is returned when Erase is applied to a native form.
var ErrAlreadyErased = errors.New("type is already in native form")

// ErasureError reports the offending type of an invalid re-erasure.
type ErasureError struct {
	Type Type
}

func (e *ErasureError) Error() string {
	return fmt.Sprintf("erase %s: %v", e.Type, ErrAlreadyErased)
}

func (e *ErasureError) Unwrap() error {
	return ErrAlreadyErased
}

// Erase maps a type to its binary-compatible native form:
//   - *Tagged becomes NativeTagged
//   - *Record becomes NativeRecord
//   - Pointer and Const erase their element
//   - Scalar is returned unchanged
//
// Erasing a NativeTagged or NativeRecord (at any depth) returns an
// *ErasureError.
func Erase(t Type) (Type, error) {
	switch v := t.(type) {
	case *Tagged:
		return NativeTagged{tagged: v}, nil
	case *Record:
		return NativeRecord{record: v}, nil
	case NativeTagged, NativeRecord:
		return nil, &ErasureError{Type: t}
	case Pointer:
		elem, err := Erase(v.elem)
		if err != nil {
			return nil, err
		}
		return Pointer{elem: elem}, nil
	case Const:
		elem, err := Erase(v.elem)
		if err != nil {
			return nil, err
		}
		return Const{elem: elem}, nil
	case Scalar:
		return v, nil
	default:
		return nil, fmt.Errorf("erase: unsupported type %T", t)
	}
}

// MustErase is like Erase but panics on failure. Emitters use it: erasing
// an erased type is an authoring error that ends the render pass.
func MustErase(t Type) Type {
	n, err := Erase(t)
	if err != nil {
		panic(err)
	}
	return n
}

// IsNative reports whether t is, or wraps, an erased form.
func IsNative(t Type) bool {
	switch v := t.(type) {
	case NativeTagged, NativeRecord:
		return true
	case Pointer:
		return IsNative(v.elem)
	case Const:
		return IsNative(v.elem)
	default:
		return false
	}
}
