// SPDX-License-Identifier: MIT
// Package scalar: constraint sets and field capabilities.
// This file defines ONLY the generic constraints and the four capability
// helpers (Zero/One/IsFinite/Conj/Abs). The constraints deliberately list
// exact types (no ~ approximation) so that the internal dynamic-type
// dispatch below is total: every value of a Scalar type parameter has one
// of exactly four dynamic types.

package scalar

import (
	"math"
	"math/cmplx"
)

// Real is the constraint for real scalar fields.
type Real interface {
	float32 | float64
}

// Complex is the constraint for complex scalar fields.
type Complex interface {
	complex64 | complex128
}

// Scalar is the union constraint every lvlnum operation is generic over.
// A Scalar offers an additive identity, a multiplicative identity, a
// finiteness predicate, a conjugate and a magnitude — see the helpers below.
type Scalar interface {
	Real | Complex
}

// Zero returns the additive identity of the field T.
// Determinism: constant; Complexity: O(1).
func Zero[T Scalar]() T {
	var z T // zero value of every Scalar type is the additive identity

	return z
}

// One returns the multiplicative identity of the field T
// (1 for real fields, 1+0i for complex fields).
// Determinism: constant; Complexity: O(1).
func One[T Scalar]() T {
	return T(1) // the untyped constant 1 converts exactly into all four types
}

// IsFinite reports whether v is finite: neither NaN nor ±Inf.
// For complex values both the real and the imaginary part must be finite.
//
// Implementation:
//   - Stage 1: dispatch on the dynamic type of v (exactly one of four).
//   - Stage 2: apply math.IsNaN/math.IsInf on the widened float64 parts.
//
// Determinism:
//   - Pure predicate; no allocation, no shared state.
//
// Complexity:
//   - Time O(1), Space O(1).
func IsFinite[T Scalar](v T) bool {
	switch x := any(v).(type) {
	case float32:
		return finite(float64(x)) // widen and test once
	case float64:
		return finite(x)
	case complex64:
		return finite(float64(real(x))) && finite(float64(imag(x)))
	case complex128:
		return finite(real(x)) && finite(imag(x))
	}

	return false // unreachable: the constraint admits exactly the four cases above
}

// Conj returns the complex conjugate of v; on real fields it is the identity.
//
// Determinism:
//   - Pure function; stable for identical inputs.
//
// Complexity:
//   - Time O(1), Space O(1).
func Conj[T Scalar](v T) T {
	switch x := any(v).(type) {
	case complex64:
		return any(complex64(cmplx.Conj(complex128(x)))).(T) // round-trip through complex128 for cmplx
	case complex128:
		return any(cmplx.Conj(x)).(T)
	}

	return v // real fields: conjugation is the identity
}

// Abs returns the magnitude of v as float64: |v| for real fields, the
// complex modulus for complex fields. float64 is the common currency for
// tolerance comparisons regardless of the instantiated field.
//
// Determinism:
//   - Pure function; stable for identical inputs.
//
// Complexity:
//   - Time O(1), Space O(1).
func Abs[T Scalar](v T) float64 {
	switch x := any(v).(type) {
	case float32:
		return math.Abs(float64(x))
	case float64:
		return math.Abs(x)
	case complex64:
		return cmplx.Abs(complex128(x))
	case complex128:
		return cmplx.Abs(x)
	}

	return 0 // unreachable by construction of the Scalar constraint
}

// finite is the float64 finiteness test shared by all IsFinite branches.
func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
