// SPDX-License-Identifier: MIT
// Package matrix: developer-assertion facades over the validation kernels.
// Assert* functions exist for sprinkling through operator-assembly code
// during development: built normally they are true no-ops (the assertEnabled
// guard is a compile-time-false constant the compiler removes, leaving no
// runtime branch); built with -tags matassert they run the corresponding
// Check* kernel and panic on any violation.
//
// The panic channel is deliberate: a non-finite or asymmetric operator is a
// programming error upstream, and continuing computation on a provably
// invalid matrix is unsafe. Callers must never recover these panics as
// normal control flow — code that needs a recoverable answer calls the
// Check* kernels directly. Production correctness must not depend on
// Assert* in any way: in the default build they do nothing at all.

package matrix

import "github.com/katalvlaran/lvlnum/scalar"

// AssertFinite panics if any explicit stored entry of m is NaN or ±Inf.
// No-op unless built with -tags matassert.
// Complexity: O(1) when disabled; CheckFinite cost when enabled.
func AssertFinite[T scalar.Scalar](m *Sparse[T]) {
	if !assertEnabled {
		return // compiled out: constant-false guard, no runtime cost
	}
	if err := CheckFinite(m); err != nil {
		panic(err)
	}
}

// AssertFiniteDense panics if any entry of the dense matrix m is NaN or ±Inf.
// No-op unless built with -tags matassert.
// Complexity: O(1) when disabled; CheckFiniteDense cost when enabled.
func AssertFiniteDense[T scalar.Scalar](m *Dense[T]) {
	if !assertEnabled {
		return // compiled out: constant-false guard, no runtime cost
	}
	if err := CheckFiniteDense(m); err != nil {
		panic(err)
	}
}

// AssertHermitian panics if m is not symmetric (Hermitian for complex
// fields) within tol, or if m violates the square-matrix contract.
// No-op unless built with -tags matassert.
// Complexity: O(1) when disabled; CheckHermitian cost when enabled.
func AssertHermitian[T scalar.Scalar](m *Sparse[T], tol float64) {
	if !assertEnabled {
		return // compiled out: constant-false guard, no runtime cost
	}
	if err := CheckHermitian(m, tol); err != nil {
		panic(err)
	}
}
