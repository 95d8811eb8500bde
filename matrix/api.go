// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication — each facade delegates to the canonical implementation.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// Determinism & Policy:
//   - Facades never change the traversal orders or numeric policy of the kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

import (
	"errors"

	"github.com/katalvlaran/lvlnum/scalar"
)

// Regularize shifts the diagonal of m by the documented DefaultShift (1e-4),
// the customary nudge for near-singular systems. For complex fields the
// shift is DefaultShift+0i. Thin facade over ShiftDiagonal — Go has no
// default arguments, so the default lives here.
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n) expected.
func Regularize[T scalar.Scalar](m *Sparse[T]) error {
	// Delegate to the canonical shifter with the converted default.
	return ShiftDiagonal(m, T(DefaultShift))
}

// IsFinite reports whether every stored entry of m is finite.
// Contract violations (nil matrix) still surface as errors; only the
// finiteness verdict is folded into the boolean.
// Complexity: O(nnz log nnz).
func IsFinite[T scalar.Scalar](m *Sparse[T]) (bool, error) {
	// Run the kernel and fold the invariant sentinel into the verdict.
	err := CheckFinite(m)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, ErrNaNInf) {
		return false, nil // a non-finite entry is the negative verdict, not a failure
	}

	return false, err // contract violations propagate unchanged
}

// IsHermitian reports whether m is symmetric (Hermitian for complex fields)
// within tol. Contract violations (nil matrix, non-square shape, non-finite
// tol) still surface as errors; only the asymmetry verdict is folded into
// the boolean.
// Complexity: O(nnz log nnz).
func IsHermitian[T scalar.Scalar](m *Sparse[T], tol float64) (bool, error) {
	// Run the kernel and fold the invariant sentinel into the verdict.
	err := CheckHermitian(m, tol)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, ErrAsymmetry) {
		return false, nil // asymmetry is the negative verdict, not a failure
	}

	return false, err // contract violations propagate unchanged
}
