// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/facades minimal by delegating nil/shape/tolerance checks here.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → Square).
//  - Each validator describes what it validates and what it assumes.

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlnum/scalar"
)

// zeroTol is the lower boundary for tolerance normalization.
// We keep it explicit to avoid "magic numbers" inline.
const zeroTol = 0.0

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	// Provides consistent error tagging for all validation errors.
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateSparseNonNil – Ensures the sparse matrix reference is non-nil.
//
// Inputs: *Sparse[T] value.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateSparseNonNil[T scalar.Scalar](m *Sparse[T]) error {
	// If the matrix is nil, fail with the unified sentinel.
	if m == nil {
		return validatorErrorf("ValidateSparseNonNil", ErrNilMatrix) // single source of truth for "nil argument"
	}

	// Otherwise accept.
	return nil
}

// ValidateSparseSquare – Composite: NotNil → Square (Rows == Cols).
//
// Inputs: *Sparse[T] value.
// Errors: ErrNilMatrix if nil, ErrNonSquare if Rows != Cols.
// Complexity: O(1).
func ValidateSparseSquare[T scalar.Scalar](m *Sparse[T]) error {
	// Guard nil first to avoid dereferencing.
	if err := ValidateSparseNonNil(m); err != nil {
		return validatorErrorf("ValidateSparseSquare", err)
	}
	// Check the square condition explicitly.
	if m.rows != m.cols {
		return validatorErrorf("ValidateSparseSquare", ErrNonSquare)
	}

	return nil
}

// ValidateDenseNonNil – Ensures the dense matrix reference is non-nil.
//
// Inputs: *Dense[T] value.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateDenseNonNil[T scalar.Scalar](m *Dense[T]) error {
	// If the matrix is nil, fail with the unified sentinel.
	if m == nil {
		return validatorErrorf("ValidateDenseNonNil", ErrNilMatrix)
	}

	return nil
}

// ValidateTolerance normalizes a tolerance to a non-negative finite value.
//
// Inputs: tolerance tol (any float64).
// Returns: |tol| and nil, or 0 and ErrNaNInf when tol is NaN or ±Inf —
// an ill-formed tolerance is a numeric policy violation, not a loose check.
// Complexity: O(1).
func ValidateTolerance(tol float64) (float64, error) {
	// Reject non-finite tolerances outright.
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return 0, validatorErrorf("ValidateTolerance", ErrNaNInf) // invalid tolerance is a numeric policy violation
	}
	// Negative tolerance makes little semantic sense; flip to its absolute value.
	if tol < zeroTol {
		tol = -tol
	}

	return tol, nil
}
