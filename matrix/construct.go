// SPDX-License-Identifier: MIT
// Package matrix: constructive operations — sparse identity construction
// and in-place diagonal shifting (numerical regularization). Both are
// generic over the scalar field and perform strict fail-fast validation,
// returning package sentinels on contract violations.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvlnum/scalar"
)

// DefaultShift is the documented default diagonal offset for Regularize:
// small enough not to distort a well-conditioned operator, large enough to
// nudge a near-singular one away from the singularity.
const DefaultShift = 1e-4

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opIdentity       = "NewIdentity"
	opShiftDiagonal  = "ShiftDiagonal"
	opCheckFinite    = "CheckFinite"
	opCheckHermitian = "CheckHermitian"
)

// matrixErrorf wraps err with an operation tag, preserving the original error
// via %w so call sites keep a stable "Op: underlying" shape for uniform
// reporting while errors.Is/As still match the sentinel.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// NewIdentity builds a fresh sparse n×n identity: ones on the diagonal,
// implicit zeros everywhere else (no off-diagonal entries are stored).
//
// Implementation:
//   - Stage 1: reject negative n with ErrInvalidDimensions; n = 0 yields a
//     valid empty matrix.
//   - Stage 2: allocate the Sparse container and write the diagonal in a
//     single fixed i-loop.
//
// Behavior highlights:
//   - Pure construction: no inputs are read, nothing is mutated.
//   - The result stores exactly n explicit entries (NNZ() == n).
//
// Inputs:
//   - n: target dimension, n ≥ 0.
//
// Returns:
//   - *Sparse[T]: the n×n identity over the field T (diagonal = One[T]()).
//
// Errors:
//   - ErrInvalidDimensions (n < 0).
//
// Determinism:
//   - Fixed i order; identical results for identical inputs.
//
// Complexity:
//   - Time O(n), Space O(n).
func NewIdentity[T scalar.Scalar](n int) (*Sparse[T], error) {
	// Allocate the container; NewSparse rejects negative dimensions.
	ident, err := NewSparse[T](n, n)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err) // propagate constructor sentinel with op tag
	}
	// Write the diagonal deterministically in a single loop.
	one := scalar.One[T]()
	for i := 0; i < n; i++ { // fixed i order guarantees reproducibility
		ident.data[coord{i, i}] = one // direct insert; bounds hold by construction
	}

	// Return the identity matrix.
	return ident, nil
}

// ShiftDiagonal mutates the square sparse matrix m in place so that every
// diagonal entry gains delta: M[i,i] ← M[i,i] + δ for all i, inserting the
// entry where it was previously absent (the absent entry is zero).
//
// Implementation:
//   - Stage 1: validate m is non-nil and square (ValidateSparseSquare).
//   - Stage 2: accumulate delta into each diagonal slot in a fixed i-loop;
//     the map-backed storage gives amortized O(1) per insertion, so no
//     rebuild/merge pass is needed.
//
// Behavior highlights:
//   - Structural mutation: the sparsity pattern may grow by up to n entries.
//   - delta = 0 leaves all values unchanged but still inserts explicit zero
//     entries on the diagonal (structure changes, values do not).
//   - delta may be negative (decrease the diagonal, e.g. conditioning tests)
//     or complex for complex fields.
//   - Not idempotent by design: applying twice adds 2δ in total.
//
// Inputs:
//   - m: caller-owned square sparse matrix; the caller must guarantee
//     exclusive access for the duration of the call.
//   - delta: the shift amount added to every diagonal entry.
//
// Returns:
//   - error: nil on success.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrNonSquare (rows != cols).
//
// Determinism:
//   - Fixed i = 0..n-1 order; identical post-state for identical inputs.
//
// Complexity:
//   - Time O(n) expected, Space O(n) worst case for new entries.
func ShiftDiagonal[T scalar.Scalar](m *Sparse[T], delta T) error {
	// Validate the square-matrix precondition via the canonical validator.
	if err := ValidateSparseSquare(m); err != nil {
		return matrixErrorf(opShiftDiagonal, err)
	}

	// Accumulate delta into each diagonal slot; absent slots start at zero.
	for i := 0; i < m.rows; i++ { // fixed row order for reproducibility
		m.data[coord{i, i}] += delta // map add inserts the entry when absent
	}

	return nil
}
