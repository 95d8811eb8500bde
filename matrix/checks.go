// SPDX-License-Identifier: MIT
// Package matrix: validation kernels — finiteness and symmetry/Hermitian
// checks. These are the always-compiled, error-returning implementations;
// the compiled-out developer-assertion facades in assert.go delegate here.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvlnum/scalar"
)

// DefaultTolerance is the documented default epsilon for CheckHermitian,
// suitable for float64-backed fields assembled by well-behaved operators.
const DefaultTolerance = 1e-10

// CheckFinite verifies that every explicit stored entry of m is finite
// (neither NaN nor ±Inf; for complex fields both parts must be finite).
// Unstored entries are exactly zero and therefore trivially finite, so only
// the explicit structure is scanned.
//
// Implementation:
//   - Stage 1: validate m is non-nil.
//   - Stage 2: walk stored entries in row-major order; fail fast on the
//     first non-finite entry, reporting its location and value.
//
// Inputs:
//   - m: sparse matrix of any shape (squareness is not implied here).
//
// Returns:
//   - error: nil when all stored entries are finite.
//
// Errors:
//   - ErrNilMatrix (nil input).
//   - ErrNaNInf (first non-finite entry; the message carries (row,col) and
//     the offending value).
//
// Determinism:
//   - Row-major scan order; the first reported violation is stable across runs.
//
// Complexity:
//   - Time O(nnz log nnz) for the ordered walk, Space O(nnz).
func CheckFinite[T scalar.Scalar](m *Sparse[T]) error {
	// Validate the argument before touching its storage.
	if err := ValidateSparseNonNil(m); err != nil {
		return matrixErrorf(opCheckFinite, err)
	}

	// Scan explicit entries only; implicit zeros are finite by definition.
	for _, k := range m.sortedCoords() { // deterministic row-major order
		v := m.data[k]
		if !scalar.IsFinite(v) {
			// Fail fast, reporting where and what went non-finite.
			return fmt.Errorf("%s: non-finite entry %v at (%d,%d): %w", opCheckFinite, v, k.r, k.c, ErrNaNInf)
		}
	}

	return nil
}

// CheckFiniteDense verifies that every entry of the dense matrix m is finite.
// Dense storage materializes all entries, so the full rows×cols grid is scanned.
//
// Inputs:
//   - m: dense matrix of any shape.
//
// Errors:
//   - ErrNilMatrix (nil input).
//   - ErrNaNInf (first non-finite entry in row-major order, with location).
//
// Determinism:
//   - Fixed flat row-major scan.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func CheckFiniteDense[T scalar.Scalar](m *Dense[T]) error {
	// Validate the argument before touching its storage.
	if err := ValidateDenseNonNil(m); err != nil {
		return matrixErrorf(opCheckFinite, err)
	}

	// Flat row-major scan over the backing slice.
	for idx, v := range m.data {
		if !scalar.IsFinite(v) {
			// Recover (row,col) from the flat offset for the report.
			return fmt.Errorf("%s: non-finite entry %v at (%d,%d): %w", opCheckFinite, v, idx/m.c, idx%m.c, ErrNaNInf)
		}
	}

	return nil
}

// CheckHermitian verifies that the square sparse matrix m equals its own
// conjugate transpose within tol: |M[i,j] − conj(M[j,i])| ≤ tol for every
// position stored on either side of the diagonal. For real fields the
// conjugate is the identity, so this is the plain symmetry check.
//
// The deviation is measured entrywise (max-absolute-difference norm): the
// check fails on the first entry whose deviation exceeds tol. A deviation
// of exactly tol passes (inclusive bound).
//
// Implementation:
//   - Stage 1: validate m non-nil and square; normalize tol (NaN/Inf is a
//     numeric policy violation, negative flips to |tol|).
//   - Stage 2: one pass over stored entries in row-major order. For each
//     stored (i,j,v) the counterpart M[j,i] is read from the structure
//     (zero when absent) and v is compared against its conjugate. Every
//     union entry of M and Mᵀ* has at least one side stored in M, so the
//     single pass covers the whole difference structure without
//     materializing a transpose.
//
// Behavior highlights:
//   - Diagonal entries are compared against their own conjugate, so a
//     complex matrix with a non-real diagonal correctly fails.
//   - A 0×0 or entryless matrix passes trivially.
//
// Inputs:
//   - m:   caller-owned square sparse matrix.
//   - tol: acceptable entrywise deviation, e.g. DefaultTolerance.
//
// Returns:
//   - error: nil when m is Hermitian (symmetric) within tol.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrNonSquare (rows != cols).
//   - ErrNaNInf (tol is NaN or ±Inf).
//   - ErrAsymmetry (first offending entry; the message carries (row,col)
//     and the deviation magnitude).
//
// Determinism:
//   - Row-major scan; the first reported violation is stable across runs.
//
// Complexity:
//   - Time O(nnz log nnz), Space O(nnz) for the ordered walk.
func CheckHermitian[T scalar.Scalar](m *Sparse[T], tol float64) error {
	// Validate the square-matrix precondition via the canonical validator.
	if err := ValidateSparseSquare(m); err != nil {
		return matrixErrorf(opCheckHermitian, err)
	}
	// Normalize the tolerance; non-finite tolerances are rejected.
	tol, err := ValidateTolerance(tol)
	if err != nil {
		return matrixErrorf(opCheckHermitian, err)
	}

	// One pass over explicit entries; the mirrored side reads as zero when absent.
	var mirror T     // conj counterpart M[j,i]
	var diff float64 // |M[i,j] - conj(M[j,i])|
	for _, k := range m.sortedCoords() { // deterministic row-major order
		mirror = m.data[coord{k.c, k.r}]             // zero value when the mirror entry is unstored
		diff = scalar.Abs(m.data[k] - scalar.Conj(mirror)) // entrywise deviation magnitude
		if diff > tol {                              // inclusive bound: diff == tol passes
			return fmt.Errorf("%s: |M[%d,%d]-conj(M[%d,%d])| = %g exceeds tol %g: %w",
				opCheckHermitian, k.r, k.c, k.c, k.r, diff, tol, ErrAsymmetry)
		}
	}

	return nil
}
