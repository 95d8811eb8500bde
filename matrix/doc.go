// SPDX-License-Identifier: MIT
// Package matrix offers sparse and dense matrix storage plus the sanity
// primitives built on top of it: identity construction, in-place diagonal
// regularization, and finiteness / symmetry (Hermitian) validation.
//
// The matrix package provides:
//
//   - Sparse[T]: coordinate storage of explicit entries; absent entries are
//     implicitly zero. Deterministic row-major iteration over stored entries.
//   - Dense[T]: flat row-major storage of all entries with strict bounds
//     checking, cloning, and debug-friendly printing.
//   - NewIdentity / ShiftDiagonal: the two constructive operations — a fresh
//     sparse N×N identity (N ≥ 0) and an in-place diagonal offset that
//     inserts missing diagonal entries (numerical regularization).
//   - CheckFinite / CheckHermitian: error-returning validation kernels, and
//     their Assert* counterparts that compile to true no-ops unless the
//     module is built with -tags matassert.
//
// All operations are generic over scalar.Scalar, so one kernel serves
// float32, float64, complex64 and complex128 entries; the complex
// instantiations validate the Hermitian property (M equals its conjugate
// transpose) instead of plain symmetry.
//
// Every operation is synchronous and operates solely on its caller-owned
// arguments; the package holds no shared state and performs no locking.
// Failures surface as package sentinel errors matched via errors.Is.
package matrix
