// Package lvlnum is a compact toolbox of sanity-check and construction
// primitives for sparse and dense matrices feeding numerical pipelines —
// discretized operators, regularized systems, solver inputs.
//
// 🚀 What is lvlnum?
//
//	A small, thread-agnostic, zero-dependency library that brings together:
//		• Scalar fields: one constraint set covering float32/float64/complex64/complex128
//		• Storage: coordinate Sparse and flat row-major Dense containers
//		• Constructors: sparse identity of any dimension (including 0×0)
//		• Regularization: in-place diagonal shifting for near-singular systems
//		• Validation: finiteness and symmetry/Hermitian checks with tolerances
//		• Debug assertions: compiled out entirely unless built with -tags matassert
//
// ✨ Why choose lvlnum?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – sentinel errors, strict fail-fast validation
//   - Pure Go – no cgo, no hidden deps
//   - Honest costs – every operation documents its complexity and determinism
//
// Everything is organized under two subpackages:
//
//	scalar/ — the field abstraction: identities, finiteness, conjugate, magnitude
//	matrix/ — Sparse & Dense storage plus the four operations built on them
//
// Quick example:
//
//	I, _ := matrix.NewIdentity[float64](3)   // sparse 3×3 identity
//	_ = matrix.Regularize(I)                 // diagonal += 1e-4
//	if err := matrix.CheckHermitian(I, 1e-10); err != nil {
//		// unreachable: a shifted identity stays symmetric
//	}
//
// See the examples in matrix/ for complex-field and assertion usage patterns.
package lvlnum
