// SPDX-License-Identifier: MIT
// Package scalar defines the field abstraction shared by every lvlnum
// operation: the Scalar constraint set and the small capability kit
// (identities, finiteness predicate, conjugate, magnitude) required to
// write one generic kernel for both real and complex entries.
//
// The scalar package provides:
//
//   - Real, Complex and Scalar constraints over the four exact machine
//     scalar types (float32, float64, complex64, complex128).
//   - Zero/One — the additive and multiplicative identities of the field.
//   - IsFinite — the finiteness predicate (for complex values both the
//     real and the imaginary part must be finite).
//   - Conj — complex conjugation; the identity function on real fields.
//   - Abs — magnitude as float64, the common currency for tolerance
//     comparisons across all four instantiations.
//
// All helpers are pure, deterministic and allocation-free; none of them
// touches shared state, so they are safe for concurrent use.
package scalar
