// Package matrix_test contains unit tests for the validation kernels:
// CheckFinite / CheckFiniteDense and CheckHermitian, plus the boolean facades.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlnum/matrix"
	"github.com/stretchr/testify/require"
)

// symTol is the tolerance used throughout the symmetry tests.
const symTol = 1e-10

// TestCheckFiniteAccepts verifies that matrices with only finite entries pass.
func TestCheckFiniteAccepts(t *testing.T) {
	m, err := matrix.NewSparse[float64](3, 3) // sparse matrix with a few finite entries
	require.NoError(t, err)                   // validate creation
	_ = m.Set(0, 0, 1.5)
	_ = m.Set(2, 1, -1e300) // huge but still finite

	require.NoError(t, matrix.CheckFinite(m)) // all stored entries are finite

	empty, err := matrix.NewSparse[float64](4, 4) // no explicit entries at all
	require.NoError(t, err)                       // validate creation
	require.NoError(t, matrix.CheckFinite(empty)) // implicit zeros are trivially finite
}

// TestCheckFiniteRejectsNaN verifies NaN detection with a located report.
func TestCheckFiniteRejectsNaN(t *testing.T) {
	m, err := matrix.NewSparse[float64](3, 3) // sparse matrix to poison
	require.NoError(t, err)                   // validate creation
	_ = m.Set(0, 0, 1.0)
	_ = m.Set(1, 2, math.NaN()) // inject the invalid entry

	err = matrix.CheckFinite(m)                // run the validator
	require.ErrorIs(t, err, matrix.ErrNaNInf)  // expect the numeric sentinel
	require.ErrorContains(t, err, "(1,2)")     // report names the offending location
}

// TestCheckFiniteRejectsInf verifies ±Inf detection.
func TestCheckFiniteRejectsInf(t *testing.T) {
	m, err := matrix.NewSparse[float64](2, 2) // sparse matrix to poison
	require.NoError(t, err)                   // validate creation
	_ = m.Set(1, 1, math.Inf(-1))             // inject -Inf

	err = matrix.CheckFinite(m)               // run the validator
	require.ErrorIs(t, err, matrix.ErrNaNInf) // expect the numeric sentinel
	require.ErrorContains(t, err, "(1,1)")    // report names the offending location
}

// TestCheckFiniteComplex requires both parts of a complex entry to be finite.
func TestCheckFiniteComplex(t *testing.T) {
	m, err := matrix.NewSparse[complex128](2, 2) // complex sparse matrix
	require.NoError(t, err)                      // validate creation
	_ = m.Set(0, 0, complex(1, 2))               // finite entry
	require.NoError(t, matrix.CheckFinite(m))    // passes while everything is finite

	_ = m.Set(0, 1, complex(0, math.Inf(1)))  // non-finite imaginary part
	err = matrix.CheckFinite(m)               // run again
	require.ErrorIs(t, err, matrix.ErrNaNInf) // the imaginary part alone is enough to fail
}

// TestCheckFiniteNil verifies the nil-argument contract channel.
func TestCheckFiniteNil(t *testing.T) {
	err := matrix.CheckFinite[float64](nil)      // nil sparse matrix
	require.ErrorIs(t, err, matrix.ErrNilMatrix) // expect ErrNilMatrix
}

// TestCheckFiniteDense verifies the dense scan across all entries.
func TestCheckFiniteDense(t *testing.T) {
	m, err := matrix.NewDense[float64](2, 3) // dense 2×3 matrix, all zeros
	require.NoError(t, err)                  // validate creation
	require.NoError(t, matrix.CheckFiniteDense(m)) // zeros are finite

	_ = m.Set(0, 1, math.Inf(1))              // inject +Inf
	err = matrix.CheckFiniteDense(m)          // run the validator
	require.ErrorIs(t, err, matrix.ErrNaNInf) // expect the numeric sentinel
	require.ErrorContains(t, err, "(0,1)")    // report names the flat-decoded location

	err = matrix.CheckFiniteDense[float64](nil)  // nil dense matrix
	require.ErrorIs(t, err, matrix.ErrNilMatrix) // expect ErrNilMatrix
}

// TestCheckHermitianIdentity verifies every identity is trivially symmetric.
func TestCheckHermitianIdentity(t *testing.T) {
	for _, n := range []int{0, 1, 4} { // include the empty identity
		ident, err := matrix.NewIdentity[float64](n)        // build the identity
		require.NoError(t, err)                             // construction succeeds
		require.NoError(t, matrix.CheckHermitian(ident, symTol)) // identity passes for any n
	}
}

// TestCheckHermitianSymmetric verifies a hand-built symmetric 3×3 passes.
func TestCheckHermitianSymmetric(t *testing.T) {
	m, err := matrix.NewSparse[float64](3, 3) // square 3×3 sparse matrix
	require.NoError(t, err)                   // validate creation

	// symmetric pattern: mirrored off-diagonal pairs plus a diagonal entry
	_ = m.Set(0, 1, 2.5)
	_ = m.Set(1, 0, 2.5)
	_ = m.Set(1, 2, -1.0)
	_ = m.Set(2, 1, -1.0)
	_ = m.Set(2, 2, 4.0)

	require.NoError(t, matrix.CheckHermitian(m, symTol)) // symmetric within tolerance
}

// TestCheckHermitianAsymmetric verifies the canonical 2×2 rejection case.
func TestCheckHermitianAsymmetric(t *testing.T) {
	m, err := matrix.NewSparse[float64](2, 2) // square 2×2 sparse matrix
	require.NoError(t, err)                   // validate creation
	_ = m.Set(0, 1, 1.0)                      // M[0,1]=1 while M[1,0] stays implicit zero

	err = matrix.CheckHermitian(m, symTol)        // run the validator
	require.ErrorIs(t, err, matrix.ErrAsymmetry)  // expect the asymmetry sentinel
	require.ErrorContains(t, err, "M[0,1]")       // report names the offending pair
}

// TestCheckHermitianInclusiveBound verifies a deviation of exactly tol passes.
func TestCheckHermitianInclusiveBound(t *testing.T) {
	m, err := matrix.NewSparse[float64](2, 2) // square 2×2 sparse matrix
	require.NoError(t, err)                   // validate creation
	_ = m.Set(0, 1, symTol)                   // deviation from the implicit zero mirror is exactly tol

	require.NoError(t, matrix.CheckHermitian(m, symTol)) // inclusive bound: == tol passes

	_ = m.Set(0, 1, 2*symTol)                    // now the deviation exceeds tol
	err = matrix.CheckHermitian(m, symTol)       // run again
	require.ErrorIs(t, err, matrix.ErrAsymmetry) // and the check fails
}

// TestCheckHermitianComplex verifies the conjugate-transpose semantics.
func TestCheckHermitianComplex(t *testing.T) {
	m, err := matrix.NewSparse[complex128](2, 2) // complex square matrix
	require.NoError(t, err)                      // validate creation

	// Hermitian pattern: mirrored conjugate pair with a real diagonal
	_ = m.Set(0, 0, complex(2, 0))
	_ = m.Set(0, 1, complex(2, 3))
	_ = m.Set(1, 0, complex(2, -3))

	require.NoError(t, matrix.CheckHermitian(m, symTol)) // Hermitian within tolerance

	// breaking the conjugation (same sign on both sides) must fail
	_ = m.Set(1, 0, complex(2, 3))
	err = matrix.CheckHermitian(m, symTol)       // run again
	require.ErrorIs(t, err, matrix.ErrAsymmetry) // expect the asymmetry sentinel
}

// TestCheckHermitianImaginaryDiagonal verifies a non-real diagonal fails the complex check.
func TestCheckHermitianImaginaryDiagonal(t *testing.T) {
	m, err := matrix.NewSparse[complex128](1, 1) // a single diagonal entry is enough
	require.NoError(t, err)                      // validate creation
	_ = m.Set(0, 0, complex(0, 1))               // purely imaginary diagonal entry

	err = matrix.CheckHermitian(m, symTol)       // Hermitian demands a real diagonal
	require.ErrorIs(t, err, matrix.ErrAsymmetry) // |i - conj(i)| = 2 far exceeds tol
}

// TestCheckHermitianContract verifies the shape/tolerance/nil contract channels.
func TestCheckHermitianContract(t *testing.T) {
	rect, err := matrix.NewSparse[float64](2, 3) // non-square 2×3 matrix
	require.NoError(t, err)                      // validate creation
	err = matrix.CheckHermitian(rect, symTol)    // symmetry is undefined off the square
	require.ErrorIs(t, err, matrix.ErrNonSquare) // expect ErrNonSquare

	sq, err := matrix.NewSparse[float64](2, 2)      // valid square matrix
	require.NoError(t, err)                         // validate creation
	err = matrix.CheckHermitian(sq, math.NaN())     // ill-formed tolerance
	require.ErrorIs(t, err, matrix.ErrNaNInf)       // expect ErrNaNInf

	err = matrix.CheckHermitian[float64](nil, symTol) // nil argument
	require.ErrorIs(t, err, matrix.ErrNilMatrix)      // expect ErrNilMatrix
}

// TestCheckHermitianNegativeTolerance verifies negative tol normalizes to |tol|.
func TestCheckHermitianNegativeTolerance(t *testing.T) {
	ident, err := matrix.NewIdentity[float64](3) // trivially symmetric input
	require.NoError(t, err)                      // construction succeeds

	require.NoError(t, matrix.CheckHermitian(ident, -symTol)) // -tol behaves as |tol|
}

// TestIsFiniteFacade verifies verdict folding and contract propagation.
func TestIsFiniteFacade(t *testing.T) {
	m, err := matrix.NewSparse[float64](2, 2) // finite matrix
	require.NoError(t, err)                   // validate creation
	_ = m.Set(0, 0, 1)

	ok, err := matrix.IsFinite(m) // positive verdict
	require.NoError(t, err)       // no contract violation
	require.True(t, ok)           // all entries finite

	_ = m.Set(1, 1, math.NaN())  // poison the matrix
	ok, err = matrix.IsFinite(m) // negative verdict
	require.NoError(t, err)      // invariant violations fold into the boolean
	require.False(t, ok)         // non-finite entry detected

	_, err = matrix.IsFinite[float64](nil)       // contract violation
	require.ErrorIs(t, err, matrix.ErrNilMatrix) // propagates as an error, not a verdict
}

// TestIsHermitianFacade verifies verdict folding and contract propagation.
func TestIsHermitianFacade(t *testing.T) {
	ident, err := matrix.NewIdentity[float64](3) // symmetric input
	require.NoError(t, err)                      // construction succeeds

	ok, err := matrix.IsHermitian(ident, symTol) // positive verdict
	require.NoError(t, err)                      // no contract violation
	require.True(t, ok)                          // identity is symmetric

	asym, err := matrix.NewSparse[float64](2, 2) // asymmetric input
	require.NoError(t, err)                      // validate creation
	_ = asym.Set(0, 1, 1)

	ok, err = matrix.IsHermitian(asym, symTol) // negative verdict
	require.NoError(t, err)                    // asymmetry folds into the boolean
	require.False(t, ok)                       // asymmetric beyond tolerance

	rect, err := matrix.NewSparse[float64](2, 3) // non-square input
	require.NoError(t, err)                      // validate creation
	_, err = matrix.IsHermitian(rect, symTol)    // contract violation
	require.ErrorIs(t, err, matrix.ErrNonSquare) // propagates as an error, not a verdict
}
