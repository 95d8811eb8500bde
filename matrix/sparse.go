// SPDX-License-Identifier: MIT
// Package matrix: Sparse — coordinate storage of explicit entries.
// Sparse keeps only the entries that were explicitly written; every absent
// position is implicitly the additive identity of the scalar field. This is
// the storage shape the constructive operations (NewIdentity, ShiftDiagonal)
// and the sparse validation kernels operate on.

package matrix

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/lvlnum/scalar"
)

// coord keys one explicit entry by (row, col).
type coord struct {
	r, c int
}

// Sparse is a coordinate (map-backed) sparse matrix over the scalar field T.
// Absent entries are implicitly zero; explicit zeros may be stored (they are
// structural: NNZ counts them, ForEach visits them).
//
// Ownership: Sparse values are caller-owned; no internal locking is provided,
// and the caller must not access one instance concurrently with a mutation.
type Sparse[T scalar.Scalar] struct {
	rows, cols int         // matrix shape; indices live in [0,rows)×[0,cols)
	data       map[coord]T // explicit entries keyed by (row, col)
}

// sparseErrorf wraps an underlying error with Sparse method context.
func sparseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Sparse.%s(%d,%d): %w", method, row, col, err)
}

// NewSparse creates a rows×cols Sparse matrix with no explicit entries.
// Stage 1 (Validate): ensure rows and cols ≥ 0 — a 0×0 (or 0×c, r×0) matrix
// is a valid empty matrix, unlike Dense which requires positive dimensions.
// Stage 2 (Prepare): allocate the entry map.
// Stage 3 (Finalize): return new Sparse or ErrInvalidDimensions.
// Complexity: O(1) time and memory.
func NewSparse[T scalar.Scalar](rows, cols int) (*Sparse[T], error) {
	// Validate dimensions: only negative shapes are rejected.
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}

	// Return initialized Sparse with an empty entry map.
	return &Sparse[T]{rows: rows, cols: cols, data: make(map[coord]T)}, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Sparse[T]) Rows() int {
	return m.rows // return stored row count
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Sparse[T]) Cols() int {
	return m.cols // return stored column count
}

// NNZ returns the number of explicit stored entries, including explicit
// zeros inserted structurally (e.g. by ShiftDiagonal with a zero shift).
// Complexity: O(1).
func (m *Sparse[T]) NNZ() int {
	return len(m.data) // map length is the explicit-entry count
}

// inBounds reports whether (row, col) lies inside [0,rows)×[0,cols).
// Complexity: O(1).
func (m *Sparse[T]) inBounds(row, col int) bool {
	return row >= 0 && row < m.rows && col >= 0 && col < m.cols
}

// At retrieves the entry at (row, col); absent entries read as zero.
// Stage 1 (Validate): bounds check.
// Stage 2 (Execute): map lookup; the zero value of T is the implicit zero.
// Complexity: O(1) expected.
func (m *Sparse[T]) At(row, col int) (T, error) {
	// Validate indices against the matrix shape.
	if !m.inBounds(row, col) {
		return scalar.Zero[T](), sparseErrorf("At", row, col, ErrOutOfRange)
	}

	// Absent keys yield the zero value, which is exactly the implicit zero.
	return m.data[coord{row, col}], nil
}

// Set stores v at (row, col), inserting or overwriting the explicit entry.
// Note that storing an exact zero keeps an explicit entry (NNZ grows); use
// Del to remove an entry from the structure.
// Complexity: O(1) expected.
func (m *Sparse[T]) Set(row, col int, v T) error {
	// Validate indices against the matrix shape.
	if !m.inBounds(row, col) {
		return sparseErrorf("Set", row, col, ErrOutOfRange)
	}
	// Insert or overwrite the explicit entry.
	m.data[coord{row, col}] = v

	return nil
}

// AddAt adds v to the entry at (row, col), inserting it if absent (the
// absent entry is treated as zero). This is the amortized single-entry
// update the diagonal shifter relies on.
// Complexity: O(1) expected.
func (m *Sparse[T]) AddAt(row, col int, v T) error {
	// Validate indices against the matrix shape.
	if !m.inBounds(row, col) {
		return sparseErrorf("AddAt", row, col, ErrOutOfRange)
	}
	// Accumulate into the existing entry (zero when absent).
	m.data[coord{row, col}] += v

	return nil
}

// Del removes the explicit entry at (row, col) if present; the position
// reads as zero afterwards. Deleting an absent entry is a no-op.
// Complexity: O(1) expected.
func (m *Sparse[T]) Del(row, col int) error {
	// Validate indices against the matrix shape.
	if !m.inBounds(row, col) {
		return sparseErrorf("Del", row, col, ErrOutOfRange)
	}
	// Drop the entry; absent keys make this a no-op.
	delete(m.data, coord{row, col})

	return nil
}

// sortedCoords returns the keys of all explicit entries in row-major order.
// Centralizing the ordering keeps every traversal in the package (iteration,
// validation, printing) deterministic regardless of map iteration order.
// Complexity: O(nnz log nnz) time, O(nnz) space.
func (m *Sparse[T]) sortedCoords() []coord {
	// Collect all keys once.
	keys := make([]coord, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	// Sort row-major: by row, then by column.
	sort.Slice(keys, func(a, b int) bool {
		if keys[a].r != keys[b].r {
			return keys[a].r < keys[b].r
		}
		return keys[a].c < keys[b].c
	})

	return keys
}

// ForEach visits every explicit stored entry in deterministic row-major
// order, calling fn(row, col, value) for each. Absent (implicitly zero)
// positions are never visited. fn must not mutate m during the walk.
// Complexity: O(nnz log nnz) time for the ordering, O(nnz) space.
func (m *Sparse[T]) ForEach(fn func(row, col int, v T)) {
	// Walk the precomputed row-major order for reproducible visiting.
	for _, k := range m.sortedCoords() {
		fn(k.r, k.c, m.data[k])
	}
}

// Clone returns a deep copy of the Sparse matrix; the copy shares no storage
// with the original.
// Complexity: O(nnz) time and memory.
func (m *Sparse[T]) Clone() *Sparse[T] {
	// Allocate a fresh map sized to the current entry count.
	cp := make(map[coord]T, len(m.data))
	for k, v := range m.data {
		cp[k] = v
	}

	return &Sparse[T]{rows: m.rows, cols: m.cols, data: cp}
}

// Transpose returns a fresh cols×rows matrix with entry (i,j) moved to (j,i).
// The receiver is never mutated.
// Complexity: O(nnz) time and memory.
func (m *Sparse[T]) Transpose() *Sparse[T] {
	// Allocate the transposed container with flipped shape.
	t := &Sparse[T]{rows: m.cols, cols: m.rows, data: make(map[coord]T, len(m.data))}
	// Move every explicit entry across the diagonal.
	for k, v := range m.data {
		t.data[coord{k.c, k.r}] = v
	}

	return t
}

// ConjTranspose returns the conjugate transpose (adjoint) of m: entry (i,j)
// moves to (j,i) and is conjugated. For real fields this equals Transpose.
// The receiver is never mutated.
// Complexity: O(nnz) time and memory.
func (m *Sparse[T]) ConjTranspose() *Sparse[T] {
	// Allocate the adjoint container with flipped shape.
	t := &Sparse[T]{rows: m.cols, cols: m.rows, data: make(map[coord]T, len(m.data))}
	// Move and conjugate every explicit entry.
	for k, v := range m.data {
		t.data[coord{k.c, k.r}] = scalar.Conj(v)
	}

	return t
}

// String implements fmt.Stringer for easy debugging: every position is
// rendered (including implicit zeros), one bracketed row per line. Intended
// for small matrices; cost is proportional to the full shape.
// Complexity: O(rows*cols) for string construction.
func (m *Sparse[T]) String() string {
	var b strings.Builder
	var i, j int
	for i = 0; i < m.rows; i++ { // iterate over rows
		b.WriteString("[") // open row
		for j = 0; j < m.cols; j++ { // iterate over columns
			// absent entries render as the zero value
			fmt.Fprintf(&b, "%v", m.data[coord{i, j}])
			if j < m.cols-1 {
				b.WriteString(", ") // separate values with comma
			}
		}
		b.WriteString("]\n") // close row
	}

	return b.String()
}
