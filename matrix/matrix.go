// SPDX-License-Identifier: MIT

// Package matrix defines the Matrix interface and its Dense implementation.
//
// What & Why:
//
//	A Matrix is a two-dimensional array of float64 values with bounds-checked
//	access. The routing packages store cost tables in a Dense matrix and derive
//	new tables through pure kernels (MaskedAffine) that never touch their input.
//
// Complexity:
//
//	Rows() and Cols() run in O(1) time.
//	At() and Set() perform bounds checking in O(1) time, returning an error on invalid indices.
//	Clone() performs a deep copy in O(rows*cols) time, allocating new storage.
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
// Each method enforces bounds checking and returns clear errors on misuse.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	Clone() Matrix
}

// Axis selects which index of a cell (i, j) picks the broadcast entry
// in row/column-wise kernels.
type Axis int

const (
	// AxisRows broadcasts vec[i] along row i.
	AxisRows Axis = iota

	// AxisCols broadcasts vec[j] down column j.
	AxisCols
)

// String implements fmt.Stringer.
func (a Axis) String() string {
	switch a {
	case AxisRows:
		return "rows"
	case AxisCols:
		return "cols"
	default:
		return "unknown"
	}
}
