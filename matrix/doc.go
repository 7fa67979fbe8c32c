// SPDX-License-Identifier: MIT

// Package matrix provides the dense float64 storage and the validation and
// element-wise kernels used by the routing packages.
//
// Overview:
//
//   - Dense: row-major r×c matrix with bounds-checked At/Set, deep Clone and
//     copy-in/copy-out helpers (NewDenseFromRows, Row, ToRows).
//   - Validators: ValidateSquareRows, ValidateVecLen, ValidateFinite,
//     ValidateNonNegative(Rows). Each returns a sentinel tagged with the
//     validator name; match it with errors.Is.
//   - MaskedAffine: out = X*mul/div + vec[axis] on non-zero cells only. This is
//     the kernel behind fuel-plus-toll edge pricing.
//
// Zero as "absent":
//
//	The tables handled here follow the adjacency convention where a zero cell
//	means "no edge". Kernels preserve that: a zero cell is never rewritten,
//	so no synthetic edges appear in derived tables.
//
// Errors (sentinel):
//
//	ErrInvalidDimensions, ErrOutOfRange, ErrDimensionMismatch, ErrNonSquare,
//	ErrNaNInf, ErrNegativeValue, ErrNilMatrix, ErrZeroDivisor.
//
// Example:
//
//	m, _ := matrix.NewDenseFromRows([][]float64{{0, 4}, {2, 0}})
//	out, _ := matrix.MaskedAffine(m, 2, 5, []float64{1, 2}, matrix.AxisRows)
//	fmt.Print(out) // [0, 2.6]\n[2.8, 0]\n
package matrix
