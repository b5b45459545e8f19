// SPDX-License-Identifier: MIT

// Package matrix: the Matrix container and its constructors.
//
// Purpose:
//   - Hold a fixed-shape, row-major grid of Number values in one flat slice.
//   - Keep construction the only place where the storage invariant
//     len(data) == rows*cols is established; nothing reshapes afterwards.
//
// Complexity quicksheet:
//   - New: O(1) (O(r*c) with NaN/Inf validation); Zeros/Ones/Filled/FromRows: O(r*c).
package matrix

import "fmt"

const (
	ctxNew      = "New"
	ctxFromRows = "FromRows"
	ctxFilled   = "Filled"
)

// Matrix is a dense, row-major rows×cols grid of T.
// The zero value is a valid 0×0 matrix.
type Matrix[T Number] struct {
	rows, cols     int  // shape, fixed for the matrix lifetime
	data           []T  // flat backing storage, length == rows*cols
	validateNaNInf bool // numeric policy applied by Set
}

// New wraps data as a rows×cols matrix. New takes ownership of data: the
// caller must not modify the slice afterwards.
//
// Errors:
//   - ErrBadShape if rows < 0, cols < 0, rows*cols overflows int or len(data) != rows*cols.
//   - ErrNaNInf if WithValidateNaNInf is given and data holds NaN/±Inf.
//
// Complexity: O(1), or O(r*c) when NaN/Inf validation is enabled.
func New[T Number](rows, cols int, data []T, opts ...Option) (*Matrix[T], error) {
	o := gatherOptions(opts...)
	// Stage 1 (Validate): shape, then storage length against the checked area.
	n, err := validateDims(rows, cols)
	if err != nil {
		return nil, matrixErrorf(ctxNew, err)
	}
	if len(data) != n {
		return nil, matrixErrorf(ctxNew,
			fmt.Errorf("%dx%d needs %d elements, got %d: %w", rows, cols, n, len(data), ErrBadShape))
	}
	// Stage 2 (Policy): optional finite-only scan.
	if o.validateNaNInf {
		if idx := firstNonFinite(data); idx >= 0 {
			return nil, matrixErrorf(ctxNew, fmt.Errorf("offset %d: %w", idx, ErrNaNInf))
		}
	}
	// Stage 3 (Finalize): never keep a nil backing slice.
	if data == nil {
		data = []T{}
	}

	return &Matrix[T]{rows: rows, cols: cols, data: data, validateNaNInf: o.validateNaNInf}, nil
}

// MustNew is New that panics on error. Intended for literals in tests and examples.
func MustNew[T Number](rows, cols int, data []T, opts ...Option) *Matrix[T] {
	m, err := New(rows, cols, data, opts...)
	if err != nil {
		panic(err)
	}

	return m
}

// Filled returns a rows×cols matrix with every element set to v.
// Errors: ErrBadShape on negative or overflowing dimensions; ErrNaNInf if validation is on and v is non-finite.
// Complexity: O(r*c).
func Filled[T Number](rows, cols int, v T, opts ...Option) (*Matrix[T], error) {
	o := gatherOptions(opts...)
	n, err := validateDims(rows, cols)
	if err != nil {
		return nil, matrixErrorf(ctxFilled, err)
	}
	if o.validateNaNInf && isNonFinite(v) {
		return nil, matrixErrorf(ctxFilled, ErrNaNInf)
	}
	// make() zero-fills; only a non-zero fill value needs the extra pass.
	data := make([]T, n)
	var zero T
	if v != zero {
		for i := range data {
			data[i] = v
		}
	}

	return &Matrix[T]{rows: rows, cols: cols, data: data, validateNaNInf: o.validateNaNInf}, nil
}

// Zeros returns a rows×cols matrix of zero values (additive identity).
func Zeros[T Number](rows, cols int, opts ...Option) (*Matrix[T], error) {
	return Filled[T](rows, cols, 0, opts...)
}

// Ones returns a rows×cols matrix of ones (Hadamard identity).
func Ones[T Number](rows, cols int, opts ...Option) (*Matrix[T], error) {
	return Filled[T](rows, cols, 1, opts...)
}

// FromRows copies a slice of equal-length rows into a new matrix.
// An empty input yields a 0×0 matrix; ragged input is ErrBadShape.
// Complexity: O(r*c).
func FromRows[T Number](rows [][]T, opts ...Option) (*Matrix[T], error) {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	data := make([]T, 0, r*c)
	for i, row := range rows {
		if len(row) != c {
			return nil, matrixErrorf(ctxFromRows,
				fmt.Errorf("row %d has %d columns, want %d: %w", i+1, len(row), c, ErrBadShape))
		}
		data = append(data, row...)
	}

	return New(r, c, data, opts...)
}

// Rows returns the number of rows.
func (m *Matrix[T]) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix[T]) Cols() int { return m.cols }

// Shape returns (rows, cols).
func (m *Matrix[T]) Shape() (int, int) { return m.rows, m.cols }

// Len returns the number of stored elements.
func (m *Matrix[T]) Len() int { return len(m.data) }

// Data returns a copy of the storage in row-major order.
// Complexity: O(r*c).
func (m *Matrix[T]) Data() []T {
	out := make([]T, len(m.data))
	copy(out, m.data)

	return out
}

// Clone returns a deep copy; the numeric policy is carried over.
// Complexity: O(r*c).
func (m *Matrix[T]) Clone() *Matrix[T] {
	return &Matrix[T]{rows: m.rows, cols: m.cols, data: m.Data(), validateNaNInf: m.validateNaNInf}
}

// Equal reports whether m and other have the same shape and the same elements.
// Two nil matrices are equal. NaN never equals itself.
func (m *Matrix[T]) Equal(other *Matrix[T]) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.rows != other.rows || m.cols != other.cols || len(m.data) != len(other.data) {
		return false
	}
	for i := range m.data {
		if m.data[i] != other.data[i] {
			return false
		}
	}

	return true
}
