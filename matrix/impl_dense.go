// SPDX-License-Identifier: MIT

// Package matrix - 1-indexed accessors over row-major storage.
//
// Purpose:
//   - Expose the public 1-indexed contract Get(row, col) / Set(row, col, v)
//     over a 0-indexed flat buffer with offset cols*(row-1) + (col-1).
//   - Guarantee safety at the public surface: Get/Set return errors instead of
//     panicking, and bounds are checked BEFORE any subtraction.
//
// Complexity quicksheet:
//   - Get/Set: O(1); String: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxGet = "Get"
	ctxSet = "Set"
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// accessErrorf wraps an error with the accessor name and the requested coordinates.
func accessErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

var _ fmt.Stringer = (*Matrix[int])(nil)

// offset maps 1-indexed (row, col) to a flat offset.
// Stage 1 (Validate): 1 ≤ row ≤ rows and 1 ≤ col ≤ cols.
// Stage 2 (Execute): cols*(row-1) + col-1.
// Complexity: O(1).
func (m *Matrix[T]) offset(row, col int) (int, error) {
	if row < 1 || row > m.rows {
		return 0, fmt.Errorf("row %d not in [1,%d]: %w", row, m.rows, ErrIndexOutOfRange)
	}
	if col < 1 || col > m.cols {
		return 0, fmt.Errorf("col %d not in [1,%d]: %w", col, m.cols, ErrIndexOutOfRange)
	}

	return m.cols*(row-1) + col - 1, nil
}

// Get returns a copy of the element at 1-indexed (row, col).
//
// Errors:
//   - ErrNilMatrix on a nil receiver.
//   - ErrIndexOutOfRange if row ∉ [1, Rows()] or col ∉ [1, Cols()]; row 0 included.
//
// Complexity: O(1).
func (m *Matrix[T]) Get(row, col int) (T, error) {
	var zero T
	if m == nil {
		return zero, accessErrorf(ctxGet, row, col, ErrNilMatrix)
	}
	off, err := m.offset(row, col)
	if err != nil {
		return zero, accessErrorf(ctxGet, row, col, err)
	}

	return m.data[off], nil
}

// MustGet is Get that panics on error.
func (m *Matrix[T]) MustGet(row, col int) T {
	v, err := m.Get(row, col)
	if err != nil {
		panic(err)
	}

	return v
}

// Set assigns v at 1-indexed (row, col).
//
// Errors:
//   - ErrNilMatrix, ErrIndexOutOfRange as for Get.
//   - ErrNaNInf if the matrix was built with WithValidateNaNInf and v is NaN/±Inf.
//
// Complexity: O(1).
func (m *Matrix[T]) Set(row, col int, v T) error {
	if m == nil {
		return accessErrorf(ctxSet, row, col, ErrNilMatrix)
	}
	// Bounds first, then the numeric policy; storage is touched last.
	off, err := m.offset(row, col)
	if err != nil {
		return accessErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && isNonFinite(v) {
		return accessErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// String renders one bracketed row per line, e.g. "[1, 2]\n[3, 4]\n".
// A nil matrix renders as "<nil>".
func (m *Matrix[T]) String() string {
	if m == nil {
		return "<nil>"
	}
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.rows; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.cols
		for j = 0; j < m.cols; j++ {
			fmt.Fprintf(&b, "%v", m.data[base+j])
			if j+1 < m.cols {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
