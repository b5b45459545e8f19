// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - The "operator" tier: MustAdd, MustSub, MustHadamard and the in-place
//     MustAddAssign / MustSubAssign. They express the caller's claim that the
//     operands already have identical shapes.
//
// Contract:
//   - Stage 1: assert rows AND cols are equal; panic with an error wrapping
//     ErrShapeMismatch otherwise.
//   - Stage 2: delegate to the checked form with the same options and panic
//     on any error it reports. Under ShapeLegacy a non-square pair passes
//     Stage 1 and fails Stage 2; that still panics, it is never swallowed.
//
// Use the checked forms (Add, Sub, Hadamard, *Assign) when mismatches are an
// expected runtime condition.

package matrix

import "fmt"

// assertSameShape panics unless a and b are non-nil with equal rows and cols.
func assertSameShape[T Number](op string, a, b *Matrix[T]) {
	if a == nil || b == nil {
		panic(matrixErrorf(op, ErrNilMatrix))
	}
	if a.rows != b.rows || a.cols != b.cols {
		panic(matrixErrorf(op,
			fmt.Errorf("assert %dx%d == %dx%d: %w", a.rows, a.cols, b.rows, b.cols, ErrShapeMismatch)))
	}
}

// MustAdd is Add for operands known to share a shape; it panics otherwise.
func MustAdd[T Number](a, b *Matrix[T], opts ...Option) *Matrix[T] {
	assertSameShape(opAdd, a, b)
	res, err := Add(a, b, opts...)
	if err != nil {
		panic(err)
	}

	return res
}

// MustSub is Sub for operands known to share a shape; it panics otherwise.
func MustSub[T Number](a, b *Matrix[T], opts ...Option) *Matrix[T] {
	assertSameShape(opSub, a, b)
	res, err := Sub(a, b, opts...)
	if err != nil {
		panic(err)
	}

	return res
}

// MustHadamard is Hadamard for operands known to share a shape; it panics otherwise.
func MustHadamard[T Number](a, b *Matrix[T], opts ...Option) *Matrix[T] {
	assertSameShape(opHadamard, a, b)
	res, err := Hadamard(a, b, opts...)
	if err != nil {
		panic(err)
	}

	return res
}

// MustAddAssign is AddAssign that panics instead of returning an error.
func (m *Matrix[T]) MustAddAssign(other *Matrix[T], opts ...Option) {
	assertSameShape(opAddAssign, m, other)
	if err := m.AddAssign(other, opts...); err != nil {
		panic(err)
	}
}

// MustSubAssign is SubAssign that panics instead of returning an error.
func (m *Matrix[T]) MustSubAssign(other *Matrix[T], opts ...Option) {
	assertSameShape(opSubAssign, m, other)
	if err := m.SubAssign(other, opts...); err != nil {
		panic(err)
	}
}
