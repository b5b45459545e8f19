// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the checked elementwise operations Add, Sub and Hadamard, and
//     their in-place counterparts on *Matrix.
//   - Share one validation path and one flat kernel across all of them.
//
// Determinism & Performance:
//   - Fixed flat loop 0..n-1 over row-major storage.
//   - Pure forms allocate exactly one result buffer; in-place forms allocate nothing.
//
// Notes:
//   - Hadamard is the elementwise product. It is NOT the linear-algebra
//     matrix product and this package does not provide one.
//   - Nothing is written before validation succeeds, so a failed call never
//     leaves a partial result or a partially mutated receiver.

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opAdd            = "Add"
	opSub            = "Sub"
	opHadamard       = "Hadamard"
	opAddAssign      = "AddAssign"
	opSubAssign      = "SubAssign"
	opHadamardAssign = "HadamardAssign"
)

// elemOp selects the scalar combination applied by the kernel.
type elemOp int

const (
	elemAdd elemOp = iota
	elemSub
	elemMul
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// combineInto writes dst[i] = x[i] ⊙ y[i] for the selected operation.
// dst may alias x (in-place forms); lengths are validated by the caller.
// Complexity: O(n).
func combineInto[T Number](dst, x, y []T, op elemOp) {
	n := len(dst)
	// One branch per call, then a tight flat loop over row-major storage.
	switch op {
	case elemAdd:
		for i := 0; i < n; i++ {
			dst[i] = x[i] + y[i]
		}
	case elemSub:
		for i := 0; i < n; i++ {
			dst[i] = x[i] - y[i]
		}
	case elemMul:
		for i := 0; i < n; i++ {
			dst[i] = x[i] * y[i]
		}
	}
}

// elementwise validates a and b under the resolved policy and returns a fresh
// matrix shaped like a with the pairwise combination of both storages.
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch (see ValidateBinary), wrapped with opTag.
//
// Complexity: Time O(r*c), Space O(r*c).
func elementwise[T Number](a, b *Matrix[T], op elemOp, opTag string, opts []Option) (*Matrix[T], error) {
	// Stage 1 (Resolve): options over defaults.
	o := gatherOptions(opts...)
	// Stage 2 (Validate): nil, shape under policy, storage length.
	if err := ValidateBinary(a, b, o.shapePolicy); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	// Stage 3 (Allocate): result takes a's shape and numeric policy.
	res := &Matrix[T]{
		rows:           a.rows,
		cols:           a.cols,
		data:           make([]T, len(a.data)),
		validateNaNInf: a.validateNaNInf,
	}
	// Stage 4 (Execute)
	combineInto(res.data, a.data, b.data, op)

	return res, nil
}

// elementwiseInPlace is elementwise writing into m's own storage.
// On error m is left exactly as it was.
func (m *Matrix[T]) elementwiseInPlace(other *Matrix[T], op elemOp, opTag string, opts []Option) error {
	o := gatherOptions(opts...)
	// Validate everything before the first write.
	if err := ValidateBinary(m, other, o.shapePolicy); err != nil {
		return matrixErrorf(opTag, err)
	}
	// dst aliases x; each index is read before it is written.
	combineInto(m.data, m.data, other.data, op)

	return nil
}

// Add returns a new matrix C with C(r,c) = A(r,c) + B(r,c).
//
// Errors:
//   - ErrNilMatrix (nil operand), ErrShapeMismatch (incompatible shapes).
//
// Complexity: Time O(r*c), Space O(r*c). Inputs are never mutated.
func Add[T Number](a, b *Matrix[T], opts ...Option) (*Matrix[T], error) {
	return elementwise(a, b, elemAdd, opAdd, opts)
}

// Sub returns a new matrix C with C(r,c) = A(r,c) - B(r,c).
//
// Errors:
//   - ErrNilMatrix (nil operand), ErrShapeMismatch (incompatible shapes).
//
// Complexity: Time O(r*c), Space O(r*c). Inputs are never mutated.
func Sub[T Number](a, b *Matrix[T], opts ...Option) (*Matrix[T], error) {
	return elementwise(a, b, elemSub, opSub, opts)
}

// Hadamard returns the elementwise product C(r,c) = A(r,c) * B(r,c).
// This is not matrix multiplication.
//
// Errors:
//   - ErrNilMatrix (nil operand), ErrShapeMismatch (incompatible shapes).
//
// Complexity: Time O(r*c), Space O(r*c). Inputs are never mutated.
func Hadamard[T Number](a, b *Matrix[T], opts ...Option) (*Matrix[T], error) {
	return elementwise(a, b, elemMul, opHadamard, opts)
}

// AddAssign overwrites m with m + other.
// Same validation as Add; on error m is unchanged.
// Complexity: Time O(r*c), Space O(1).
func (m *Matrix[T]) AddAssign(other *Matrix[T], opts ...Option) error {
	return m.elementwiseInPlace(other, elemAdd, opAddAssign, opts)
}

// SubAssign overwrites m with m - other.
// Same validation as Sub; on error m is unchanged.
// Complexity: Time O(r*c), Space O(1).
func (m *Matrix[T]) SubAssign(other *Matrix[T], opts ...Option) error {
	return m.elementwiseInPlace(other, elemSub, opSubAssign, opts)
}

// HadamardAssign overwrites m with the elementwise product m ⊙ other.
// Complexity: Time O(r*c), Space O(1).
func (m *Matrix[T]) HadamardAssign(other *Matrix[T], opts ...Option) error {
	return m.elementwiseInPlace(other, elemMul, opHadamardAssign, opts)
}
