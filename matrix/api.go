// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin entry points with intention-revealing names.
//   - Avoid any logic duplication — each facade delegates to the canonical implementation.

package matrix

// ---------- Constructors & Utilities ----------

// ZerosLike returns a zero matrix with the same shape and numeric policy as m.
// Errors: ErrNilMatrix when m is nil.
// Complexity: O(r*c).
func ZerosLike[T Number](m *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return Zeros[T](m.rows, m.cols, policyOf(m))
}

// OnesLike returns a matrix of ones with the same shape and numeric policy as m.
// Errors: ErrNilMatrix when m is nil.
// Complexity: O(r*c).
func OnesLike[T Number](m *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("OnesLike", err)
	}

	return Ones[T](m.rows, m.cols, policyOf(m))
}

// policyOf returns the Option reproducing m's numeric policy.
func policyOf[T Number](m *Matrix[T]) Option {
	if m.validateNaNInf {
		return WithValidateNaNInf()
	}

	return WithNoValidateNaNInf()
}

// ---------- Elementwise (facades map 1:1 to kernels; O(rc)) ----------

// Sum is an alias for Add: elementwise a + b.
func Sum[T Number](a, b *Matrix[T], opts ...Option) (*Matrix[T], error) {
	return Add(a, b, opts...)
}

// Diff is an alias for Sub: elementwise a − b.
func Diff[T Number](a, b *Matrix[T], opts ...Option) (*Matrix[T], error) {
	return Sub(a, b, opts...)
}

// HadamardProd is an alias for Hadamard: elementwise a ⊙ b.
func HadamardProd[T Number](a, b *Matrix[T], opts ...Option) (*Matrix[T], error) {
	return Hadamard(a, b, opts...)
}
