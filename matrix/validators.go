// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for operand checks.
//  - Keep kernels minimal by delegating nil/shape/length checks here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly with matrixErrorf.
//
// Determinism & Performance:
//  - All checks are pure, deterministic, O(1) and allocate only on failure.
//
// Note:
//  - Composite validators follow a fixed sequence: NotNil → Shape → Length.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateDims rejects negative dimensions and shapes whose element count
// does not fit in an int, and returns rows*cols.
// Complexity: O(1).
func validateDims(rows, cols int) (int, error) {
	// Negative sizes never describe a grid.
	if rows < 0 || cols < 0 {
		return 0, validatorErrorf("validateDims", fmt.Errorf("%dx%d: %w", rows, cols, ErrBadShape))
	}
	// Guard the product before computing it; a wrapped rows*cols would let a
	// short storage pass the length check.
	if cols != 0 && rows > math.MaxInt/cols {
		return 0, validatorErrorf("validateDims", fmt.Errorf("%dx%d overflows int: %w", rows, cols, ErrBadShape))
	}

	return rows * cols, nil
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil[T Number](m *Matrix[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b are compatible under policy p.
//
//   - ShapeStrict: a.rows == b.rows && a.cols == b.cols.
//   - ShapeLegacy: a.rows == b.rows && a.cols == b.rows.
//
// Assumes a and b are not nil (caller must ensure).
// Returns wrapped ErrShapeMismatch naming both shapes.
// Complexity: O(1).
func ValidateSameShape[T Number](a, b *Matrix[T], p ShapePolicy) error {
	// Strict pairs cols with cols; legacy pairs a.cols with b.rows.
	want := b.cols
	if p == ShapeLegacy {
		want = b.rows
	}
	if a.rows != b.rows || a.cols != want {
		return validatorErrorf("ValidateSameShape",
			fmt.Errorf("%dx%d vs %dx%d (%s): %w", a.rows, a.cols, b.rows, b.cols, p, ErrShapeMismatch))
	}

	return nil
}

// ValidateSameLen ensures both storages have the same number of elements, so
// a pairwise walk covers every element of each operand exactly once.
// Complexity: O(1).
func ValidateSameLen[T Number](a, b *Matrix[T]) error {
	if len(a.data) != len(b.data) {
		return validatorErrorf("ValidateSameLen",
			fmt.Errorf("%d vs %d elements: %w", len(a.data), len(b.data), ErrShapeMismatch))
	}

	return nil
}

// ValidateBinary is the composite NotNil(a) → NotNil(b) → SameShape → SameLen.
// Errors: ErrNilMatrix, ErrShapeMismatch.
// Complexity: O(1).
func ValidateBinary[T Number](a, b *Matrix[T], p ShapePolicy) error {
	// 1) Nil operands first: later checks dereference both.
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinary", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinary", err)
	}
	// 2) Policy-level shape rule.
	if err := ValidateSameShape(a, b, p); err != nil {
		return validatorErrorf("ValidateBinary", err)
	}
	// 3) Storage length, whatever the policy accepted.
	if err := ValidateSameLen(a, b); err != nil {
		return validatorErrorf("ValidateBinary", err)
	}

	return nil
}
