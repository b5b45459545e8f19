// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Checked operations MUST return these sentinels and tests MUST match
// them via errors.Is. Panics are reserved for the Must* forms and for
// nonsensical Option values.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." so it greps well in logs.
// Return sentinels wrapped with an operation tag via matrixErrorf; callers
// still match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil operand -> shape policy -> storage length.

var (
	// ErrShapeMismatch indicates incompatible shapes between two operands of an
	// elementwise operation, as judged by the active ShapePolicy.
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrIndexOutOfRange indicates that a 1-indexed row or column is outside
	// [1, rows] or [1, cols]. Get/Set return this, never panic.
	ErrIndexOutOfRange = errors.New("matrix: index out of range")

	// ErrBadShape is returned when dimensions are negative or the backing
	// storage length differs from rows*cols.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf value was rejected by the numeric policy.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)

// ErrDimensionMismatch names the same condition as ErrShapeMismatch.
var ErrDimensionMismatch = ErrShapeMismatch

// ErrOutOfRange names the same condition as ErrIndexOutOfRange.
var ErrOutOfRange = ErrIndexOutOfRange
