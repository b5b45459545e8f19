// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for elementwise operations and the
// numeric policy. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - ShapePolicy decides which operand dimensions must agree before an
//     elementwise kernel runs. ShapeStrict compares rows with rows and cols with
//     cols. ShapeLegacy compares the left cols with the right ROWS, reproducing
//     the historical check of earlier elementwise routines; it is kept only
//     for behavioral parity and is observable only on non-square operands.
//   - Whatever the policy, kernels refuse to pair storages of different length.
//   - validateNaNInf is recorded on a Matrix at construction and applied by Set;
//     elementwise results inherit the left operand's policy.
package matrix

import "fmt"

// ShapePolicy selects the operand compatibility rule of elementwise operations.
type ShapePolicy int

const (
	// ShapeStrict requires a.rows == b.rows && a.cols == b.cols.
	ShapeStrict ShapePolicy = iota

	// ShapeLegacy requires a.rows == b.rows && a.cols == b.rows.
	ShapeLegacy
)

// String renders the policy name for error messages and test names.
func (p ShapePolicy) String() string {
	switch p {
	case ShapeStrict:
		return "strict"
	case ShapeLegacy:
		return "legacy"
	default:
		return fmt.Sprintf("ShapePolicy(%d)", int(p))
	}
}

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultShapePolicy is the corrected rows/rows, cols/cols comparison.
	DefaultShapePolicy = ShapeStrict

	// DefaultValidateNaNInf leaves non-finite values alone; integer matrices
	// never produce them and float users opt in explicitly.
	DefaultValidateNaNInf = false
)

const panicShapePolicyInvalid = "matrix: WithShapePolicy: unknown policy"

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	shapePolicy    ShapePolicy // DefaultShapePolicy
	validateNaNInf bool        // DefaultValidateNaNInf
}

// ShapePolicy returns the resolved shape policy.
func (o Options) ShapePolicy() ShapePolicy { return o.shapePolicy }

// ValidateNaNInf reports whether non-finite values are rejected.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// ---------- Constructors (WithX) ----------

// WithShapePolicy sets the operand compatibility rule.
// Panics with a stable message when p is not a known policy.
// Complexity: O(1).
func WithShapePolicy(p ShapePolicy) Option {
	if p != ShapeStrict && p != ShapeLegacy {
		panic(panicShapePolicyInvalid)
	}

	return func(o *Options) { o.shapePolicy = p }
}

// WithStrictShapeCheck selects ShapeStrict (default).
func WithStrictShapeCheck() Option { return WithShapePolicy(ShapeStrict) }

// WithLegacyShapeCheck selects ShapeLegacy.
//
// Behavior highlights:
//   - Square operands of equal size behave exactly as under ShapeStrict.
//   - Equal non-square operands (e.g. 2x3 and 2x3) are rejected.
//   - A square left operand and a wider right operand (2x2 and 2x3) pass the
//     policy but are still rejected by the storage-length guard.
func WithLegacyShapeCheck() Option { return WithShapePolicy(ShapeLegacy) }

// WithValidateNaNInf rejects NaN and ±Inf on construction and Set.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation (default).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// ---------- Resolution ----------

// defaultOptions returns Options populated from the Default* constants.
func defaultOptions() Options {
	return Options{
		shapePolicy:    DefaultShapePolicy,
		validateNaNInf: DefaultValidateNaNInf,
	}
}

// NewMatrixOptions resolves opts over the defaults; nil setters are skipped.
// Complexity: O(len(opts)).
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies setters in order; later setters win.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
