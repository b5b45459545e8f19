// Package lvmat is a small generic matrix toolkit for shape-checked
// elementwise arithmetic.
//
// What is lvmat?
//
//	A zero-dependency library built around one container:
//		• matrix.Matrix[T] — a dense, row-major grid over any Number type
//		• Add, Sub, Hadamard — checked elementwise operations
//		• AddAssign, SubAssign, HadamardAssign — in-place counterparts
//		• MustAdd, MustSub, MustHadamard — panicking operator forms
//		• Get/Set — 1-indexed, bounds-checked accessors
//
// lvmat deliberately stops at elementwise arithmetic: there is no matrix
// product, transpose, inverse or decomposition.
//
// Layout:
//
//	matrix/   — the Matrix type, options, validators and kernels
//	examples/ — a runnable walkthrough
//
//	go get github.com/katalvlaran/lvmat
package lvmat
