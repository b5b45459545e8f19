// Package matrix provides a small generic dense matrix with shape-checked
// elementwise arithmetic.
//
// The matrix package provides:
//
//   - Matrix[T], a fixed-shape row-major grid over any Number element type.
//   - A 1-indexed accessor pair Get/Set that returns ErrIndexOutOfRange
//     instead of reading or writing outside the grid.
//   - Checked operations Add, Sub and Hadamard (elementwise product) that
//     return ErrShapeMismatch on incompatible operands, plus in-place
//     AddAssign, SubAssign and HadamardAssign.
//   - A panicking operator tier (MustAdd, MustSub, MustHadamard, ...) for
//     callers that already know the shapes agree.
//
// Hadamard is not the linear-algebra matrix product; this package has no
// matrix product, transpose, inverse or decomposition.
//
// Shape compatibility is configurable through WithShapePolicy. The default
// ShapeStrict compares rows with rows and cols with cols. ShapeLegacy keeps
// the historical left-cols versus right-rows comparison for parity with older
// callers; it only differs from ShapeStrict on non-square operands.
//
// See the examples in this package for usage patterns.
package matrix
