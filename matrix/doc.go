// Package matrix provides Dense, a generic row-major matrix value type used as
// the numeric building block of GRLib's geometry and physics code.
//
// The package provides:
//
//   - Construction: New (fill value), NewFromRows (literal rows), Clone, Assign.
//   - Checked element access: At/Set return ErrOutOfRange instead of panicking.
//   - Matrix-matrix arithmetic: Add, Sub, Mul and their in-place forms, Transpose.
//   - Matrix-scalar arithmetic: AddScalar, SubScalar, Scale, DivScalar.
//   - Matrix-vector product (MulVec) and diagonal extraction (DiagVec).
//   - Canonical factories: Zero, ZeroSquare, Identity, Diagonal.
//
// Every shape precondition is validated before any element is written, so a
// failed call never leaves a partially updated receiver. Errors are package
// sentinels wrapped with operation context; match them with errors.Is.
//
// Loop orders are fixed (row-major, increasing contraction index), so results
// are reproducible bit-for-bit across runs for floating-point element types.
//
// A Dense is not safe for concurrent mutation. Concurrent reads are fine.
package matrix
