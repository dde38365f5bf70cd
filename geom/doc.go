// Package geom provides 2D vector and point arithmetic.
//
// Vector is a free displacement (DX, DY); Point is a position (X, Y). The two are
// distinct types: vectors have a magnitude and rotate, points only move by vectors.
// Combining a vector with a point always yields a point.
//
// All operations are pure functions over values and safe for concurrent use.
//
// Numeric policy:
//
//   - RotatedByRadians snaps each result component with |c| < 1e-5 to exactly 0.
//   - Project onto the zero vector and AngleBetween with a zero input are not guarded;
//     they return NaN (or Inf) as IEEE division yields. Check magnitudes first if the
//     geometry can degenerate.
package geom
