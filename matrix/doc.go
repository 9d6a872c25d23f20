// Package matrix provides exact rational linear algebra.
//
// The matrix package provides:
//
//   - Dense, a row-major matrix of *big.Rat with error-returning accessors.
//   - Vec / IntVec coordinate vectors together with gcd, denominator and
//     primitive-integer normalisation (rays are compared in that form).
//   - Rank, Inverse, Solve, Mul, MulVec and Transpose kernels.
//   - Echelon, an incremental rank structure answering "does this vector
//     increase the rank?" without refactoring the whole matrix.
//
// Everything is exact: there are no tolerances and no floating point.
// Dimensions of interest (cusp-form spaces, coefficient windows) are small
// enough that O(n^3) rational elimination is not the bottleneck.
package matrix
