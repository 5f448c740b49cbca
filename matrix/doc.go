// Package matrix offers the dense float64 storage and numeric kernels used
// by the similarity, symnmf and kmeans pipelines.
//
// The matrix package provides:
//
//   - Dense, a row-major n×m buffer with bounds-checked At/Set and an
//     optional finite-only numeric policy.
//   - Validators for shape, symmetry, non-negativity and diagonal structure.
//   - Products (Mul, MulTransA, MulTransB) delegated to gonum's BLAS-backed
//     mat.Dense over the same backing slice (no copy on the way in).
//   - Reductions used by the clustering stages: RowSums, Mean,
//     FrobeniusNorm and FrobeniusDistSq.
//
// Matrices here are always small enough to be dense: similarity and
// normalized similarity matrices are n×n, the assignment matrix is n×k.
//
// See the examples in this package for usage patterns.
package matrix
