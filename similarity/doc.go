// Package similarity builds the three fixed matrices of the symNMF pipeline
// from a set of n points of dimension d.
//
// 🚀 What is built?
//
//	A: Gaussian similarity: A[i][j] = exp(-‖v_i − v_j‖² / 2), A[i][i] = 0.
//	D: degree matrix: diagonal, D[i][i] = Σ_j A[i][j].
//	W: normalized similarity: W[i][j] = A[i][j] / sqrt(D[i][i]·D[j][j]).
//
// All three are computed once per run and never mutated afterwards.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/symnmf/similarity"
//
//	A, err := similarity.Sym(points, similarity.WithWorkers(4))
//	D, err := similarity.Degree(A)
//	W, err := similarity.Normalized(A, D)
//
//	// or all at once
//	st, err := similarity.Compute(points)
//
// Errors:
//
//   - ErrEmpty: no points, or zero-dimensional points.
//   - ErrShape: points disagree on dimension.
//   - ErrDegenerate: a row of A sums to zero (isolated point), so W is undefined.
//
// Performance:
//
//   - Sym: O(n²·d) time, rows computed by a bounded worker group; every
//     entry is computed independently, so results do not depend on the
//     worker count.
//   - Degree, Normalized: O(n²).
package similarity
