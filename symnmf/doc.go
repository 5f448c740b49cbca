// Package symnmf factorizes a symmetric non-negative similarity matrix W
// (n×n) as W ≈ H·Hᵀ with H ≥ 0 (n×k), using multiplicative updates.
//
// 🚀 Algorithm
//
//	H₀     ~ uniform[0, 2·sqrt(mean(W)/k))           (InitH, seeded source)
//	H_next = H ∘ (1 − β + β·(W·H) ⊘ (H·Hᵀ·H + ε))    (one iteration)
//	stop when ‖H_next − H‖²_F < Tolerance, or after MaxIter iterations.
//
// The default β = 0.5 damps each step; the objective ‖W − H·Hᵀ‖_F does
// not increase from one iteration to the next. β = 1 gives the classic rule
// H_next = H ∘ (W·H) ⊘ (H·Hᵀ·H + ε), which can oscillate on small inputs.
// Every factor in the update is non-negative when W ≥ 0, H ≥ 0 and ε > 0,
// so H stays non-negative at every iteration.
//
// Hitting MaxIter is not an error: the last H is returned with
// Result.Converged = false.
//
// ✨ Randomness
//
// The initializer takes an explicit Source. NewSource returns a gonum
// MT19937 seeded the way the legacy NumPy generator seeds itself, and
// InitH draws 53-bit doubles from it, so H₀ for a given seed matches the
// NumPy stream entry for entry.
//
// ⚙️ Usage:
//
//	res, err := symnmf.Factorize(W, 2, symnmf.DefaultSeed,
//		symnmf.WithMaxIter(500),
//		symnmf.WithOnIteration(func(iter int, h *matrix.Dense, delta float64) error {
//			return nil
//		}))
//
// Complexity: each iteration costs O(n²·k) for W·H plus O(n·k²) for
// H·(HᵀH); memory is O(n·k) besides W.
package symnmf
