package symnmf

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mathext/prng"

	"github.com/katalvlaran/symnmf/matrix"
)

// Source yields uniformly distributed 32-bit words.
// *prng.MT19937 satisfies it.
type Source interface {
	Uint32() uint32
}

// NewSource returns an MT19937 generator seeded with seed.
func NewSource(seed uint64) *prng.MT19937 {
	src := prng.NewMT19937()
	src.Seed(seed)

	return src
}

// Float64 returns a double in [0, 1) with 53 bits of resolution built from
// two 32-bit draws: the top 27 bits of the first and the top 26 of the second.
func Float64(src Source) float64 {
	a := src.Uint32() >> 5
	b := src.Uint32() >> 6

	return (float64(a)*67108864.0 + float64(b)) / 9007199254740992.0
}

// InitH draws the initial n×k factor for W with entries uniform on
// [0, 2·sqrt(mean(W)/k)), filled row by row.
//
// Errors: ErrInvalidK (k < 1 or k > n), ErrNegativeMean, and wrapped
// matrix errors for a nil or non-square W.
func InitH(W matrix.Matrix, k int, src Source) (*matrix.Dense, error) {
	if err := matrix.ValidateSquareNonNil(W); err != nil {
		return nil, fmt.Errorf("symnmf: InitH: %w", err)
	}
	n := W.Rows()
	if k < 1 || k > n {
		return nil, fmt.Errorf("symnmf: InitH: k=%d, n=%d: %w", k, n, ErrInvalidK)
	}
	mean, err := matrix.Mean(W)
	if err != nil {
		return nil, fmt.Errorf("symnmf: InitH: %w", err)
	}
	if mean < 0 {
		return nil, fmt.Errorf("symnmf: InitH: mean=%g: %w", mean, ErrNegativeMean)
	}
	upper := 2 * math.Sqrt(mean/float64(k))

	H, err := matrix.NewDense(n, k)
	if err != nil {
		return nil, fmt.Errorf("symnmf: InitH: %w", err)
	}
	for i := 0; i < n; i++ {
		row, _ := H.RawRow(i)
		for j := range row {
			row[j] = upper * Float64(src)
		}
	}

	return H, nil
}
