package kmeans

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Run clusters vectors into k groups.
//
// Errors: ErrEmpty, ErrShape, ErrNonFinite, ErrInvalidK, ErrOptionViolation, or the hook's
// error wrapped with the iteration number. Reaching MaxIter is not an error.
func Run(vectors [][]float64, k int, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	d, err := dimension(vectors)
	if err != nil {
		return nil, fmt.Errorf("kmeans: Run: %w", err)
	}
	if k < 1 || k > len(vectors) {
		return nil, fmt.Errorf("kmeans: Run: k=%d, n=%d: %w", k, len(vectors), ErrInvalidK)
	}

	centroids := make([][]float64, k)
	for c := range centroids {
		centroids[c] = make([]float64, d)
		copy(centroids[c], vectors[c])
	}

	res := &Result{Centroids: centroids}
	for iter := 1; iter <= o.MaxIter; iter++ {
		next, shift := step(vectors, res.Centroids)
		res.Centroids, res.Shift, res.Iterations = next, shift, iter
		if o.OnIteration != nil {
			if err = o.OnIteration(iter, next, shift); err != nil {
				return nil, fmt.Errorf("kmeans: Run: iteration %d: %w", iter, err)
			}
		}
		if shift < o.Epsilon {
			res.Converged = true
			break
		}
	}

	return res, nil
}

// Step performs one Lloyd iteration and returns fresh centroids together
// with the largest Euclidean displacement. The inputs are not modified.
//
// Errors: ErrEmpty, ErrNonFinite, ErrShape (vectors disagree with each
// other or with the centroids).
func Step(vectors, centroids [][]float64) ([][]float64, float64, error) {
	d, err := dimension(vectors)
	if err != nil {
		return nil, 0, fmt.Errorf("kmeans: Step: %w", err)
	}
	if len(centroids) == 0 {
		return nil, 0, fmt.Errorf("kmeans: Step: no centroids: %w", ErrEmpty)
	}
	for c, ctr := range centroids {
		if len(ctr) != d {
			return nil, 0, fmt.Errorf("kmeans: Step: centroid %d has dimension %d, want %d: %w", c, len(ctr), d, ErrShape)
		}
		if !finite(ctr) {
			return nil, 0, fmt.Errorf("kmeans: Step: centroid %d: %w", c, ErrNonFinite)
		}
	}
	next, shift := step(vectors, centroids)

	return next, shift, nil
}

// Nearest returns the index of the centroid closest to v. The first
// strictly smaller distance wins, so ties go to the lowest index.
// v and every centroid must have the same length; -1 is returned only
// when no distance compares below +Inf (no centroids, or NaN input).
func Nearest(v []float64, centroids [][]float64) int {
	best, bestDist := -1, math.Inf(1)
	var dist float64
	for c, ctr := range centroids {
		if dist = floats.Distance(v, ctr, 2); dist < bestDist {
			best, bestDist = c, dist
		}
	}

	return best
}

// step assumes validated input.
func step(vectors, centroids [][]float64) ([][]float64, float64) {
	k, d := len(centroids), len(centroids[0])
	sums := make([][]float64, k)
	for c := range sums {
		sums[c] = make([]float64, d)
	}
	counts := make([]int, k)
	for _, v := range vectors {
		c := Nearest(v, centroids)
		floats.Add(sums[c], v)
		counts[c]++
	}

	var shift, moved float64
	for c := range sums {
		if counts[c] == 0 {
			copy(sums[c], centroids[c]) // empty cluster stays put
			continue
		}
		floats.Scale(1/float64(counts[c]), sums[c])
		if moved = floats.Distance(sums[c], centroids[c], 2); moved > shift {
			shift = moved
		}
	}

	return sums, shift
}

// dimension validates vectors and returns their common length.
func dimension(vectors [][]float64) (int, error) {
	if len(vectors) == 0 || len(vectors[0]) == 0 {
		return 0, ErrEmpty
	}
	d := len(vectors[0])
	for i, v := range vectors {
		if len(v) != d {
			return 0, fmt.Errorf("vector %d has dimension %d, want %d: %w", i, len(v), d, ErrShape)
		}
		if !finite(v) {
			return 0, fmt.Errorf("vector %d: %w", i, ErrNonFinite)
		}
	}

	return d, nil
}

// finite reports whether v is free of NaN and ±Inf; v must be non-empty.
func finite(v []float64) bool {
	return !floats.HasNaN(v) && !math.IsInf(floats.Max(v), 1) && !math.IsInf(floats.Min(v), -1)
}
