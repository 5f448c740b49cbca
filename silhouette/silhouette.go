// Package silhouette scores a hard clustering with the mean silhouette
// coefficient under Euclidean distance.
//
// For point i with cluster C:
//
//	a(i) = mean distance from i to the other members of C
//	b(i) = min over clusters C' ≠ C of the mean distance from i to C'
//	s(i) = (b(i) − a(i)) / max(a(i), b(i)),  s(i) = 0 when |C| = 1
//
// Score is the mean of s(i) over all points, in [−1, 1]. The definition
// matches scikit-learn's silhouette_score, including s(i) = 0 for points
// whose a and b are both zero.
package silhouette

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

var (
	// ErrEmpty indicates no points or zero-dimensional points.
	ErrEmpty = errors.New("silhouette: empty input")

	// ErrShape indicates points of different dimensions.
	ErrShape = errors.New("silhouette: inconsistent dimensions")

	// ErrLengthMismatch indicates len(labels) != len(points).
	ErrLengthMismatch = errors.New("silhouette: labels and points differ in length")

	// ErrLabelCount indicates fewer than 2 or more than n−1 distinct labels.
	ErrLabelCount = errors.New("silhouette: need 2 <= distinct labels <= n-1")
)

// Score returns the mean silhouette coefficient of points under labels.
// Label values are arbitrary integers; only equality matters.
func Score(points [][]float64, labels []int) (float64, error) {
	s, err := Samples(points, labels)
	if err != nil {
		return 0, err
	}

	return stat.Mean(s, nil), nil
}

// Samples returns the per-point silhouette coefficients s(i).
//
// Complexity: O(n²·d) time, O(n + k) memory.
func Samples(points [][]float64, labels []int) ([]float64, error) {
	if err := validate(points, labels); err != nil {
		return nil, err
	}

	// dense cluster ids 0..k-1 in order of first appearance
	ids := make(map[int]int)
	cluster := make([]int, len(labels))
	for i, l := range labels {
		id, ok := ids[l]
		if !ok {
			id = len(ids)
			ids[l] = id
		}
		cluster[i] = id
	}
	k, n := len(ids), len(points)
	if k < 2 || k > n-1 {
		return nil, fmt.Errorf("silhouette: %d distinct labels for %d points: %w", k, n, ErrLabelCount)
	}
	sizes := make([]float64, k)
	for _, c := range cluster {
		sizes[c]++
	}

	out := make([]float64, n)
	sums := make([]float64, k)
	for i := range points {
		for c := range sums {
			sums[c] = 0
		}
		for j := range points {
			if j != i {
				sums[cluster[j]] += floats.Distance(points[i], points[j], 2)
			}
		}

		own := cluster[i]
		if sizes[own] == 1 {
			continue // singleton: s(i) = 0
		}
		a := sums[own] / (sizes[own] - 1)
		b := math.Inf(1)
		for c := range sums {
			if c != own {
				b = math.Min(b, sums[c]/sizes[c])
			}
		}
		if den := math.Max(a, b); den > 0 {
			out[i] = (b - a) / den
		}
	}

	return out, nil
}

func validate(points [][]float64, labels []int) error {
	if len(points) == 0 || len(points[0]) == 0 {
		return ErrEmpty
	}
	if len(labels) != len(points) {
		return fmt.Errorf("silhouette: %d labels for %d points: %w", len(labels), len(points), ErrLengthMismatch)
	}
	d := len(points[0])
	for i, p := range points {
		if len(p) != d {
			return fmt.Errorf("silhouette: point %d has dimension %d, want %d: %w", i, len(p), d, ErrShape)
		}
	}

	return nil
}
