// Package assign turns the output of either clustering method into hard
// labels: the row-wise argmax of a soft assignment matrix H, or the nearest
// centroid for k-means.
package assign

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/symnmf/kmeans"
	"github.com/katalvlaran/symnmf/matrix"
)

var (
	// ErrEmpty indicates no vectors or no centroids.
	ErrEmpty = errors.New("assign: empty input")

	// ErrShape indicates vectors and centroids of different dimensions.
	ErrShape = errors.New("assign: inconsistent dimensions")
)

// Relabel records the single change made by RepairDegenerate.
type Relabel struct {
	Row  int // point whose label changed
	From int // its argmax column
	To   int // its second-best column
}

// FromH labels each row of H with its argmax column and then applies
// RepairDegenerate.
func FromH(H matrix.Matrix) ([]int, error) {
	labels, err := ArgmaxH(H)
	if err != nil {
		return nil, err
	}
	if _, err = RepairDegenerate(H, labels); err != nil {
		return nil, err
	}

	return labels, nil
}

// ArgmaxH returns label[i] = argmax_j H[i][j]; the first maximum wins.
// Errors: matrix.ErrNilMatrix, or ErrEmpty when H has no columns.
func ArgmaxH(H matrix.Matrix) ([]int, error) {
	if err := matrix.ValidateNotNil(H); err != nil {
		return nil, fmt.Errorf("assign: ArgmaxH: %w", err)
	}
	if H.Cols() == 0 {
		return nil, fmt.Errorf("assign: ArgmaxH: %w", ErrEmpty)
	}
	labels := make([]int, H.Rows())
	buf := make([]float64, H.Cols())
	for i := range labels {
		labels[i] = floats.MaxIdx(row(H, i, buf))
	}

	return labels, nil
}

// row returns row i of H: a view for *matrix.Dense, otherwise buf filled via At.
func row(H matrix.Matrix, i int, buf []float64) []float64 {
	if d, ok := H.(*matrix.Dense); ok {
		r, _ := d.RawRow(i) // i < Rows()
		return r
	}
	for j := range buf {
		buf[j], _ = H.At(i, j)
	}

	return buf
}

// RepairDegenerate guarantees at least two distinct labels when H has at
// least two columns. If labels hold a single value, the row whose
// second-best score is highest (first such row on ties) is moved to its
// second-best column (lowest column on ties). labels is updated in place;
// the returned Relabel is nil when nothing changed. Clusters beyond the
// second are not repopulated.
func RepairDegenerate(H matrix.Matrix, labels []int) (*Relabel, error) {
	if err := matrix.ValidateNotNil(H); err != nil {
		return nil, fmt.Errorf("assign: RepairDegenerate: %w", err)
	}
	if len(labels) != H.Rows() {
		return nil, fmt.Errorf("assign: RepairDegenerate: %d labels for %d rows: %w", len(labels), H.Rows(), ErrShape)
	}
	if H.Cols() < 2 || Distinct(labels) >= 2 {
		return nil, nil
	}

	var (
		fix      *Relabel
		topScore float64
	)
	for i, label := range labels {
		col, score := best(H, i, label)
		if fix == nil || score > topScore {
			fix, topScore = &Relabel{Row: i, From: label, To: col}, score
		}
	}
	labels[fix.Row] = fix.To

	return fix, nil
}

// best returns the highest-scoring column of row i other than skip, with
// the lowest index winning ties. floats.MaxIdx cannot exclude a column.
func best(H matrix.Matrix, i, skip int) (int, float64) {
	col, score := -1, 0.0
	var v float64
	for j := 0; j < H.Cols(); j++ {
		if j == skip {
			continue
		}
		v, _ = H.At(i, j)
		if col < 0 || v > score {
			col, score = j, v
		}
	}

	return col, score
}

// FromCentroids labels each vector with the index of its nearest centroid;
// the first strictly smaller distance wins.
func FromCentroids(vectors, centroids [][]float64) ([]int, error) {
	if len(vectors) == 0 || len(centroids) == 0 {
		return nil, fmt.Errorf("assign: FromCentroids: %w", ErrEmpty)
	}
	d := len(centroids[0])
	for c, ctr := range centroids {
		if len(ctr) != d {
			return nil, fmt.Errorf("assign: FromCentroids: centroid %d: %w", c, ErrShape)
		}
	}
	labels := make([]int, len(vectors))
	for i, v := range vectors {
		if len(v) != d {
			return nil, fmt.Errorf("assign: FromCentroids: vector %d has dimension %d, want %d: %w", i, len(v), d, ErrShape)
		}
		labels[i] = kmeans.Nearest(v, centroids)
	}

	return labels, nil
}

// Distinct returns the number of different values in labels.
func Distinct(labels []int) int {
	seen := make(map[int]struct{}, len(labels))
	for _, l := range labels {
		seen[l] = struct{}{}
	}

	return len(seen)
}
