package assign_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/symnmf/assign"
	"github.com/katalvlaran/symnmf/matrix"
)

func dense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

func TestFromH(t *testing.T) {
	tests := []struct {
		name string
		H    [][]float64
		want []int
	}{
		{"plain argmax", [][]float64{{0.9, 0.1}, {0.2, 0.7}, {0.6, 0.5}}, []int{0, 1, 0}},
		{"first maximum wins", [][]float64{{0.5, 0.5}, {0.1, 0.3}}, []int{0, 1}},
		{"single column untouched", [][]float64{{1}, {2}, {3}}, []int{0, 0, 0}},
		{
			"collapsed rows, highest second-best moves",
			[][]float64{{0.9, 0.1, 0.0}, {0.8, 0.3, 0.2}, {0.7, 0.3, 0.25}},
			[]int{0, 1, 0},
		},
		{
			"second-best tie goes to lowest column",
			[][]float64{{0.9, 0.4, 0.4}, {0.9, 0.1, 0.0}},
			[]int{1, 0},
		},
		{
			"collapsed onto a non-zero column",
			[][]float64{{0.1, 0.9}, {0.2, 0.8}},
			[]int{1, 0},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			labels, err := assign.FromH(dense(t, tc.H))
			require.NoError(t, err)
			assert.Equal(t, tc.want, labels)
		})
	}
}

func TestRepairDegenerate_ReportsChange(t *testing.T) {
	H := dense(t, [][]float64{{0.9, 0.1, 0.0}, {0.8, 0.3, 0.2}, {0.7, 0.3, 0.25}})
	labels, err := assign.ArgmaxH(H)
	require.NoError(t, err)
	require.Equal(t, []int{0, 0, 0}, labels)

	fix, err := assign.RepairDegenerate(H, labels)
	require.NoError(t, err)
	require.NotNil(t, fix)
	assert.Equal(t, assign.Relabel{Row: 1, From: 0, To: 1}, *fix)
	assert.Equal(t, 2, assign.Distinct(labels))

	// already two clusters: nothing to do
	fix, err = assign.RepairDegenerate(H, labels)
	require.NoError(t, err)
	assert.Nil(t, fix)

	_, err = assign.RepairDegenerate(H, []int{0})
	assert.ErrorIs(t, err, assign.ErrShape)
}

// viaAt hides the *matrix.Dense type so rows are read through At.
type viaAt struct{ matrix.Matrix }

func TestArgmaxH_FirstMaximumAnyMatrix(t *testing.T) {
	H := dense(t, [][]float64{{0.2, 0.7, 0.7}, {0.4, 0.4, 0.1}, {0, 0, 0}, {0.1, 0.2, 0.3}})
	want := []int{1, 0, 0, 2}

	got, err := assign.ArgmaxH(H)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	got, err = assign.ArgmaxH(viaAt{H})
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// H is read, never written
	assert.Equal(t, [][]float64{{0.2, 0.7, 0.7}, {0.4, 0.4, 0.1}, {0, 0, 0}, {0.1, 0.2, 0.3}}, H.ToRows())
}

type noCols struct{ matrix.Matrix }

func (noCols) Cols() int { return 0 }

func TestArgmaxH_NoColumns(t *testing.T) {
	_, err := assign.ArgmaxH(noCols{dense(t, [][]float64{{1}})})
	assert.ErrorIs(t, err, assign.ErrEmpty)
}

func TestFromH_NilMatrix(t *testing.T) {
	_, err := assign.FromH(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestFromCentroids(t *testing.T) {
	vectors := [][]float64{{0, 0}, {0, 1}, {5, 5}, {5, 6}, {2.5, 3}}
	centroids := [][]float64{{0, 0.5}, {5, 5.5}}

	labels, err := assign.FromCentroids(vectors, centroids)
	require.NoError(t, err)
	// {2.5, 3} is equidistant from both centroids
	assert.Equal(t, []int{0, 0, 1, 1, 0}, labels)
}

func TestFromCentroids_Errors(t *testing.T) {
	_, err := assign.FromCentroids(nil, [][]float64{{1}})
	assert.ErrorIs(t, err, assign.ErrEmpty)
	_, err = assign.FromCentroids([][]float64{{1}}, nil)
	assert.ErrorIs(t, err, assign.ErrEmpty)
	_, err = assign.FromCentroids([][]float64{{1, 2}}, [][]float64{{1}})
	assert.ErrorIs(t, err, assign.ErrShape)
	_, err = assign.FromCentroids([][]float64{{1}}, [][]float64{{1}, {1, 2}})
	assert.ErrorIs(t, err, assign.ErrShape)
}

func TestDistinct(t *testing.T) {
	assert.Equal(t, 0, assign.Distinct(nil))
	assert.Equal(t, 1, assign.Distinct([]int{3, 3, 3}))
	assert.Equal(t, 3, assign.Distinct([]int{0, 2, 1, 2}))
}
