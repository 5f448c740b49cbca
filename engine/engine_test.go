package engine_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/symnmf/config"
	"github.com/katalvlaran/symnmf/dataset"
	"github.com/katalvlaran/symnmf/engine"
	"github.com/katalvlaran/symnmf/kmeans"
	"github.com/katalvlaran/symnmf/matrix"
	"github.com/katalvlaran/symnmf/silhouette"
	"github.com/katalvlaran/symnmf/similarity"
	"github.com/katalvlaran/symnmf/symnmf"
)

var twoPairs = [][]float64{{0, 0}, {0, 1}, {5, 5}, {5, 6}}

func argmax(row []float64) int {
	best := 0
	for j, v := range row {
		if v > row[best] {
			best = j
		}
	}

	return best
}

func TestParseGoal(t *testing.T) {
	for _, g := range engine.Goals {
		got, err := engine.ParseGoal(string(g))
		require.NoError(t, err)
		assert.Equal(t, g, got)
	}
	for _, bad := range []string{"", "SYM", "kmeans", "normalize"} {
		_, err := engine.ParseGoal(bad)
		assert.ErrorIs(t, err, engine.ErrInput, bad)
		assert.ErrorIs(t, err, engine.ErrUnknownGoal, bad)
	}
}

func TestParseK(t *testing.T) {
	k, err := engine.ParseK("3")
	require.NoError(t, err)
	assert.Equal(t, 3, k)

	k, err = engine.ParseK("0")
	require.NoError(t, err, "range is checked by the stage using k")
	assert.Equal(t, 0, k)

	for _, bad := range []string{"", "two", "2.5", "1e3"} {
		_, err = engine.ParseK(bad)
		assert.ErrorIs(t, err, engine.ErrInput, bad)
		assert.ErrorIs(t, err, engine.ErrInvalidK, bad)
	}
}

func TestRun_TwoPairsAllGoals(t *testing.T) {
	e := engine.New(nil, nil)

	A, err := e.Run(engine.GoalSym, 2, twoPairs)
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateSymmetric(A, matrix.WithEpsilon(0)))
	diag, err := matrix.Diagonal(A)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0, 0}, diag)

	D, err := e.Run(engine.GoalDDG, 2, twoPairs)
	require.NoError(t, err)
	ok, err := matrix.IsZeroOffDiagonal(D, matrix.WithEpsilon(0))
	require.NoError(t, err)
	assert.True(t, ok)
	sums, err := matrix.RowSums(A)
	require.NoError(t, err)
	deg, err := matrix.Diagonal(D)
	require.NoError(t, err)
	assert.Equal(t, sums, deg)

	W, err := e.Run(engine.GoalNorm, 2, twoPairs)
	require.NoError(t, err)
	assert.NoError(t, matrix.ValidateSymmetric(W, matrix.WithEpsilon(1e-12)))

	H, err := e.Run(engine.GoalSymNMF, 2, twoPairs)
	require.NoError(t, err)
	r, c := H.Shape()
	assert.Equal(t, 4, r)
	assert.Equal(t, 2, c)
	require.NoError(t, matrix.ValidateNonNegative(H))
	rows := H.ToRows()
	assert.Equal(t, argmax(rows[0]), argmax(rows[1]))
	assert.Equal(t, argmax(rows[2]), argmax(rows[3]))
	assert.NotEqual(t, argmax(rows[0]), argmax(rows[2]))
}

func TestRun_MatchesStagesAndConfiguredSeed(t *testing.T) {
	cfg := config.Default()
	cfg.SymNMF.Beta = 1
	cfg.SymNMF.Seed = 99
	e := engine.New(cfg, nil)

	H, err := e.Run(engine.GoalSymNMF, 2, twoPairs)
	require.NoError(t, err)

	W, err := similarity.Norm(twoPairs)
	require.NoError(t, err)
	res, err := symnmf.Factorize(W, 2, 99, symnmf.WithBeta(1))
	require.NoError(t, err)
	assert.Equal(t, res.H.ToRows(), H.ToRows())
}

func TestRun_OneDimensionalInput(t *testing.T) {
	pts, err := dataset.Parse(bytes.NewBufferString("1\n2\n4\n"))
	require.NoError(t, err)
	e := engine.New(nil, nil)

	for _, g := range []engine.Goal{engine.GoalSym, engine.GoalDDG, engine.GoalNorm} {
		m, err := e.Run(g, 1, pts)
		require.NoError(t, err, g)
		r, c := m.Shape()
		assert.Equal(t, 3, r, g)
		assert.Equal(t, 3, c, g)
	}
	H, err := e.Run(engine.GoalSymNMF, 2, pts)
	require.NoError(t, err)
	r, c := H.Shape()
	assert.Equal(t, 3, r)
	assert.Equal(t, 2, c)
}

func TestRun_ErrorKinds(t *testing.T) {
	e := engine.New(nil, nil)
	single := [][]float64{{1, 2}}

	tests := []struct {
		name   string
		goal   engine.Goal
		k      int
		points [][]float64
		kind   error
		cause  error
	}{
		{"ragged vectors", engine.GoalSym, 2, [][]float64{{1, 2}, {3}}, engine.ErrInput, similarity.ErrShape},
		{"no vectors", engine.GoalNorm, 2, nil, engine.ErrInput, similarity.ErrEmpty},
		{"unknown goal", engine.Goal("hnorm"), 2, twoPairs, engine.ErrInput, engine.ErrUnknownGoal},
		{"k zero", engine.GoalSymNMF, 0, twoPairs, engine.ErrInput, symnmf.ErrInvalidK},
		{"k above n", engine.GoalSymNMF, 5, twoPairs, engine.ErrInput, symnmf.ErrInvalidK},
		{"isolated point ddg", engine.GoalDDG, 1, single, engine.ErrComputation, similarity.ErrDegenerate},
		{"isolated point symnmf", engine.GoalSymNMF, 1, single, engine.ErrComputation, similarity.ErrDegenerate},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := e.Run(tc.goal, tc.k, tc.points)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.kind)
			assert.ErrorIs(t, err, tc.cause)

			var ee *engine.Error
			require.True(t, errors.As(err, &ee))
			assert.NotEmpty(t, ee.Op)
		})
	}

	// the similarity of a single point is well defined
	A, err := e.Run(engine.GoalSym, 1, single)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0}}, A.ToRows())
}

func TestAnalyze_TwoPairs(t *testing.T) {
	rep, err := engine.New(nil, nil).Analyze(2, twoPairs)
	require.NoError(t, err)

	want, err := silhouette.Score(twoPairs, []int{0, 0, 1, 1})
	require.NoError(t, err)
	assert.InDelta(t, want, rep.NMF, 1e-12)
	assert.InDelta(t, want, rep.KMeans, 1e-12)
	assert.Equal(t, []int{0, 0, 1, 1}, rep.KMeansLabels)
	assert.Nil(t, rep.Relabel)
	assert.True(t, rep.Centroids.Converged)

	var buf bytes.Buffer
	n, err := rep.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, "nmf: 0.8586\nkmeans: 0.8586\n", buf.String())
	assert.Equal(t, int64(buf.Len()), n)
}

func TestAnalyze_Errors(t *testing.T) {
	e := engine.New(nil, nil)

	// one cluster cannot be scored
	_, err := e.Analyze(1, twoPairs)
	assert.ErrorIs(t, err, engine.ErrComputation)
	assert.ErrorIs(t, err, silhouette.ErrLabelCount)

	_, err = e.Analyze(9, twoPairs)
	assert.ErrorIs(t, err, engine.ErrInput)

	// k = 9 breaks both pipelines; the symNMF cause is always the one reported.
	for i := 0; i < 5; i++ {
		_, err = e.Analyze(9, twoPairs)
		var ee *engine.Error
		require.ErrorAs(t, err, &ee)
		assert.Equal(t, engine.KindInput, ee.Kind)
		assert.Equal(t, string(engine.GoalSymNMF), ee.Op)
		assert.ErrorIs(t, err, symnmf.ErrInvalidK)
		assert.NotErrorIs(t, err, kmeans.ErrInvalidK)
	}

	_, err = e.Analyze(2, [][]float64{{0}, {100}, {200}})
	assert.ErrorIs(t, err, engine.ErrComputation)
	assert.ErrorIs(t, err, similarity.ErrDegenerate)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pairs.txt")
	require.NoError(t, os.WriteFile(path, []byte("0,0\n0,1\n5,5\n5,6\n"), 0o600))
	e := engine.New(nil, nil)

	pts, err := e.Load(path)
	require.NoError(t, err)
	assert.Equal(t, twoPairs, pts)

	_, err = e.Load(filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, engine.ErrInput)
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("1,2\n3\n"), 0o600))
	_, err = e.Load(bad)
	assert.ErrorIs(t, err, engine.ErrInput)
	assert.ErrorIs(t, err, dataset.ErrRaggedRows)
}

func TestLogging(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	e := engine.New(nil, zap.New(core))

	_, err := e.Run(engine.GoalSymNMF, 2, twoPairs)
	require.NoError(t, err)

	iterations := logs.FilterMessage("symnmf iteration").Len()
	assert.Positive(t, iterations)
	assert.LessOrEqual(t, iterations, symnmf.DefaultMaxIter)
	assert.Equal(t, 1, logs.FilterMessage("similarity built").Len())
	done := logs.FilterMessage("symnmf converged").Len() + logs.FilterMessage("symnmf reached iteration cap").Len()
	assert.Equal(t, 1, done)
}

func TestError_Format(t *testing.T) {
	err := &engine.Error{Kind: engine.KindComputation, Op: "norm", Err: similarity.ErrDegenerate}
	assert.Equal(t, "norm: computation error: similarity: degenerate degree matrix", err.Error())
	assert.ErrorIs(t, err, engine.ErrComputation)
	assert.NotErrorIs(t, err, engine.ErrInput)
	assert.Equal(t, "input error", engine.KindInput.String())
	assert.Equal(t, "Kind(7)", engine.Kind(7).String())
}
