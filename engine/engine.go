// Package engine wires the clustering stages together behind the two
// command-line entry points: Run produces one matrix for a goal, Analyze
// compares symNMF and k-means by silhouette score.
//
// Every error returned by the engine is an *Error whose Kind tells input
// problems from computation failures; match with errors.Is(err, ErrInput)
// or errors.Is(err, ErrComputation).
package engine

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/symnmf/config"
	"github.com/katalvlaran/symnmf/dataset"
	"github.com/katalvlaran/symnmf/matrix"
	"github.com/katalvlaran/symnmf/similarity"
	"github.com/katalvlaran/symnmf/symnmf"
)

// Engine runs the pipeline with a fixed configuration. It holds no state
// between calls and is safe for concurrent use.
type Engine struct {
	cfg *config.Config
	log *zap.Logger
}

// New returns an Engine. A nil cfg selects config.Default(); a nil logger
// discards log output.
func New(cfg *config.Config, logger *zap.Logger) *Engine {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Engine{cfg: cfg, log: logger}
}

// Load reads a point file.
func (e *Engine) Load(path string) ([][]float64, error) {
	points, err := dataset.Read(path)
	if err != nil {
		return nil, classify("read", err)
	}
	e.log.Debug("points loaded", zap.String("path", path), zap.Int("n", len(points)), zap.Int("d", len(points[0])))

	return points, nil
}

// Run computes the matrix selected by goal: A for sym, D for ddg, W for
// norm and the converged factor H for symnmf. k is used by symnmf only,
// which requires 1 ≤ k ≤ n.
func (e *Engine) Run(goal Goal, k int, points [][]float64) (*matrix.Dense, error) {
	if _, err := ParseGoal(string(goal)); err != nil {
		return nil, err
	}
	A, err := similarity.Sym(points, e.cfg.Similarity.Options()...)
	if err != nil {
		return nil, classify(string(GoalSym), err)
	}
	e.log.Debug("similarity built", zap.Int("n", A.Rows()))
	if goal == GoalSym {
		return A, nil
	}

	D, err := similarity.Degree(A)
	if err != nil {
		return nil, classify(string(GoalDDG), err)
	}
	if goal == GoalDDG {
		return D, nil
	}

	W, err := similarity.Normalized(A, D)
	if err != nil {
		return nil, classify(string(GoalNorm), err)
	}
	if goal == GoalNorm {
		return W, nil
	}

	res, err := e.factorize(W, k)
	if err != nil {
		return nil, err
	}

	return res.H, nil
}

// factorize runs symNMF on W with the configured options, logging progress
// at debug level when enabled.
func (e *Engine) factorize(W *matrix.Dense, k int) (*symnmf.Result, error) {
	opts := e.cfg.SymNMF.Options()
	if e.log.Core().Enabled(zap.DebugLevel) {
		opts = append(opts, symnmf.WithOnIteration(func(iter int, _ *matrix.Dense, delta float64) error {
			e.log.Debug("symnmf iteration", zap.Int("iter", iter), zap.Float64("delta", delta))
			return nil
		}))
	}

	res, err := symnmf.Factorize(W, k, e.cfg.SymNMF.Seed, opts...)
	if err != nil {
		return nil, classify(string(GoalSymNMF), err)
	}
	fields := []zap.Field{
		zap.Int("k", k),
		zap.Int("iterations", res.Iterations),
		zap.Float64("delta", res.Delta),
	}
	if res.Converged {
		e.log.Debug("symnmf converged", fields...)
	} else {
		e.log.Info("symnmf reached iteration cap", fields...)
	}

	return res, nil
}
