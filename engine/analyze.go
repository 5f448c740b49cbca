package engine

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/katalvlaran/symnmf/assign"
	"github.com/katalvlaran/symnmf/kmeans"
	"github.com/katalvlaran/symnmf/silhouette"
	"github.com/katalvlaran/symnmf/similarity"
	"github.com/katalvlaran/symnmf/symnmf"
)

// Report is the outcome of Analyze.
type Report struct {
	NMF    float64 // silhouette score of the symNMF labels
	KMeans float64 // silhouette score of the k-means labels

	NMFLabels    []int
	KMeansLabels []int

	Factor    *symnmf.Result
	Centroids *kmeans.Result
	// Relabel is set when the symNMF labels collapsed into one cluster and
	// one point was moved to its second-best column.
	Relabel *assign.Relabel
}

// WriteTo prints the two scores as "nmf: X.XXXX" and "kmeans: X.XXXX".
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	n, err := fmt.Fprintf(w, "nmf: %.4f\nkmeans: %.4f\n", r.NMF, r.KMeans)

	return int64(n), err
}

// Analyze clusters points into k groups with symNMF and with k-means and
// scores both labelings. The symNMF pipeline runs first and k-means second,
// so when both would fail the symNMF error is the one returned.
func (e *Engine) Analyze(k int, points [][]float64) (*Report, error) {
	rep := &Report{}
	if err := e.analyzeNMF(rep, k, points); err != nil {
		return nil, err
	}
	if err := e.analyzeKMeans(rep, k, points); err != nil {
		return nil, err
	}
	e.log.Debug("analysis done", zap.Float64("nmf", rep.NMF), zap.Float64("kmeans", rep.KMeans))

	return rep, nil
}

// analyzeNMF fills the symNMF half of rep.
func (e *Engine) analyzeNMF(rep *Report, k int, points [][]float64) error {
	W, err := similarity.Norm(points, e.cfg.Similarity.Options()...)
	if err != nil {
		return classify(string(GoalNorm), err)
	}
	if rep.Factor, err = e.factorize(W, k); err != nil {
		return err
	}
	if rep.NMFLabels, err = assign.ArgmaxH(rep.Factor.H); err != nil {
		return classify("labels", err)
	}
	if rep.Relabel, err = assign.RepairDegenerate(rep.Factor.H, rep.NMFLabels); err != nil {
		return classify("labels", err)
	}
	if rep.Relabel != nil {
		e.log.Warn("symnmf labels collapsed into one cluster; relabeled one point",
			zap.Int("row", rep.Relabel.Row), zap.Int("from", rep.Relabel.From), zap.Int("to", rep.Relabel.To))
	}
	if rep.NMF, err = silhouette.Score(points, rep.NMFLabels); err != nil {
		return classify("silhouette", err)
	}

	return nil
}

// analyzeKMeans fills the k-means half of rep.
func (e *Engine) analyzeKMeans(rep *Report, k int, points [][]float64) error {
	res, err := kmeans.Run(points, k, e.cfg.KMeans.Options()...)
	if err != nil {
		return classify("kmeans", err)
	}
	rep.Centroids = res
	if !res.Converged {
		e.log.Warn("kmeans reached iteration cap", zap.Int("iterations", res.Iterations), zap.Float64("shift", res.Shift))
	}
	if rep.KMeansLabels, err = assign.FromCentroids(points, res.Centroids); err != nil {
		return classify("labels", err)
	}
	if rep.KMeans, err = silhouette.Score(points, rep.KMeansLabels); err != nil {
		return classify("silhouette", err)
	}

	return nil
}
