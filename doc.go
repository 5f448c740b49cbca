// Package symnmf is a small toolkit for graph-based clustering of points:
// it builds a Gaussian similarity graph, factorizes its normalized form with
// symmetric non-negative matrix factorization (SymNMF) and compares the
// resulting clustering against k-means by silhouette score.
//
// 🚀 What is in the box?
//
//	• Similarity graph: A (similarity), D (degree) and W = D^-1/2 A D^-1/2
//	• SymNMF: seeded initialization + multiplicative updates W ≈ H Hᵀ
//	• K-means: first-k initialization, Euclidean assignment, mean update
//	• Evaluation: hard labels from H or centroids, mean silhouette
//	• Two CLIs: cmd/symnmf (print A, D, W or H) and cmd/analysis
//
// Under the hood, the work is split across these packages:
//
//	matrix/     dense row-major storage, validators and gonum-backed kernels
//	similarity/ Sym, Degree, Normalized, Norm and the staged Compute
//	symnmf/     InitH, Optimize, Factorize and the MT19937 source
//	kmeans/     Run, Step and Nearest
//	assign/     argmax labels, degenerate-label repair, centroid labels
//	silhouette/ per-sample and mean silhouette coefficients
//	dataset/    comma-separated point reader and 4-decimal writer
//	config/     TOML configuration with documented defaults
//	logutil/    zap logger construction
//	engine/     goal dispatch and the SymNMF vs k-means analysis
//
// Quick example (two well-separated pairs, k = 2):
//
//	$ cat pairs.txt
//	0,0
//	0,1
//	5,5
//	5,6
//	$ analysis 2 pairs.txt
//	nmf: 0.8586
//	kmeans: 0.8586
//
//	go install github.com/katalvlaran/symnmf/cmd/...@latest
package symnmf
