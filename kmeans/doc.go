// Package kmeans is the Lloyd k-means baseline that symNMF is compared against.
//
// Centroids start as copies of the first k vectors, in input order; there is
// no randomized or k-means++ seeding. Each iteration assigns every vector to
// its nearest centroid (Euclidean distance, the lowest index wins ties) and
// moves each non-empty cluster's centroid to the mean of its members. Empty
// clusters keep their previous centroid. Run stops once every centroid moved
// by less than Epsilon, or after MaxIter iterations.
//
// Complexity: O(n·k·d) per iteration, O(k·d) extra memory.
package kmeans
