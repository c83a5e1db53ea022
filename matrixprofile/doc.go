// Package matrixprofile computes Matrix Profiles of time series: for every
// fixed-length subsequence position, the minimum Euclidean distance to any
// other non-overlapping subsequence of the same series (a self-join).
//
// 🚀 What is a Matrix Profile?
//
//	Slide a window of length m over a series with stride 1, compute the
//	distance from each window to every other window, mask out trivial
//	matches near the diagonal, and keep the row-wise minimum. Low values
//	mark motifs (repeated patterns), high values mark discords (anomalies).
//
// ✨ Key features:
//   - fit/transform estimator protocol with explicit state errors
//   - zero-copy windows when scaling is off; scaled copies otherwise
//   - exclusion band b = ceil(m/4) masks trivial self-matches with +Inf
//   - native path parallel across series; results keep input order
//   - pluggable accelerated backends behind a single-method contract
//
// ⚙️ Usage:
//
//	import "github.com/go-tsmining/tsmp/matrixprofile"
//
//	opts := matrixprofile.DefaultOptions()
//	opts.SubsequenceLength = 4
//	opts.Scale = false
//
//	mp, err := matrixprofile.New(opts)
//	profile, err := mp.FitTransform(dataset) // shape (n, sz-m+1, 1)
//
// Complexity of the native path, per series:
//
//   - Time:   O(n_windows² · m·d)
//   - Memory: O(n_windows²) for the distance matrix
//
// A fully band-masked row (possible when 2b+1 >= n_windows) reduces to
// +Inf; callers can detect the degenerate case with math.IsInf.
package matrixprofile
