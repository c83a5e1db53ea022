// Package tsmp is a time-series mining toolkit built around the Matrix
// Profile — the per-subsequence distance to the nearest non-trivial
// neighbor subsequence within the same series.
//
// 🚀 What is tsmp?
//
//	A pure-Go library (plus a small CLI) that brings together:
//		• Matrix Profile self-joins with native and pluggable accelerated backends
//		• Zero-copy subsequence windows over flat time-series buffers
//		• Per-window mean/variance normalization
//		• UCR/UEA archive access with on-disk caching
//
// ✨ Why choose tsmp?
//
//   - Familiar fit/transform estimator protocol with explicit state errors
//   - Exact semantics – pinned against reference brute-force profiles
//   - Parallel by default – independent series fan out across CPU cores
//   - Extensible – register your own accelerated self-join backend
//
// Everything is organized under focused subpackages:
//
//	timeseries/    — dataset container: flat (series, time, channel) buffers & views
//	scaler/        — per-window z-normalization (zero mean, unit variance)
//	matrixprofile/ — the Matrix Profile engine: options, backends, Fit/Transform
//	datasets/      — UCR/UEA archive download, extraction and caching
//	cmd/tsprof/    — CLI: compute, plot and fetch
//
// Quick sketch — a series, its windows, and the profile:
//
//	series:  0 1 3 2 9 1 14 15 1 2 2 10 7
//	windows: [0 1 3 2] [1 3 2 9] ... (length m, stride 1)
//	profile: min distance from each window to any window outside its
//	         exclusion band
//
//	go get github.com/go-tsmining/tsmp
package tsmp
