package matrixprofile

import "github.com/go-tsmining/tsmp/timeseries"

// segments returns the sz-m+1 overlapping length-m windows of s, each
// flattened to m*d values. The windows are zero-copy subslices of the
// series buffer; they share ownership and must be treated as read-only.
func segments(s timeseries.Series, m int) [][]float64 {
	n := s.Length() - m + 1
	segs := make([][]float64, n)
	for i := 0; i < n; i++ {
		segs[i] = s.Window(i, m)
	}

	return segs
}

// scaledSegments materializes a scaled copy of each window. Scaling
// mutates, so the shared series buffer cannot be aliased here; one backing
// allocation covers all windows.
func scaledSegments(s timeseries.Series, m int, sc Scaler) [][]float64 {
	d := s.Channels()
	n := s.Length() - m + 1
	segs := make([][]float64, n)
	buf := make([]float64, n*m*d)
	for i := 0; i < n; i++ {
		w := buf[i*m*d : (i+1)*m*d]
		copy(w, s.Window(i, m))
		sc.Scale(w, m, d)
		segs[i] = w
	}

	return segs
}
