package timeseries

import (
	"errors"
	"math"
)

var (
	// ErrBadShape is returned when a requested shape has a non-positive
	// dimension, or when provided values do not fill the shape exactly.
	ErrBadShape = errors.New("timeseries: invalid shape")

	// ErrOutOfRange indicates a series, time or channel index outside the
	// dataset bounds. Public indexers return this, they never panic.
	ErrOutOfRange = errors.New("timeseries: index out of range")

	// ErrEmptyInput is returned by constructors given no series at all.
	ErrEmptyInput = errors.New("timeseries: no series provided")
)

// Dataset holds n series of sz time steps and d channels in one flat
// row-major buffer. The zero value is not usable; use New or a FromX
// constructor.
type Dataset struct {
	data []float64
	n    int // number of series
	sz   int // time steps per series
	d    int // channels per time step
}

// New allocates a zero-filled dataset of shape (n, sz, d).
func New(n, sz, d int) (*Dataset, error) {
	if n < 1 || sz < 1 || d < 1 {
		return nil, ErrBadShape
	}

	return &Dataset{data: make([]float64, n*sz*d), n: n, sz: sz, d: d}, nil
}

// FromValues builds a dataset of shape (n, sz, d) from a row-major value
// slice. The values are copied; the caller keeps ownership of its slice.
func FromValues(n, sz, d int, values []float64) (*Dataset, error) {
	ds, err := New(n, sz, d)
	if err != nil {
		return nil, err
	}
	if len(values) != len(ds.data) {
		return nil, ErrBadShape
	}
	copy(ds.data, values)

	return ds, nil
}

// FromSeries builds a univariate dataset (d=1) with one row per input
// slice. Shorter series are padded with NaN to the length of the longest,
// mirroring the upstream ragged-input normalization.
func FromSeries(series ...[]float64) (*Dataset, error) {
	if len(series) == 0 {
		return nil, ErrEmptyInput
	}
	sz := 0
	for _, s := range series {
		if len(s) > sz {
			sz = len(s)
		}
	}
	if sz == 0 {
		return nil, ErrEmptyInput
	}

	ds, err := New(len(series), sz, 1)
	if err != nil {
		return nil, err
	}
	nan := math.NaN()
	for i, s := range series {
		row := ds.data[i*sz : (i+1)*sz]
		copy(row, s)
		for t := len(s); t < sz; t++ {
			row[t] = nan
		}
	}

	return ds, nil
}

// Shape returns (number of series, time steps, channels).
func (ds *Dataset) Shape() (n, sz, d int) { return ds.n, ds.sz, ds.d }

// NumSeries returns the number of series in the dataset.
func (ds *Dataset) NumSeries() int { return ds.n }

// Length returns the number of time steps per series.
func (ds *Dataset) Length() int { return ds.sz }

// Channels returns the number of channels per time step.
func (ds *Dataset) Channels() int { return ds.d }

// At returns the value at (series i, time t, channel c).
func (ds *Dataset) At(i, t, c int) (float64, error) {
	if i < 0 || i >= ds.n || t < 0 || t >= ds.sz || c < 0 || c >= ds.d {
		return 0, ErrOutOfRange
	}

	return ds.data[(i*ds.sz+t)*ds.d+c], nil
}

// Set writes the value at (series i, time t, channel c).
func (ds *Dataset) Set(i, t, c int, v float64) error {
	if i < 0 || i >= ds.n || t < 0 || t >= ds.sz || c < 0 || c >= ds.d {
		return ErrOutOfRange
	}
	ds.data[(i*ds.sz+t)*ds.d+c] = v

	return nil
}

// Series returns a view over series i. The view shares the dataset buffer;
// writing through the view writes through to the dataset.
func (ds *Dataset) Series(i int) (Series, error) {
	if i < 0 || i >= ds.n {
		return Series{}, ErrOutOfRange
	}
	stride := ds.sz * ds.d

	return Series{data: ds.data[i*stride : (i+1)*stride], sz: ds.sz, d: ds.d}, nil
}

// Series is a zero-copy view over one series of a Dataset.
type Series struct {
	data []float64
	sz   int
	d    int
}

// Length returns the number of time steps in the series.
func (s Series) Length() int { return s.sz }

// Channels returns the number of channels per time step.
func (s Series) Channels() int { return s.d }

// At returns the value at (time t, channel c). Indices must be in bounds;
// Series is a hot-path view and relies on slice bounds checks.
func (s Series) At(t, c int) float64 { return s.data[t*s.d+c] }

// Set writes the value at (time t, channel c) through to the dataset.
func (s Series) Set(t, c int, v float64) { s.data[t*s.d+c] = v }

// Window returns the contiguous window of m time steps starting at start,
// flattened to a []float64 of length m*d. The slice aliases the series
// buffer: callers that mutate it must copy first.
func (s Series) Window(start, m int) []float64 {
	return s.data[start*s.d : (start+m)*s.d]
}

// Values returns the full series buffer, flattened time-major. For a
// single-channel series this is the plain sequence of observations.
func (s Series) Values() []float64 { return s.data }

// Channel copies channel c of the series into a fresh slice.
func (s Series) Channel(c int) []float64 {
	out := make([]float64, s.sz)
	for t := 0; t < s.sz; t++ {
		out[t] = s.data[t*s.d+c]
	}

	return out
}
