package matrixprofile

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/go-tsmining/tsmp/scaler"
	"github.com/go-tsmining/tsmp/timeseries"
)

// MatrixProfile is a two-phase estimator over a batch of time series:
// Fit records the input shape, Transform computes one profile vector per
// series. The fitted state is explicit — Transform before Fit returns
// ErrNotFitted rather than relying on uninitialized-field sentinels.
//
// Fit and Transform are safe for concurrent use, but a Fit concurrent with
// a Transform races on which shape the transform validates against.
type MatrixProfile struct {
	opts   Options
	scaler Scaler

	mu     sync.RWMutex
	fitted bool
	fitD   int // channel count recorded at fit time
}

// New validates opts and builds an engine. The implementation value and the
// subsequence length are checked here, at construction, so configuration
// errors surface before any data is touched.
func New(opts Options) (*MatrixProfile, error) {
	if opts.SubsequenceLength < 1 {
		return nil, ErrBadSubsequenceLength
	}
	if !opts.Implementation.valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownImplementation, opts.Implementation)
	}
	sc := opts.Scaler
	if sc == nil {
		sc = scaler.MeanVariance{}
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}

	return &MatrixProfile{opts: opts, scaler: sc}, nil
}

// Fit records the dataset's channel count and marks the engine fitted.
// No profile computation happens here; fit is cheap, transform is the
// expensive phase. A new Fit replaces the previous fitted state.
func (mp *MatrixProfile) Fit(x *timeseries.Dataset) (*MatrixProfile, error) {
	if x == nil {
		return nil, ErrNilDataset
	}

	mp.mu.Lock()
	defer mp.mu.Unlock()
	mp.fitD = x.Channels()
	mp.fitted = true

	return mp, nil
}

// Transform computes the matrix profile of every series in x and returns a
// dataset of shape (n, sz-m+1, 1). The input's channel count must match
// the fitted one; the series count and length may differ freely from the
// fit-time input. x is never mutated.
//
// Entries of a fully band-masked row come back as +Inf (see package doc).
func (mp *MatrixProfile) Transform(x *timeseries.Dataset) (*timeseries.Dataset, error) {
	if x == nil {
		return nil, ErrNilDataset
	}

	mp.mu.RLock()
	fitted, fitD := mp.fitted, mp.fitD
	mp.mu.RUnlock()
	if !fitted {
		return nil, ErrNotFitted
	}
	if x.Channels() != fitD {
		return nil, fmt.Errorf("%w: fitted d=%d, got d=%d", ErrChannelMismatch, fitD, x.Channels())
	}

	return mp.transform(x)
}

// FitTransform is exactly Fit followed by Transform on the same data and
// produces output identical to calling the two separately.
func (mp *MatrixProfile) FitTransform(x *timeseries.Dataset) (*timeseries.Dataset, error) {
	if _, err := mp.Fit(x); err != nil {
		return nil, err
	}

	return mp.Transform(x)
}

func (mp *MatrixProfile) transform(x *timeseries.Dataset) (*timeseries.Dataset, error) {
	n, sz, _ := x.Shape()
	m := mp.opts.SubsequenceLength
	if m > sz {
		return nil, fmt.Errorf("%w: sz=%d, m=%d", ErrShortSeries, sz, m)
	}

	out, err := timeseries.New(n, sz-m+1, 1)
	if err != nil {
		return nil, err
	}

	if mp.opts.Implementation != Native {
		return mp.transformExternal(x, out)
	}

	return mp.transformNative(x, out)
}

// transformExternal delegates each series' self-join to the registered
// backend. Backends take single-channel input only and are not assumed
// reentrant, so the loop is serial.
func (mp *MatrixProfile) transformExternal(x, out *timeseries.Dataset) (*timeseries.Dataset, error) {
	impl := mp.opts.Implementation
	if x.Channels() > 1 {
		return nil, fmt.Errorf("%w: %s with d=%d", ErrMultiChannel, impl, x.Channels())
	}
	be, ok := registeredBackend(impl)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrBackendUnavailable, impl)
	}

	nw := out.Length()
	for i := 0; i < x.NumSeries(); i++ {
		src, err := x.Series(i)
		if err != nil {
			return nil, err
		}
		profile, err := be.SelfJoin(src.Values(), mp.opts.SubsequenceLength)
		if err != nil {
			return nil, fmt.Errorf("matrixprofile: backend %s: %w", impl, err)
		}
		if len(profile) != nw {
			return nil, fmt.Errorf("%w: want %d values, got %d", ErrBackendResult, nw, len(profile))
		}
		dst, err := out.Series(i)
		if err != nil {
			return nil, err
		}
		for t, v := range profile {
			dst.Set(t, 0, v)
		}
	}

	return out, nil
}

// transformNative fans the independent per-series computations out across
// a bounded worker pool. Each worker writes into its own disjoint output
// series, so input order is preserved without coordination.
func (mp *MatrixProfile) transformNative(x, out *timeseries.Dataset) (*timeseries.Dataset, error) {
	n := x.NumSeries()
	workers := mp.opts.Workers
	if workers > n {
		workers = n
	}

	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)
	for i := 0; i < n; i++ {
		src, err := x.Series(i)
		if err != nil {
			return nil, err
		}
		dst, err := out.Series(i)
		if err != nil {
			return nil, err
		}

		wg.Add(1)
		sem <- struct{}{}
		go func(src, dst timeseries.Series) {
			defer wg.Done()
			defer func() { <-sem }()
			for t, v := range mp.profileSeries(src) {
				dst.Set(t, 0, v)
			}
		}(src, dst)
	}
	wg.Wait()

	return out, nil
}

// profileSeries runs the native pipeline for one series:
// segment → optional scale → distance matrix → exclusion band → row minima.
func (mp *MatrixProfile) profileSeries(s timeseries.Series) []float64 {
	m := mp.opts.SubsequenceLength

	var segs [][]float64
	if mp.opts.Scale {
		segs = scaledSegments(s, m, mp.scaler)
	} else {
		segs = segments(s, m)
	}

	dm := distanceMatrix(segs)
	applyExclusionBand(dm, exclusionHalfWidth(m))

	return reduceProfile(dm)
}
