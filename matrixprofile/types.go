// Package matrixprofile: options and the implementation enum.
package matrixprofile

import "fmt"

// Implementation selects the self-join strategy. It is a closed set fixed
// at engine construction; it never changes implicitly based on data shape.
//
//   - Native         — the in-process pipeline: segment → scale → distance
//     matrix → exclusion band → row-wise minimum.
//   - AcceleratedCPU — an externally registered CPU-optimized backend.
//   - AcceleratedGPU — an externally registered GPU backend.
//
// Accelerated implementations handle single-channel series only; selecting
// one for multi-channel input is a configuration error (ErrMultiChannel).
type Implementation int

const (
	// Native runs the built-in pipeline; supports any channel count.
	Native Implementation = iota

	// AcceleratedCPU dispatches to a backend registered with RegisterBackend.
	AcceleratedCPU

	// AcceleratedGPU dispatches to a backend registered with RegisterBackend.
	AcceleratedGPU
)

// String returns the canonical configuration name of the implementation.
func (impl Implementation) String() string {
	switch impl {
	case Native:
		return "native"
	case AcceleratedCPU:
		return "accelerated-cpu"
	case AcceleratedGPU:
		return "accelerated-gpu"
	default:
		return fmt.Sprintf("implementation(%d)", int(impl))
	}
}

func (impl Implementation) valid() bool {
	return impl >= Native && impl <= AcceleratedGPU
}

// ParseImplementation maps a configuration string to an Implementation.
// The empty string selects Native. Unrecognized values return
// ErrUnknownImplementation before any computation can run.
func ParseImplementation(s string) (Implementation, error) {
	switch s {
	case "", "native":
		return Native, nil
	case "accelerated-cpu":
		return AcceleratedCPU, nil
	case "accelerated-gpu":
		return AcceleratedGPU, nil
	default:
		return Native, fmt.Errorf("%w: %q", ErrUnknownImplementation, s)
	}
}

// Scaler normalizes one flattened window in place. The window holds m time
// steps of d channels, time-major (len(window) == m*d). Implementations
// must be stateless: windows are scaled independently and concurrently.
type Scaler interface {
	Scale(window []float64, m, d int)
}

// Options configures a MatrixProfile engine.
//
// Fields:
//   - SubsequenceLength — window length m (≥ 1).
//   - Implementation    — self-join strategy; see Implementation.
//   - Scale             — z-normalize each window before distances.
//   - Scaler            — scaling strategy; nil selects scaler.MeanVariance.
//   - Workers           — parallelism across series on the native path;
//     values ≤ 0 select runtime.NumCPU().
//
// Example:
//
//	opts := matrixprofile.DefaultOptions()
//	opts.SubsequenceLength = 4
//	opts.Scale = false
//	mp, err := matrixprofile.New(opts)
type Options struct {
	SubsequenceLength int
	Implementation    Implementation
	Scale             bool
	Scaler            Scaler
	Workers           int
}

// DefaultOptions returns the documented defaults: window length 1, native
// implementation, scaling enabled.
func DefaultOptions() Options {
	return Options{
		SubsequenceLength: 1,
		Implementation:    Native,
		Scale:             true,
	}
}
