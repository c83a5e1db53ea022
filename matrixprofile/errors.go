// Package matrixprofile: sentinel error set. All public operations return
// these sentinels (optionally wrapped with context via %w) and tests check
// them with errors.Is. Panics are reserved for programmer errors.

package matrixprofile

import "errors"

var (
	// ErrBadSubsequenceLength is returned by New when SubsequenceLength < 1.
	ErrBadSubsequenceLength = errors.New("matrixprofile: subsequence length must be >= 1")

	// ErrUnknownImplementation is returned for an implementation value
	// outside the recognized set (native, accelerated-cpu, accelerated-gpu).
	ErrUnknownImplementation = errors.New("matrixprofile: unrecognized implementation")

	// ErrBackendUnavailable is returned by Transform when an accelerated
	// implementation is selected but no backend has been registered for it.
	ErrBackendUnavailable = errors.New("matrixprofile: no backend registered for implementation")

	// ErrBadBackend is returned by RegisterBackend for a nil backend or an
	// attempt to bind a backend to the built-in native slot.
	ErrBadBackend = errors.New("matrixprofile: backend must be non-nil and bound to an accelerated implementation")

	// ErrBackendResult signals that an external backend returned a profile
	// of unexpected length for the requested series and window size.
	ErrBackendResult = errors.New("matrixprofile: backend returned malformed profile")

	// ErrMultiChannel is returned when an accelerated implementation is
	// combined with multi-channel input. This is a configuration error;
	// the engine never silently falls back to the native path.
	ErrMultiChannel = errors.New("matrixprofile: accelerated backends support single-channel series only")

	// ErrNotFitted is returned by Transform before a successful Fit.
	ErrNotFitted = errors.New("matrixprofile: transform called before fit")

	// ErrChannelMismatch indicates the transform input's channel count
	// differs from the one recorded at fit time.
	ErrChannelMismatch = errors.New("matrixprofile: channel count differs from fitted data")

	// ErrShortSeries is returned when the series is shorter than the
	// subsequence length, leaving no window to extract.
	ErrShortSeries = errors.New("matrixprofile: series shorter than subsequence length")

	// ErrNilDataset is returned when a nil dataset is passed to Fit or
	// Transform.
	ErrNilDataset = errors.New("matrixprofile: dataset is nil")
)
