package matrixprofile

import "sync"

// Backend computes the self-join matrix profile of one single-channel
// series: the returned slice has length len(series)-m+1 and holds, for each
// window start, the distance to its nearest non-trivial neighbor window.
// Any index or metadata a backend produces internally is not part of the
// contract; only the distance column crosses it.
//
// Backends are driven serially by the engine — one series at a time — and
// are not assumed safe for concurrent SelfJoin calls.
type Backend interface {
	SelfJoin(series []float64, m int) ([]float64, error)
}

var (
	backendMu sync.RWMutex
	backends  = make(map[Implementation]Backend)
)

// RegisterBackend installs an externally supplied backend for an
// accelerated implementation slot. The native slot is built in and cannot
// be replaced. Re-registering a slot overwrites the previous backend.
func RegisterBackend(impl Implementation, b Backend) error {
	if b == nil || impl == Native || !impl.valid() {
		return ErrBadBackend
	}

	backendMu.Lock()
	defer backendMu.Unlock()
	backends[impl] = b

	return nil
}

func registeredBackend(impl Implementation) (Backend, bool) {
	backendMu.RLock()
	defer backendMu.RUnlock()
	b, ok := backends[impl]

	return b, ok
}
