package dc

import "github.com/katalvlaran/morrisdc/network"

// IncrementalDcTester wraps a network and caches the last DC answer,
// per spec.md §6's secondary interface. It is an owned record with no
// global state: callers construct one per network and call MarkDirty
// whenever they mutate the underlying edges outside this type's own
// knowledge.
//
// The incremental recomputation path is deliberately left unimplemented
// — Query always falls back to a full DecideDC call when a
// recomputation is due. A true incremental algorithm may replace that
// fallback without changing this type's contract.
type IncrementalDcTester struct {
	net           *network.Network
	updatePending bool
	firstTime     bool
	lastResult    Result
}

// NewIncrementalDcTester wraps net for repeated DC queries.
func NewIncrementalDcTester(net *network.Network) *IncrementalDcTester {
	return &IncrementalDcTester{net: net, firstTime: true}
}

// MarkDirty records that the wrapped network has changed since the
// last query, forcing the next Query to recompute.
func (t *IncrementalDcTester) MarkDirty() {
	t.updatePending = true
}

// Query returns the cached answer if nothing has changed since the
// last call, otherwise it recomputes via DecideDC and caches the
// result.
func (t *IncrementalDcTester) Query() (Result, error) {
	if !t.firstTime && !t.updatePending {
		return t.lastResult, nil
	}

	result, err := DecideDC(t.net)
	if err != nil {
		return result, err
	}

	t.lastResult = result
	t.firstTime = false
	t.updatePending = false

	return result, nil
}
