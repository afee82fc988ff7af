package network

// Node is an opaque time-point identifier in [1, N]. The value 0 is
// reserved by the distance-graph generator for the AllMax virtual
// source and never appears as a Node inside a Network.
type Node int

// ControllableEdge is a requirement edge whose duration the planner
// chooses within [Lower, Upper]. Lower may be negative.
type ControllableEdge struct {
	From, To Node
	Lower    float64
	Upper    float64
}

// ContingentEdge is a contingent edge whose duration Nature chooses
// within [Lower, Upper], revealed only on completion. Lower is always
// non-negative.
type ContingentEdge struct {
	From, To Node
	Lower    float64
	Upper    float64
}

// Network is a validated STNU. It is immutable after construction by
// New; every structural invariant has already been checked, so
// downstream packages may assume a Network is well-formed.
type Network struct {
	numNodes     int
	controllable []ControllableEdge
	contingent   []ContingentEdge
}

// NumNodes returns N, the number of time-points in the network.
func (n *Network) NumNodes() int { return n.numNodes }

// Controllable returns the controllable edges, in the order they were
// supplied to New. The returned slice must not be mutated.
func (n *Network) Controllable() []ControllableEdge { return n.controllable }

// Contingent returns the contingent edges, in the order they were
// supplied to New. The returned slice must not be mutated.
func (n *Network) Contingent() []ContingentEdge { return n.contingent }

// NumControllable returns the number of controllable edges.
func (n *Network) NumControllable() int { return len(n.controllable) }

// NumContingent returns the number of contingent edges. This is also
// K, the round bound used by the DC solver's outer loop.
func (n *Network) NumContingent() int { return len(n.contingent) }
