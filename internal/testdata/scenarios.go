// Package testdata holds the literal networks the six end-to-end
// scenarios describe, built once here so tests can share the same
// fixtures instead of redeclaring them; dc's table test uses them.
package testdata

import "github.com/katalvlaran/morrisdc/network"

// TrivialDC is scenario 1: a single controllable edge, no contingents.
func TrivialDC() (numNodes int, controllable []network.ControllableEdge, contingent []network.ContingentEdge) {
	return 2, []network.ControllableEdge{{From: 1, To: 2, Lower: 0, Upper: 10}}, nil
}

// InconsistentSTN is scenario 2: a fixed edge conflicting with a round
// trip, no contingents. The two edges form a -6 cycle in the simple
// projection (1->2 at 0, 2->1 at -6) without declaring the same
// ordered pair twice.
func InconsistentSTN() (numNodes int, controllable []network.ControllableEdge, contingent []network.ContingentEdge) {
	return 2, []network.ControllableEdge{
		{From: 1, To: 2, Lower: 6, Upper: 6},
		{From: 2, To: 1, Lower: 0, Upper: 5},
	}, nil
}

// SingleContingentTrivial is scenario 3: one contingent edge and
// nothing else.
func SingleContingentTrivial() (numNodes int, controllable []network.ControllableEdge, contingent []network.ContingentEdge) {
	return 2, nil, []network.ContingentEdge{{From: 1, To: 2, Lower: 0, Upper: 3}}
}

// MorrisCanonical is scenario 4: the textbook example where waiting
// for the contingent event always succeeds.
func MorrisCanonical() (numNodes int, controllable []network.ControllableEdge, contingent []network.ContingentEdge) {
	return 3,
		[]network.ControllableEdge{
			{From: 1, To: 3, Lower: 0, Upper: 10},
			{From: 2, To: 3, Lower: 0, Upper: 10},
		},
		[]network.ContingentEdge{{From: 1, To: 2, Lower: 1, Upper: 3}}
}

// Squeeze is scenario 5: the classical not-DC example.
func Squeeze() (numNodes int, controllable []network.ControllableEdge, contingent []network.ContingentEdge) {
	return 3,
		[]network.ControllableEdge{
			{From: 1, To: 3, Lower: 5, Upper: 5},
			{From: 3, To: 2, Lower: 0, Upper: 0},
		},
		[]network.ContingentEdge{{From: 1, To: 2, Lower: 1, Upper: 10}}
}

// NormalizationTrigger is scenario 6: a contingent edge with a
// non-zero lower bound, forcing the generator to introduce an
// auxiliary node.
func NormalizationTrigger() (numNodes int, controllable []network.ControllableEdge, contingent []network.ContingentEdge) {
	return 2, nil, []network.ContingentEdge{{From: 1, To: 2, Lower: 2, Upper: 5}}
}
