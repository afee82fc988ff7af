package distgraph

import "github.com/katalvlaran/morrisdc/network"

// Generate expands a validated network into Morris's labeled distance
// graph. It returns nPrime, the node count after normalization
// (nPrime >= net.NumNodes()), and the initial labeled-edge list, in
// deterministic controllable-then-contingent, input order.
//
// Complexity: O(|controllable| + |contingent|).
func Generate(net *network.Network) (nPrime int, edges []Edge) {
	nPrime = net.NumNodes()

	for _, e := range net.Controllable() {
		edges = append(edges, plainPair(e.From, e.To, e.Lower, e.Upper)...)
	}

	for _, e := range net.Contingent() {
		var emitted []Edge
		emitted, nPrime = emitContingent(nPrime, e.From, e.To, e.Lower, e.Upper)
		edges = append(edges, emitted...)
	}

	return nPrime, edges
}

// plainPair emits the two plain edges for a controllable-style
// interval [lower, upper] between from and to: from->to at upper,
// to->from at -lower.
func plainPair(from, to network.Node, lower, upper float64) []Edge {
	return []Edge{
		{From: from, To: to, Value: upper, Kind: Plain},
		{From: to, To: from, Value: -lower, Kind: Plain},
	}
}

// emitContingent emits the edges for one contingent interval
// [lower, upper] from from to to. When lower == 0 it emits the plain
// pair plus the upper-case/lower-case pair directly. When lower > 0 it
// first introduces a fresh auxiliary node x' = nPrime+1, emits a
// controllable-style [lower, lower] edge pair for (from, x'), and
// recurses on the normalized contingent interval (x', to, 0, upper-lower).
func emitContingent(nPrime int, from, to network.Node, lower, upper float64) ([]Edge, int) {
	if lower == 0 {
		edges := plainPair(from, to, lower, upper)
		edges = append(edges,
			Edge{From: to, To: from, Value: -upper, Kind: UpperCase, Letter: to},
			Edge{From: from, To: to, Value: lower, Kind: LowerCase, Letter: to},
		)

		return edges, nPrime
	}

	nPrime++
	xPrime := network.Node(nPrime)
	edges := plainPair(from, xPrime, lower, lower)
	rest, finalNPrime := emitContingent(nPrime, xPrime, to, 0, upper-lower)
	edges = append(edges, rest...)

	return edges, finalNPrime
}
