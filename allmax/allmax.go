// Package allmax — see doc.go for an overview.
package allmax

import (
	"github.com/katalvlaran/morrisdc/distgraph"
	"github.com/katalvlaran/morrisdc/spfa"
)

// Run builds the simple projection of edges over nPrime+1 nodes
// (real nodes 1..nPrime plus the virtual source 0) and runs SPFA from
// the virtual source.
//
// Returns (potentials, true) on success, where potentials has length
// nPrime+1 and potentials[0] == 0; callers index potentials by the
// original node id (1..nPrime), and may also read potentials[0] for
// the virtual source itself. Returns (nil, false) if the projection
// contains a negative cycle, i.e. the network is not DC.
//
// Complexity: O(V*E) dominated by the SPFA call.
func Run(nPrime int, edges []distgraph.Edge) (potentials []float64, ok bool) {
	n := nPrime + 1 // nodes 0..nPrime
	adj := make(spfa.Adjacency, n)

	// Simple projection: drop lower-case edges, keep the minimum value
	// per (from, to) pair.
	type pair struct{ from, to int }
	best := make(map[pair]float64)
	for _, e := range edges {
		if e.Kind == distgraph.LowerCase {
			continue
		}
		key := pair{from: int(e.From), to: int(e.To)}
		if cur, exists := best[key]; !exists || e.Value < cur {
			best[key] = e.Value
		}
	}
	for key, value := range best {
		adj[key.from] = append(adj[key.from], spfa.Arc{To: key.to, Weight: value})
	}

	// Virtual source 0 with weight-0 edges to every real node.
	for v := 1; v <= nPrime; v++ {
		adj[0] = append(adj[0], spfa.Arc{To: v, Weight: 0})
	}

	dist, err := spfa.Run(n, 0, adj)
	if err != nil {
		return nil, false
	}

	return dist, true
}
