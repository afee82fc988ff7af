// Package lowercase — see doc.go for an overview.
package lowercase

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/morrisdc/distgraph"
	"github.com/katalvlaran/morrisdc/reduce"
)

// Reduce runs the lower-case reducer for one lower-case edge
// l: A ->_c B against the current edge set, given the AllMax
// potentials computed over that same edge set. It returns every edge
// discovered by folding a semi-reducible path from B back through
// l (a "moat"): a path B->...->W whose combination with l has negative
// reduced length. The result may include edges already present in
// edges; it is deduplicated only within itself.
//
// edges is the full current edge set (all kinds); potentials is
// indexed by node id with potentials[0] reserved for the virtual
// source. The highest real node id is taken to be len(potentials)-1.
func Reduce(edges []distgraph.Edge, potentials []float64, l distgraph.Edge) []distgraph.Edge {
	nPrime := len(potentials) - 1
	b := int(l.To)

	adj := make([][]distgraph.Edge, nPrime+1)
	for _, e := range edges {
		if e.Kind == distgraph.LowerCase {
			continue // lower-case edges never breach
		}
		if e.Kind == distgraph.UpperCase && e.Letter == l.Letter {
			continue // same-letter upper-case edge also never breaches
		}
		adj[int(e.From)] = append(adj[int(e.From)], e)
	}

	dist := make([]float64, nPrime+1)
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	dist[b] = 0

	folded := make([]distgraph.Edge, nPrime+1)
	haveFolded := make([]bool, nPrime+1)
	visited := make([]bool, nPrime+1)

	pq := make(lcPQ, 0, nPrime)
	heap.Init(&pq)
	heap.Push(&pq, &lcItem{id: b, dist: 0})

	var out []distgraph.Edge

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*lcItem)
		u := item.id
		if visited[u] {
			continue
		}
		visited[u] = true

		for _, e := range adj[u] {
			w := int(e.To)
			reweighted := dist[u] + e.Value + potentials[u] - potentials[w]
			if reweighted >= dist[w] {
				continue
			}

			var candidate distgraph.Edge
			var ok bool
			if u == b {
				candidate, ok = e, true
			} else if haveFolded[u] {
				candidate, ok = reduce.Reduce(folded[u], e)
			}
			if !ok {
				continue
			}

			dist[w] = reweighted
			folded[w] = candidate
			haveFolded[w] = true
			heap.Push(&pq, &lcItem{id: w, dist: reweighted})

			real := reweighted + potentials[w] - potentials[b]
			if real < 0 {
				if moat, ok2 := reduce.Reduce(l, candidate); ok2 && !distgraph.Contains(out, moat) {
					out = append(out, moat)
				}
			}
		}
	}

	return out
}
