// Package dc — see doc.go for an overview.
package dc

import (
	"context"
	"fmt"

	"github.com/katalvlaran/morrisdc/allmax"
	"github.com/katalvlaran/morrisdc/distgraph"
	"github.com/katalvlaran/morrisdc/lowercase"
	"github.com/katalvlaran/morrisdc/network"
)

// DecideDC decides Dynamic Controllability for net. It is Solve with
// no options and a background context; use Solve directly to collect
// a Trace or to make the outer loop cancellable between rounds.
func DecideDC(net *network.Network) (Result, error) {
	result, _, err := Solve(context.Background(), net)

	return result, err
}

// Solve runs the outer fixed-point loop: alternate an AllMax
// consistency check with a lower-case reduction pass over every
// lower-case edge, growing the edge set until a round adds nothing new
// or AllMax reports a negative cycle. ctx is checked only at round
// boundaries — a single round, including every lower-case reducer
// call within it, always runs to completion once started.
//
// Returns NotDC as soon as any round's AllMax call fails. Returns DC
// once a round's reduction pass yields no edge not already present.
// Complexity: O(K * (V*E + K*(E + V log V))) with V = N', E = |edges|.
func Solve(ctx context.Context, net *network.Network, opts ...Option) (Result, Trace, error) {
	var cfg options
	for _, opt := range opts {
		opt(&cfg)
	}

	nPrime, generated := distgraph.Generate(net)
	k := net.NumContingent()

	var edges []distgraph.Edge
	pending := generated

	var trace Trace

	iter := 0
	for len(pending) > 0 && iter <= k {
		if err := ctx.Err(); err != nil {
			return NotDC, trace, err
		}

		edges = append(edges, pending...)

		potentials, ok := allmax.Run(nPrime, edges)
		if !ok {
			return NotDC, trace, nil
		}

		var newEdges []distgraph.Edge
		lowerCaseCount := 0
		for _, e := range edges {
			if e.Kind != distgraph.LowerCase {
				continue
			}
			lowerCaseCount++

			for _, candidate := range lowercase.Reduce(edges, potentials, e) {
				if !distgraph.Contains(newEdges, candidate) {
					newEdges = append(newEdges, candidate)
				}
			}
		}

		pending = pending[:0]
		for _, e := range newEdges {
			if !distgraph.Contains(edges, e) {
				pending = append(pending, e)
			}
		}

		if cfg.collectTrace {
			trace = append(trace, RoundStats{Round: iter, LowerCaseEdges: lowerCaseCount, NewEdges: len(pending)})
		}

		iter++
	}

	if iter > k+1 {
		panic(fmt.Sprintf("dc: outer loop exceeded K+1 rounds (K=%d, iter=%d): implementation bug", k, iter))
	}

	return DC, trace, nil
}
