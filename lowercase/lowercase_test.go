package lowercase_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/morrisdc/distgraph"
	"github.com/katalvlaran/morrisdc/lowercase"
)

// byFromTo orders edges deterministically so go-cmp can diff two edge
// sets structurally regardless of which order Reduce happened to
// discover and emit them in.
var byFromTo = cmpopts.SortSlices(func(a, b distgraph.Edge) bool {
	if a.From != b.From {
		return a.From < b.From
	}

	return a.To < b.To
})

func TestReduce_DirectMoat(t *testing.T) {
	// L: 1 ->_c 2, lower bound 0. A single plain edge 2->3 with a
	// negative value is itself a moat once folded with L.
	l := distgraph.Edge{From: 1, To: 2, Value: 0, Kind: distgraph.LowerCase, Letter: 2}
	edges := []distgraph.Edge{
		l,
		{From: 2, To: 3, Value: -2, Kind: distgraph.Plain},
	}
	potentials := []float64{0, 0, 0, 0}

	got := lowercase.Reduce(edges, potentials, l)
	require.Len(t, got, 1)
	require.True(t, distgraph.Equal(got[0], distgraph.Edge{From: 1, To: 3, Value: -2, Kind: distgraph.Plain}))
}

func TestReduce_FoldsThroughUpperCase(t *testing.T) {
	// Path 2->3 (plain, -1) then 3->4 (upper-case, letter 9, -3) yields
	// a plain moat at 3 and, folded through the upper-case edge, an
	// upper-case moat at 4.
	l := distgraph.Edge{From: 1, To: 2, Value: 0, Kind: distgraph.LowerCase, Letter: 2}
	edges := []distgraph.Edge{
		l,
		{From: 2, To: 3, Value: -1, Kind: distgraph.Plain},
		{From: 3, To: 4, Value: -3, Kind: distgraph.UpperCase, Letter: 9},
	}
	potentials := []float64{0, 0, 0, 0, 0}

	got := lowercase.Reduce(edges, potentials, l)
	want := []distgraph.Edge{
		{From: 1, To: 3, Value: -1, Kind: distgraph.Plain},
		{From: 1, To: 4, Value: -4, Kind: distgraph.UpperCase, Letter: 9},
	}

	if diff := cmp.Diff(want, got, byFromTo); diff != "" {
		t.Fatalf("moat set mismatch (-want +got):\n%s", diff)
	}
}

func TestReduce_FiltersSameLetterUpperCase(t *testing.T) {
	// The upper-case edge shares L's own letter, so the breach filter
	// must exclude it; no moat should be found even though its value
	// is negative enough to qualify.
	l := distgraph.Edge{From: 1, To: 2, Value: 0, Kind: distgraph.LowerCase, Letter: 2}
	edges := []distgraph.Edge{
		l,
		{From: 2, To: 3, Value: -5, Kind: distgraph.UpperCase, Letter: 2},
	}
	potentials := []float64{0, 0, 0, 0}

	got := lowercase.Reduce(edges, potentials, l)
	require.Empty(t, got)
}

func TestReduce_NoMoatWhenNonNegative(t *testing.T) {
	// A positive-value edge never yields a moat: the real distance from
	// B never goes negative.
	l := distgraph.Edge{From: 1, To: 2, Value: 0, Kind: distgraph.LowerCase, Letter: 2}
	edges := []distgraph.Edge{
		l,
		{From: 2, To: 3, Value: 5, Kind: distgraph.Plain},
	}
	potentials := []float64{0, 0, 0, 0}

	got := lowercase.Reduce(edges, potentials, l)
	require.Empty(t, got)
}

func TestReduce_IgnoresOtherLowerCaseEdges(t *testing.T) {
	// A lower-case edge reachable from B must never be traversed, even
	// when its value would otherwise make it an attractive relaxation.
	l := distgraph.Edge{From: 1, To: 2, Value: 0, Kind: distgraph.LowerCase, Letter: 2}
	edges := []distgraph.Edge{
		l,
		{From: 2, To: 3, Value: -9, Kind: distgraph.LowerCase, Letter: 3},
	}
	potentials := []float64{0, 0, 0, 0}

	got := lowercase.Reduce(edges, potentials, l)
	require.Empty(t, got)
}
