// Package reduce — see doc.go for an overview.
package reduce

import "github.com/katalvlaran/morrisdc/distgraph"

// Reduce composes two consecutive labeled edges e1: X->Y and
// e2: Y->Z (the caller guarantees e1.To == e2.From) into X->Z,
// applying whichever rule of the reduction table fires:
//
//	e1 kind     e2 kind     guard                                  result kind
//	Plain       Plain       —                                      Plain
//	Plain       UpperCase   —                                      UpperCase (e2.Letter)
//	LowerCase   Plain       e2.Value < 0                            Plain
//	LowerCase   UpperCase   e2.Value < 0 && e1.Letter != e2.Letter  UpperCase (e2.Letter)
//
// No other (e1.Kind, e2.Kind) combination reduces; Reduce returns
// (zero Edge, false) in that case. An UpperCase result whose Value is
// non-negative is strengthened to Plain (label removal): a
// non-negative upper-case constraint is already implied by the plain
// constraint, and applying strengthening twice is the same as once.
//
// Complexity: O(1).
func Reduce(e1, e2 distgraph.Edge) (distgraph.Edge, bool) {
	value := e1.Value + e2.Value

	switch {
	case e1.Kind == distgraph.Plain && e2.Kind == distgraph.Plain:
		return distgraph.Edge{From: e1.From, To: e2.To, Value: value, Kind: distgraph.Plain}, true

	case e1.Kind == distgraph.Plain && e2.Kind == distgraph.UpperCase:
		return strengthen(distgraph.Edge{From: e1.From, To: e2.To, Value: value, Kind: distgraph.UpperCase, Letter: e2.Letter}), true

	case e1.Kind == distgraph.LowerCase && e2.Kind == distgraph.Plain && e2.Value < 0:
		return distgraph.Edge{From: e1.From, To: e2.To, Value: value, Kind: distgraph.Plain}, true

	case e1.Kind == distgraph.LowerCase && e2.Kind == distgraph.UpperCase && e2.Value < 0 && e1.Letter != e2.Letter:
		return strengthen(distgraph.Edge{From: e1.From, To: e2.To, Value: value, Kind: distgraph.UpperCase, Letter: e2.Letter}), true

	default:
		return distgraph.Edge{}, false
	}
}

// strengthen applies label removal: an UpperCase edge whose Value is
// non-negative carries no information beyond a Plain edge of the same
// value, so it is downgraded with its letter cleared.
func strengthen(e distgraph.Edge) distgraph.Edge {
	if e.Kind == distgraph.UpperCase && e.Value >= 0 {
		e.Kind = distgraph.Plain
		e.Letter = 0
	}

	return e
}
