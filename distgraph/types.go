package distgraph

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/morrisdc/network"
)

// valueTol is the absolute tolerance used when two edge values are
// compared for equality by Equal (and so by Contains, which every
// deduplication goes through). Grounded on gonum/floats.EqualWithinAbs rather than a
// hand-rolled "==" so accumulated floating error across many rounds of
// edge composition never causes a spurious duplicate or a missed one.
const valueTol = 1e-9

// Kind tags a labeled edge as plain, upper-case, or lower-case, per
// Morris's distance-graph representation. Using a sum-type-by-enum
// here (rather than an embedded "type" int plus an optional letter
// field scattered across call sites) keeps the reduction table in
// package reduce an exhaustive switch.
type Kind int

const (
	// Plain is an ordinary distance-graph edge; Letter is unused.
	Plain Kind = iota

	// UpperCase is a negative contingent-duration edge; Letter names
	// the contingent node the label refers to.
	UpperCase

	// LowerCase is a contingent lower-bound edge; Letter names the
	// contingent node the label refers to.
	LowerCase
)

// String renders a Kind for diagnostics and test failure messages.
func (k Kind) String() string {
	switch k {
	case Plain:
		return "plain"
	case UpperCase:
		return "upper-case"
	case LowerCase:
		return "lower-case"
	default:
		return "unknown"
	}
}

// Edge is one edge of the labeled distance graph: (From, To, Value,
// Kind) plus Letter, which is meaningful only when Kind != Plain.
// Letter == 0 reads as "no letter", since 0 is reserved for the AllMax
// virtual source and never a real network.Node.
type Edge struct {
	From, To network.Node
	Value    float64
	Kind     Kind
	Letter   network.Node
}

// Equal reports whether two edges are the same (From, To, Value,
// Kind, Letter) tuple up to the package's value tolerance. This is the
// single equality rule used wherever edges must be deduplicated.
func Equal(a, b Edge) bool {
	if a.From != b.From || a.To != b.To || a.Kind != b.Kind || a.Letter != b.Letter {
		return false
	}

	return floats.EqualWithinAbs(a.Value, b.Value, valueTol)
}

// Contains reports whether edges contains an edge equal to e.
func Contains(edges []Edge, e Edge) bool {
	for _, existing := range edges {
		if Equal(existing, e) {
			return true
		}
	}

	return false
}
