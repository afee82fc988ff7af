package network

// New validates numNodes, controllable, and contingent against every
// structural invariant (node ranges, interval sanity, pair uniqueness,
// single-incoming-contingent, no contingent chaining) and returns a
// Network only if all of them hold. On the first violation it returns ErrInvalidNetwork
// naming the offending edge; the caller should not attempt repair and
// retry, since the solver never revalidates.
//
// Complexity: O(|controllable| + |contingent|).
func New(numNodes int, controllable []ControllableEdge, contingent []ContingentEdge) (*Network, error) {
	if numNodes < 1 {
		return nil, invalidf("num_nodes must be >= 1, got %d", numNodes)
	}

	if err := validateRange("controllable", numNodes, len(controllable), func(i int) (Node, Node) {
		return controllable[i].From, controllable[i].To
	}); err != nil {
		return nil, err
	}
	if err := validateRange("contingent", numNodes, len(contingent), func(i int) (Node, Node) {
		return contingent[i].From, contingent[i].To
	}); err != nil {
		return nil, err
	}

	for i, e := range controllable {
		if e.Lower > e.Upper {
			return nil, invalidf("controllable edge #%d (%d->%d): lower %g > upper %g", i, e.From, e.To, e.Lower, e.Upper)
		}
	}
	for i, e := range contingent {
		if e.Lower < 0 {
			return nil, invalidf("contingent edge #%d (%d->%d): lower %g < 0", i, e.From, e.To, e.Lower)
		}
		if e.Lower > e.Upper {
			return nil, invalidf("contingent edge #%d (%d->%d): lower %g > upper %g", i, e.From, e.To, e.Lower, e.Upper)
		}
	}

	if err := requireUniquePairs("controllable", controllable); err != nil {
		return nil, err
	}
	if err := requireUniqueContingentPairs(contingent); err != nil {
		return nil, err
	}

	if err := requireSingleIncomingContingent(contingent); err != nil {
		return nil, err
	}
	if err := requireNoContingentChaining(contingent); err != nil {
		return nil, err
	}

	// Copy the slices so the caller cannot mutate them out from under
	// the Network after construction.
	ctrl := append([]ControllableEdge(nil), controllable...)
	cont := append([]ContingentEdge(nil), contingent...)

	return &Network{numNodes: numNodes, controllable: ctrl, contingent: cont}, nil
}

func validateRange(kind string, numNodes, count int, at func(int) (Node, Node)) error {
	for i := 0; i < count; i++ {
		from, to := at(i)
		if from < 1 || int(from) > numNodes {
			return invalidf("%s edge #%d: from=%d out of range [1,%d]", kind, i, from, numNodes)
		}
		if to < 1 || int(to) > numNodes {
			return invalidf("%s edge #%d: to=%d out of range [1,%d]", kind, i, to, numNodes)
		}
	}

	return nil
}

func requireUniquePairs(kind string, edges []ControllableEdge) error {
	seen := make(map[[2]Node]struct{}, len(edges))
	for i, e := range edges {
		pair := [2]Node{e.From, e.To}
		if _, ok := seen[pair]; ok {
			return invalidf("%s edge #%d: duplicate pair (%d->%d)", kind, i, e.From, e.To)
		}
		seen[pair] = struct{}{}
	}

	return nil
}

func requireUniqueContingentPairs(edges []ContingentEdge) error {
	seen := make(map[[2]Node]struct{}, len(edges))
	for i, e := range edges {
		pair := [2]Node{e.From, e.To}
		if _, ok := seen[pair]; ok {
			return invalidf("contingent edge #%d: duplicate pair (%d->%d)", i, e.From, e.To)
		}
		seen[pair] = struct{}{}
	}

	return nil
}

func requireSingleIncomingContingent(edges []ContingentEdge) error {
	incoming := make(map[Node]int, len(edges))
	for _, e := range edges {
		incoming[e.To]++
		if incoming[e.To] > 1 {
			return invalidf("node %d has more than one incoming contingent edge", e.To)
		}
	}

	return nil
}

func requireNoContingentChaining(edges []ContingentEdge) error {
	origins := make(map[Node]struct{}, len(edges))
	targets := make(map[Node]struct{}, len(edges))
	for _, e := range edges {
		origins[e.From] = struct{}{}
		targets[e.To] = struct{}{}
	}
	for n := range origins {
		if _, ok := targets[n]; ok {
			return invalidf("node %d is both an origin and a target of contingent edges (chained contingents)", n)
		}
	}

	return nil
}
