// Package network defines the STNU input model: nodes, controllable
// (requirement) edges, and contingent edges, plus the validation that
// turns a caller-supplied set of edges into a Network the DC solver can
// trust without revalidation.
//
// A Network is immutable once constructed: New validates every
// structural invariant up front and returns ErrInvalidNetwork naming
// the offending edge on the first violation.
// Downstream packages (distgraph, dc) never re-check these invariants.
package network
