// Package reduce implements the edge-reduction algebra: given two
// consecutive labeled edges e1: X->Y and e2: Y->Z, Reduce returns the
// composed edge X->Z if one of the table's rules fires, or reports
// that no reduction applies.
//
// Reduce is a pure function with no hidden state; it is the single
// place the reduction table lives, so both the lower-case reducer
// (package lowercase) and any future caller fold paths through the
// exact same rules.
package reduce
