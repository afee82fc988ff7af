// Package distgraph builds Morris's labeled distance graph from a
// validated network.Network, and defines the Edge/Kind types shared by
// every downstream package that handles labeled edges (allmax, reduce,
// lowercase, dc).
//
// Generate is the only entry point: it expands each controllable edge
// into a pair of plain edges and each contingent edge into a plain
// pair plus an upper-case/lower-case pair, introducing one fresh
// auxiliary node per contingent edge whose lower bound is non-zero
// (the l>0 normalization step). The function is
// pure and deterministic: the same network always yields the same
// edge slice in the same order.
package distgraph
