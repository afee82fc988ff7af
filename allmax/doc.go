// Package allmax implements the AllMax consistency check: it builds
// the simple-edge projection of a labeled distance graph (every
// lower-case edge dropped, minimum value kept per (from, to) pair),
// adds a virtual source with zero-weight edges to every node, and runs
// spfa.Run from that source.
//
// If the projection has no negative cycle, the resulting distances are
// valid Johnson potentials for reweighting: removing edges (as the
// lower-case reducer's breach filter does) cannot invalidate the
// potential property, so the same potentials remain usable for every
// filtered subgraph considered later in the same round.
package allmax
