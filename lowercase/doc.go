// Package lowercase implements the lower-case reducer: for one
// lower-case edge L = A ->_c B, it runs Dijkstra with potentials over
// a breach-filtered subgraph rooted at B, folding each path through
// package reduce as it relaxes, and emits a new labeled edge A->Z for
// every discovered moat (a semi-reducible path whose reduced length is
// negative).
//
// The breach filter keeps only plain and upper-case edges, and among
// upper-case edges excludes any whose letter equals L's own letter;
// lower-case edges are never traversed here. Potentials (from package
// allmax) make every filtered, reweighted edge non-negative, so a
// standard Dijkstra priority queue applies; ties are broken by
// ascending node id for a deterministic traversal order.
package lowercase
