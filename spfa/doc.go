// Package spfa implements the Shortest Paths Faster Algorithm, a
// queue-based variant of Bellman–Ford–Moore, with negative-cycle
// detection by relaxation count.
//
// Run explores the graph from a single source using a FIFO queue and
// an in-queue bit to avoid duplicate work; if any node is dequeued
// more than n times, the graph contains a negative cycle reachable
// from the source and Run returns ErrNegativeCycle. Dequeue order does
// not affect correctness, only performance.
package spfa
