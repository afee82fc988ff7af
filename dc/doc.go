// Package dc implements the outer fixed-point loop: the solver that
// decides Dynamic Controllability for a validated network.Network by
// alternating AllMax consistency checks (package allmax) with
// per-lower-case-edge reduction (package lowercase) until the edge set
// stops growing or AllMax reports a negative cycle.
//
// DecideDC is the single entry point a host calls. Solve is the same
// algorithm with functional options (currently WithTrace, for
// per-round diagnostics); DecideDC is Solve with no options. The
// labeled-edge set is built once per call via distgraph.Generate and
// owned exclusively by that call — nothing here is shared across
// invocations.
package dc
