// Package hungarian solves the minimum-weight bipartite assignment problem
// (Kuhn-Munkres) on a dense square cost matrix, as used by the DCPP
// balancing stage to pair each out-degree-deficient node with an
// in-degree-deficient node at minimum total shortest-path cost.
//
// Solve implements the O(n^3) shortest-augmenting-path formulation with row
// and column potentials (the Jonker-Volgenant variant of Kuhn-Munkres): no
// allocation beyond the potential/slack arrays, deterministic tie-breaking
// by smallest column index, and strict sentinel errors on malformed input.
//
// SolveRectangular is a defensive entry point for callers that cannot
// guarantee a square cost matrix: when an intermediate representation
// yields more rows than columns (or vice versa) — which never happens for
// a consistent digraph's imbalance sets, since |neg| == |pos| always, but
// can happen if this package is reused outside that guarantee — it
// greedily prematches the excess entries of the larger side down to a
// square residual, then delegates to Solve.
package hungarian
