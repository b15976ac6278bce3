// Package graph holds the DCPP solver's data model: a Builder that ingests
// (from, to, weight) or (fromLabel, toLabel, weight) triples, and the
// resulting Graph snapshot — a dense weight matrix W, a parallel edge-count
// matrix C, an out-degree vector, and node labels.
//
// A Graph is effectively immutable to outside callers once built; the only
// mutator, AddEdge, is reserved for the balancing stage in package postman,
// which duplicates edges along shortest-path detours to make every node
// Eulerian (see postman.balance).
//
// This package also hosts the all-pairs shortest-path engine
// (Floyd-Warshall, in apsp.go): it is the one component every later stage
// depends on — the solvability gate, the Hungarian cost matrix, and the
// balancing stage's path reconstruction all read from it.
//
// Determinism: EdgeMultiset returns, for each source node, its successors in
// ascending order, repeated once per parallel edge, so that two builds from
// equivalently ordered edge lists produce byte-identical walks.
package graph
