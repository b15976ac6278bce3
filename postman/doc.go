// Package postman solves the Directed Chinese Postman Problem by wiring
// together the graph, hungarian, and eulerian packages: it gates on
// solvability (strong connectivity, no negative cycle), repairs any
// out/in-degree imbalance via a minimum-weight bipartite matching over
// shortest-path distances, and hands the now-Eulerian multigraph to
// Hierholzer's algorithm to produce the final closed walk.
//
// Solve is a thin public entry point delegating to unexported, narrowly
// scoped helpers: it never mutates its input graph unless the instance is
// solvable, and never does so before the solvability gate has already
// passed.
package postman
