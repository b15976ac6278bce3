package eulerian

import "fmt"

// Circuit returns the Eulerian circuit of a balanced, strongly connected
// directed multigraph, starting and ending at start.
//
// successors[u] lists u's outgoing neighbors, one entry per parallel edge,
// in the order they should be consumed (callers wanting P6 determinism pass
// them sorted ascending by target index, as graph.Graph.EdgeMultiset does).
// outRemaining[u] is u's out-degree, consumed alongside successors[u] as
// entries are visited; both slices are mutated by this call.
//
// Circuit panics if the input is not actually Eulerian from start — that is
// a caller invariant violation, not a runtime condition this package is
// designed to recover from: the solvability gate upstream is responsible
// for guaranteeing it never happens.
func Circuit(successors [][]int, outRemaining []int, start int) []int {
	n := len(successors)
	if n == 0 {
		return nil
	}
	if start < 0 || start >= n {
		panic(fmt.Sprintf("eulerian: start %d out of range [0,%d)", start, n))
	}

	totalEdges := 0
	for _, s := range successors {
		totalEdges += len(s)
	}

	cursor := make([]int, n)
	stack := make([]int, 0, totalEdges+1)
	stack = append(stack, start)
	walk := make([]int, 0, totalEdges+1)

	for len(stack) > 0 {
		u := stack[len(stack)-1]
		if outRemaining[u] > 0 {
			v := successors[u][cursor[u]]
			cursor[u]++
			outRemaining[u]--
			stack = append(stack, v)
			continue
		}
		walk = append(walk, u)
		stack = stack[:len(stack)-1]
	}

	for _, rem := range outRemaining {
		if rem != 0 {
			panic("eulerian: input graph is not Eulerian from the given start — edges remain unvisited")
		}
	}
	if len(walk) != totalEdges+1 {
		panic(fmt.Sprintf("eulerian: walk length %d, want %d (totalEdges+1) — graph is not Eulerian from start", len(walk), totalEdges+1))
	}

	for i, j := 0, len(walk)-1; i < j; i, j = i+1, j-1 {
		walk[i], walk[j] = walk[j], walk[i]
	}

	return walk
}
