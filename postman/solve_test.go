package postman_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dcpp-solver/graph"
	"github.com/katalvlaran/dcpp-solver/postman"
)

// standardSixNode builds the graph shared by seed scenarios 2-5.
func standardSixNode(b *graph.Builder) {
	b.AddEdge(0, 2, 20).AddEdge(0, 1, 10)
	b.AddEdge(1, 4, 10).AddEdge(1, 3, 50)
	b.AddEdge(2, 4, 33).AddEdge(2, 3, 20)
	b.AddEdge(3, 4, 5).AddEdge(3, 5, 12)
	b.AddEdge(4, 0, 12).AddEdge(4, 5, 1)
	b.AddEdge(5, 2, 22)
}

// standardSixNodeLabelled builds the same shape as standardSixNode, using
// labels a..f for node indices 0..5 (0=a, 1=b, 2=c, 3=d, 4=e, 5=f).
func standardSixNodeLabelled(b *graph.Builder) {
	b.AddLabeledEdge("a", "c", 20).AddLabeledEdge("a", "b", 10)
	b.AddLabeledEdge("b", "e", 10).AddLabeledEdge("b", "d", 50)
	b.AddLabeledEdge("c", "e", 33).AddLabeledEdge("c", "d", 20)
	b.AddLabeledEdge("d", "e", 5).AddLabeledEdge("d", "f", 12)
	b.AddLabeledEdge("e", "a", 12).AddLabeledEdge("e", "f", 1)
	b.AddLabeledEdge("f", "c", 22)
}

func TestSolve_FiveCycle(t *testing.T) {
	b := graph.NewBuilder()
	for i := 0; i < 5; i++ {
		b.AddEdge(i, (i+1)%5, 1.0)
	}
	g := b.Build()

	w, err := postman.Solve(g)
	require.NoError(t, err)
	require.NotNil(t, w)
	require.Equal(t, 5.0, w.Cost())
	require.Len(t, w.Nodes(), 6)
	nodes := w.Nodes()
	require.Equal(t, nodes[0], nodes[len(nodes)-1])
}

func TestSolve_StandardSixNode(t *testing.T) {
	b := graph.NewBuilder()
	standardSixNode(b)
	g := b.Build()

	w, err := postman.Solve(g)
	require.NoError(t, err)
	require.NotNil(t, w)
	require.Equal(t, 276.0, w.Cost())
}

func TestSolve_LabelledSixNode_FormatsWithLabelSeparator(t *testing.T) {
	b := graph.NewBuilder()
	standardSixNodeLabelled(b)
	g := b.Build()

	w, err := postman.Solve(g)
	require.NoError(t, err)
	require.NotNil(t, w)
	require.Equal(t, 276.0, w.Cost())

	formatted := w.Format(g.Labels())
	require.Contains(t, formatted, "->")
	require.Contains(t, formatted, ", Cost: 276")
}

func TestSolve_OddImbalance(t *testing.T) {
	b := graph.NewBuilder()
	standardSixNodeLabelled(b)
	b.AddLabeledEdge("g", "c", 88).AddLabeledEdge("a", "g", 18)
	g := b.Build()

	w, err := postman.Solve(g)
	require.NoError(t, err)
	require.NotNil(t, w)
	require.Equal(t, 419.0, w.Cost())
}

func TestSolve_MultiUnitImbalance(t *testing.T) {
	b := graph.NewBuilder()
	standardSixNodeLabelled(b)
	b.AddLabeledEdge("g", "f", 2).AddLabeledEdge("b", "g", 67)
	g := b.Build()

	w, err := postman.Solve(g)
	require.NoError(t, err)
	require.NotNil(t, w)
	require.Equal(t, 414.0, w.Cost())
}

func TestSolve_UnsolvableNegativeWeightCascade(t *testing.T) {
	b := graph.NewBuilder().AddEdge(0, 1, 10).AddEdge(1, 2, -20)
	g := b.Build()

	w, err := postman.Solve(g)
	require.NoError(t, err)
	require.Nil(t, w)
}

func TestSolve_TrivialTwoCycle(t *testing.T) {
	b := graph.NewBuilder().AddEdge(0, 1, 1).AddEdge(1, 0, 1)
	g := b.Build()

	w, err := postman.Solve(g)
	require.NoError(t, err)
	require.NotNil(t, w)
	require.Equal(t, 2.0, w.Cost())
	require.Equal(t, []int{0, 1, 0}, w.Nodes())
}

func TestSolve_NilGraph_ReturnsSentinel(t *testing.T) {
	w, err := postman.Solve(nil)
	require.ErrorIs(t, err, postman.ErrNilGraph)
	require.Nil(t, w)
}

// TestSolve_P1_CostMatchesSummedWeights verifies P1: the walk's cost equals
// the sum of W entries along the walk.
func TestSolve_P1_CostMatchesSummedWeights(t *testing.T) {
	b := graph.NewBuilder()
	standardSixNodeLabelled(b)
	b.AddLabeledEdge("g", "f", 2).AddLabeledEdge("b", "g", 67)
	g := b.Build()

	w, err := postman.Solve(g)
	require.NoError(t, err)
	require.NotNil(t, w)

	nodes := w.Nodes()
	summed := 0.0
	for i := 0; i < len(nodes)-1; i++ {
		weight, err := g.Weight(nodes[i], nodes[i+1])
		require.NoError(t, err)
		summed += weight
	}
	require.Equal(t, summed, w.Cost())
}

// TestSolve_P2_EveryOriginalEdgeCovered verifies P2: every original edge
// (i,j) appears in the walk at least C0[i][j] times.
func TestSolve_P2_EveryOriginalEdgeCovered(t *testing.T) {
	b := graph.NewBuilder()
	standardSixNodeLabelled(b)
	b.AddLabeledEdge("g", "c", 88).AddLabeledEdge("a", "g", 18)
	g := b.Build()

	originalCounts := make(map[[2]int]int)
	for i := 0; i < g.N(); i++ {
		for j := 0; j < g.N(); j++ {
			c, err := g.EdgeCount(i, j)
			require.NoError(t, err)
			if c > 0 {
				originalCounts[[2]int{i, j}] = c
			}
		}
	}

	w, err := postman.Solve(g)
	require.NoError(t, err)
	require.NotNil(t, w)

	walkCounts := make(map[[2]int]int)
	nodes := w.Nodes()
	for i := 0; i < len(nodes)-1; i++ {
		walkCounts[[2]int{nodes[i], nodes[i+1]}]++
	}

	for edge, want := range originalCounts {
		require.GreaterOrEqual(t, walkCounts[edge], want, "edge %v under-covered", edge)
	}
}

// TestSolve_P3_WalkIsClosed verifies P3: first and last nodes coincide.
func TestSolve_P3_WalkIsClosed(t *testing.T) {
	b := graph.NewBuilder()
	standardSixNode(b)
	g := b.Build()

	w, err := postman.Solve(g)
	require.NoError(t, err)
	require.NotNil(t, w)

	nodes := w.Nodes()
	require.Equal(t, nodes[0], nodes[len(nodes)-1])
}

// TestSolve_P4_OptimalOnAlreadyEulerianInput verifies P4: an already
// balanced instance's cost equals the raw sum over C0[i][j]*W[i][j], since
// no balancing detours are needed.
func TestSolve_P4_OptimalOnAlreadyEulerianInput(t *testing.T) {
	b := graph.NewBuilder()
	for i := 0; i < 5; i++ {
		b.AddEdge(i, (i+1)%5, 3.0)
	}
	g := b.Build()
	require.True(t, g.ImbalancedNodes().Empty())

	want := 0.0
	for i := 0; i < g.N(); i++ {
		for j := 0; j < g.N(); j++ {
			c, _ := g.EdgeCount(i, j)
			wt, _ := g.Weight(i, j)
			if c > 0 {
				want += float64(c) * wt
			}
		}
	}

	w, err := postman.Solve(g)
	require.NoError(t, err)
	require.NotNil(t, w)
	require.Equal(t, want, w.Cost())
}

// TestSolve_P5_WeaklyConnectedIsUnsolvable verifies P5 for the
// weakly-but-not-strongly-connected case.
func TestSolve_P5_WeaklyConnectedIsUnsolvable(t *testing.T) {
	b := graph.NewBuilder().AddEdge(0, 1, 1)
	g := b.Build()

	w, err := postman.Solve(g)
	require.NoError(t, err)
	require.Nil(t, w)
}

// TestSolve_P6_DeterministicAcrossEquivalentGraphs verifies P6: two
// invocations on equivalently-constructed graphs yield identical walks.
func TestSolve_P6_DeterministicAcrossEquivalentGraphs(t *testing.T) {
	build := func() *graph.Graph {
		b := graph.NewBuilder()
		standardSixNodeLabelled(b)
		b.AddLabeledEdge("g", "f", 2).AddLabeledEdge("b", "g", 67)
		return b.Build()
	}

	w1, err := postman.Solve(build())
	require.NoError(t, err)
	w2, err := postman.Solve(build())
	require.NoError(t, err)

	require.Equal(t, w1.Nodes(), w2.Nodes())
	require.Equal(t, w1.Cost(), w2.Cost())
}
