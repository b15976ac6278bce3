package graph_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dcpp-solver/graph"
)

func TestBuilder_EmptyGraph(t *testing.T) {
	g := graph.NewBuilder().Build()
	require.Equal(t, 0, g.N())
}

func TestBuilder_AddEdge_NumericIndices(t *testing.T) {
	g := graph.NewBuilder().
		AddEdge(0, 1, 1.0).
		AddEdge(1, 0, 1.0).
		Build()

	require.Equal(t, 2, g.N())
	w01, err := g.Weight(0, 1)
	require.NoError(t, err)
	require.Equal(t, 1.0, w01)

	out0, _ := g.OutDegree(0)
	require.Equal(t, 1, out0)
	in0, _ := g.InDegree(0)
	require.Equal(t, 1, in0)
}

func TestBuilder_AddLabeledEdge_AssignsOrderPreservingIDs(t *testing.T) {
	g := graph.NewBuilder().
		AddLabeledEdge("A", "B", 5.0).
		AddLabeledEdge("B", "C", 2.0).
		Build()

	require.Equal(t, 3, g.N())
	labelA, _ := g.Label(0)
	labelB, _ := g.Label(1)
	labelC, _ := g.Label(2)
	require.Equal(t, "A", labelA)
	require.Equal(t, "B", labelB)
	require.Equal(t, "C", labelC)

	wAB, _ := g.Weight(0, 1)
	require.Equal(t, 5.0, wAB)
}

func TestBuilder_LastWeightWins_ButCountsEveryDeclaration(t *testing.T) {
	g := graph.NewBuilder().
		AddEdge(0, 1, 10.0).
		AddEdge(0, 1, 20.0).
		Build()

	w, _ := g.Weight(0, 1)
	require.Equal(t, 20.0, w, "last declared weight must win in W")

	c, _ := g.EdgeCount(0, 1)
	require.Equal(t, 2, c, "C must count every declaration")

	out0, _ := g.OutDegree(0)
	require.Equal(t, 2, out0)
}

func TestBuilder_NoEdge_IsInfinity(t *testing.T) {
	g := graph.NewBuilder().AddEdge(0, 1, 1.0).Build()
	w, _ := g.Weight(1, 0)
	require.True(t, math.IsInf(w, 1))
	c, _ := g.EdgeCount(1, 0)
	require.Equal(t, 0, c)
}

func TestBuilder_DefaultLabelsAreDecimalIndex(t *testing.T) {
	g := graph.NewBuilder().AddEdge(0, 1, 1.0).Build()
	l0, _ := g.Label(0)
	l1, _ := g.Label(1)
	require.Equal(t, "0", l0)
	require.Equal(t, "1", l1)
}
