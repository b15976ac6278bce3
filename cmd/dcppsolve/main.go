// Command dcppsolve is a thin demonstration CLI that builds a hard-coded
// directed graph and reports whether the Directed Chinese Postman Problem
// is solvable on it.
package main

import (
	"log/slog"
	"os"

	"github.com/katalvlaran/dcpp-solver/graph"
	"github.com/katalvlaran/dcpp-solver/postman"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	g := buildLabelledSixNode()
	logger.Info("graph built", slog.Int("nodes", g.N()))

	walk, err := postman.Solve(g)
	if err != nil {
		logger.Error("solve failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if walk == nil {
		logger.Info("instance is unsolvable: not strongly connected or a negative cycle exists")
		return
	}

	logger.Info("solved",
		slog.Float64("cost", walk.Cost()),
		slog.Int("walk_length", len(walk.Nodes())),
		slog.String("path", walk.Format(g.Labels())),
	)
}

// buildLabelledSixNode builds a standard six-node directed graph with
// labels a..f.
func buildLabelledSixNode() *graph.Graph {
	b := graph.NewBuilder()
	b.AddLabeledEdge("a", "c", 20).AddLabeledEdge("a", "b", 10)
	b.AddLabeledEdge("b", "e", 10).AddLabeledEdge("b", "d", 50)
	b.AddLabeledEdge("c", "e", 33).AddLabeledEdge("c", "d", 20)
	b.AddLabeledEdge("d", "e", 5).AddLabeledEdge("d", "f", 12)
	b.AddLabeledEdge("e", "a", 12).AddLabeledEdge("e", "f", 1)
	b.AddLabeledEdge("f", "c", 22)

	return b.Build()
}
