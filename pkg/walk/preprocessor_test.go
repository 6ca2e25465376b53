package walk

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/azybler/xn2vwalk/pkg/graph"
)

// buildFixture is the six-node, nine-edge graph from the loader tests,
// built directly from CSR arrays here so the walk package doesn't need to
// import package loader.
func buildFixture(t *testing.T) *graph.Graph {
	t.Helper()
	offsets := []uint32{0, 4, 9, 12, 14, 17, 18}
	dest := []uint32{
		1, 2, 3, 4,
		0, 2, 3, 4, 5,
		0, 1, 4,
		0, 1,
		0, 1, 2,
		1,
	}
	weight := []float64{
		10, 6.25, 10, 4,
		10, 8.75, 9, 5, 7,
		6.25, 8.75, 15,
		10, 9,
		4, 5, 15,
		7,
	}
	edgeType := []int32{
		0, 1, 0, 3,
		0, 2, 0, 0, 3,
		1, 2, 3,
		0, 0,
		3, 0, 3,
		3,
	}
	labels := []string{"g1", "g2", "g3", "g4", "g5", "g6"}
	return graph.New(offsets, dest, weight, edgeType, labels, nil)
}

func heterogeneousParams() Params {
	return Params{P: 1, Q: 1, Gamma: 1, ChangeNodeTypeWeight: 1, ChangeEdgeTypeWeight: 1, Mode: Heterogeneous}
}

// S5: src=g2, dst=g6, g6 has a single neighbour (g2) — alias table of size
// 1, reconstructed probability [1.0].
func TestPreprocessorDeadEndNeighbour(t *testing.T) {
	g := buildFixture(t)
	tp := New(g, heterogeneousParams())
	require.NoError(t, tp.Build(context.Background(), 0))

	e, err := g.HalfEdgeIndex(1, 5) // g2 -> g6
	require.NoError(t, err)

	table := tp.edgeAlias[e]
	require.Equal(t, 1, table.Len())

	probs := table.Probabilities()
	require.InDelta(t, 1.0, probs[0], 1e-9)
}

// S6: src=g2, dst=g4; g4's neighbours g1,g2 share edge type 0 so the
// heterogeneous type mass is uniform and the node2vec bias (p=q=1) is 1
// for both, leaving weights 10 and 9 normalised: [10/19, 9/19].
func TestPreprocessorUniformType(t *testing.T) {
	g := buildFixture(t)
	tp := New(g, heterogeneousParams())
	require.NoError(t, tp.Build(context.Background(), 0))

	e, err := g.HalfEdgeIndex(1, 3) // g2 -> g4
	require.NoError(t, err)

	probs := tp.edgeAlias[e].Probabilities()
	nbrs := g.Neighbours(3) // g4's neighbours: g1(0), g2(1)
	require.Equal(t, []uint32{0, 1}, nbrs)
	require.InDelta(t, 10.0/19.0, probs[0], 1e-9)
	require.InDelta(t, 9.0/19.0, probs[1], 1e-9)
}

// S7: src=g1, dst=g3; g3's neighbours g1,g2,g5 carry distinct edge types
// (1,2,3) as seen from g3, so K=3, c(t)=1 for each, giving uniform P(t) =
// 1/3 and the normalised weights stay in ratio 6.25:8.75:15, i.e.
// [2.5/12, 3.5/12, 6/12].
func TestPreprocessorMixedTypes(t *testing.T) {
	g := buildFixture(t)
	tp := New(g, heterogeneousParams())
	require.NoError(t, tp.Build(context.Background(), 0))

	e, err := g.HalfEdgeIndex(0, 2) // g1 -> g3
	require.NoError(t, err)

	probs := tp.edgeAlias[e].Probabilities()
	nbrs := g.Neighbours(2) // g3's neighbours: g1(0), g2(1), g5(4)
	require.Equal(t, []uint32{0, 1, 4}, nbrs)
	require.InDelta(t, 2.5/12.0, probs[0], 1e-9)
	require.InDelta(t, 3.5/12.0, probs[1], 1e-9)
	require.InDelta(t, 6.0/12.0, probs[2], 1e-9)
}

func TestPreprocessorRejectsInvalidParams(t *testing.T) {
	g := buildFixture(t)
	tp := New(g, Params{P: 0, Q: 1, Gamma: 1, ChangeNodeTypeWeight: 1, ChangeEdgeTypeWeight: 1})
	err := tp.Build(context.Background(), 0)
	require.ErrorIs(t, err, ErrInvalidParams)
	require.False(t, tp.Ready())
}

func TestPreprocessorSkipsTrapNode(t *testing.T) {
	offsets := []uint32{0, 0}
	g := graph.New(offsets, nil, nil, nil, []string{"lonely"}, nil)
	tp := New(g, DefaultParams())
	require.NoError(t, tp.Build(context.Background(), 0))
	require.True(t, tp.Ready())
	require.Equal(t, 0, tp.nodeAlias[0].Len())
}
