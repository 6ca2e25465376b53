package graph

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// buildFixture constructs the same six-node graph used in package loader's
// tests directly from CSR arrays, for tests that want to exercise Graph
// without going through Load.
func buildFixture(t *testing.T) *Graph {
	t.Helper()
	// Node order: g1=0 g2=1 g3=2 g4=3 g5=4 g6=5. Half-edges sorted by
	// (src,dst) as the loader would produce them.
	offsets := []uint32{0, 4, 9, 12, 14, 17, 18}
	dest := []uint32{
		1, 2, 3, 4, // g1
		0, 2, 3, 4, 5, // g2
		0, 1, 4, // g3
		0, 1, // g4
		0, 1, 2, // g5
		1, // g6
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
	g := New(offsets, dest, weight, edgeType, labels, nil)
	require.EqualValues(t, 6, g.NodeCount())
	require.EqualValues(t, 18, g.EdgeCount())
	return g
}

func TestGraphDegreeAndTrap(t *testing.T) {
	g := buildFixture(t)
	require.EqualValues(t, 1, g.Degree(5))
	require.False(t, g.IsTrap(5))

	isolated := New([]uint32{0, 0}, nil, nil, nil, []string{"only"}, nil)
	require.True(t, isolated.IsTrap(0))
	require.EqualValues(t, 0, isolated.Degree(0))
}

func TestGraphWeightAndTypeErrors(t *testing.T) {
	g := buildFixture(t)

	_, err := g.Weight(5, 2)
	require.ErrorIs(t, err, ErrNoSuchEdge)

	_, err = g.EdgeType(5, 2)
	require.ErrorIs(t, err, ErrNoSuchEdge)

	w, err := g.Weight(0, 1)
	require.NoError(t, err)
	require.Equal(t, 10.0, w)
}

func TestGraphSrcRoundTrips(t *testing.T) {
	g := buildFixture(t)
	for u := uint32(0); u < g.NodeCount(); u++ {
		start, end := g.edgeRange(u)
		for e := start; e < end; e++ {
			require.Equal(t, u, g.Src(e))
		}
	}
}

func TestGraphLabelRoundTrip(t *testing.T) {
	g := buildFixture(t)

	idx, err := g.IndexOfLabel("g3")
	require.NoError(t, err)
	require.EqualValues(t, 2, idx)

	label, err := g.LabelOfIndex(2)
	require.NoError(t, err)
	require.Equal(t, "g3", label)

	_, err = g.IndexOfLabel("nope")
	require.ErrorIs(t, err, ErrUnknownLabel)

	_, err = g.LabelOfIndex(99)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestGraphNodeTypeDefaultsToNoType(t *testing.T) {
	g := buildFixture(t)
	require.EqualValues(t, NoType, g.NodeType(0))
}
