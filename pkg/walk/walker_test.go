package walk

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/azybler/xn2vwalk/pkg/graph"
)

func graphNoEdges(t *testing.T, n int) *graph.Graph {
	t.Helper()
	offsets := make([]uint32, n+1)
	labels := make([]string, n)
	for i := range labels {
		labels[i] = "n"
	}
	return graph.New(offsets, nil, nil, nil, labels, nil)
}

func readyPreprocessor(t *testing.T) *TransitionPreprocessor {
	t.Helper()
	g := buildFixture(t)
	tp := New(g, DefaultParams())
	require.NoError(t, tp.Build(context.Background(), 0))
	return tp
}

func TestWalkerRequiresReady(t *testing.T) {
	g := buildFixture(t)
	tp := New(g, DefaultParams())
	_, err := NewWalker(tp, 1, 0)
	require.ErrorIs(t, err, ErrNotPreprocessed)
}

func TestWalkerConsecutivePairsAreEdges(t *testing.T) {
	tp := readyPreprocessor(t)
	g := tp.g

	for u := uint32(0); u < g.NodeCount(); u++ {
		if g.IsTrap(u) {
			continue
		}
		walker, err := NewWalker(tp, 42, uint64(u))
		require.NoError(t, err)
		seq, err := walker.Walk(u, 10)
		require.NoError(t, err)
		require.Equal(t, u, seq[0])
		for i := 1; i < len(seq); i++ {
			require.True(t, g.HasEdge(seq[i-1], seq[i]), "missing edge %d->%d", seq[i-1], seq[i])
		}
	}
}

func TestWalkerDeterministic(t *testing.T) {
	tp := readyPreprocessor(t)

	w1, err := NewWalker(tp, 7, 3)
	require.NoError(t, err)
	seq1, err := w1.Walk(1, 8)
	require.NoError(t, err)

	w2, err := NewWalker(tp, 7, 3)
	require.NoError(t, err)
	seq2, err := w2.Walk(1, 8)
	require.NoError(t, err)

	require.Equal(t, seq1, seq2)
}

func TestWalkerTrapEndsShort(t *testing.T) {
	// Two nodes, no edges: both are traps.
	g := graphNoEdges(t, 2)
	tp := New(g, DefaultParams())
	require.NoError(t, tp.Build(context.Background(), 0))

	walker, err := NewWalker(tp, 1, 0)
	require.NoError(t, err)
	seq, err := walker.Walk(0, 10)
	require.NoError(t, err)
	require.Equal(t, []uint32{0}, seq)
}

func TestWalkerSingleStepUsesNodeAlias(t *testing.T) {
	tp := readyPreprocessor(t)
	walker, err := NewWalker(tp, 1, 99)
	require.NoError(t, err)
	// g6 (index 5) has the single neighbour g2 (index 1), so the one step
	// drawn from its node-alias table must land there.
	seq, err := walker.Walk(5, 2)
	require.NoError(t, err)
	require.Equal(t, []uint32{5, 1}, seq)
}
