package corpus

import (
	"bytes"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/require"

	"github.com/azybler/xn2vwalk/pkg/graph"
)

func fixtureGraph() *graph.Graph {
	offsets := []uint32{0, 1, 2}
	dest := []uint32{1, 0}
	weight := []float64{1, 1}
	edgeType := []int32{0, 0}
	labels := []string{"g1", "g2"}
	return graph.New(offsets, dest, weight, edgeType, labels, nil)
}

func TestWriterRoundTrip(t *testing.T) {
	g := fixtureGraph()
	walks := [][]uint32{{0, 1}, {1, 0}}

	var buf bytes.Buffer
	w, err := NewWriter(&buf, zstd.SpeedDefault)
	require.NoError(t, err)
	require.NoError(t, w.WriteBatch(walks, g))
	require.NoError(t, w.Close())

	got, err := ReadBatch(&buf, g)
	require.NoError(t, err)
	require.Equal(t, walks, got)
}

func TestWriterRejectsAfterClose(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, zstd.SpeedDefault)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	err = w.WriteWalk([]uint32{0}, fixtureGraph())
	require.ErrorIs(t, err, ErrClosed)
}

func TestReadBatchUnknownLabel(t *testing.T) {
	g := fixtureGraph()
	var buf bytes.Buffer
	w, err := NewWriter(&buf, zstd.SpeedDefault)
	require.NoError(t, err)

	// Write a raw line referencing a label not in g.
	_, err = w.w.WriteString("nosuchlabel\n")
	require.NoError(t, err)
	require.NoError(t, w.Close())

	_, err = ReadBatch(&buf, g)
	require.Error(t, err)
}
