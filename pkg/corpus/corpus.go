// Package corpus serialises jagged walk collections (package walk's output)
// to a zstd-compressed, line-oriented text format: one walk per line, node
// labels space-separated. Label translation happens here, at the boundary,
// per the walk engine's convention that it only ever returns stable
// indices.
package corpus

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/zstd"

	"github.com/azybler/xn2vwalk/pkg/graph"
)

// Writer streams a corpus to an underlying io.Writer through a zstd
// encoder. It is not safe for concurrent use.
type Writer struct {
	w      *bufio.Writer
	zw     *zstd.Encoder
	closed bool
}

// NewWriter wraps dst with zstd compression at the given level (0 selects
// the library default, zstd.SpeedDefault).
func NewWriter(dst io.Writer, level zstd.EncoderLevel) (*Writer, error) {
	if level == 0 {
		level = zstd.SpeedDefault
	}
	zw, err := zstd.NewWriter(dst, zstd.WithEncoderLevel(level))
	if err != nil {
		return nil, fmt.Errorf("corpus: opening zstd encoder: %w", err)
	}
	return &Writer{w: bufio.NewWriter(zw), zw: zw}, nil
}

// WriteWalk translates walk's node indices to labels via g and appends one
// line to the stream.
func (cw *Writer) WriteWalk(walk []uint32, g *graph.Graph) error {
	if cw.closed {
		return ErrClosed
	}
	for i, idx := range walk {
		if i > 0 {
			if err := cw.w.WriteByte(' '); err != nil {
				return err
			}
		}
		label, err := g.LabelOfIndex(idx)
		if err != nil {
			return err
		}
		if _, err := cw.w.WriteString(label); err != nil {
			return err
		}
	}
	return cw.w.WriteByte('\n')
}

// WriteBatch writes every walk in corpus via WriteWalk.
func (cw *Writer) WriteBatch(corpus [][]uint32, g *graph.Graph) error {
	for _, walk := range corpus {
		if err := cw.WriteWalk(walk, g); err != nil {
			return err
		}
	}
	return nil
}

// Close flushes buffered output and the zstd frame. It does not close the
// underlying io.Writer.
func (cw *Writer) Close() error {
	if cw.closed {
		return nil
	}
	cw.closed = true
	if err := cw.w.Flush(); err != nil {
		_ = cw.zw.Close()
		return err
	}
	return cw.zw.Close()
}

// ReadBatch decompresses and parses a corpus previously written by Writer,
// translating labels back to the stable indices of g. A line whose label
// is not present in g is a format error.
func ReadBatch(src io.Reader, g *graph.Graph) ([][]uint32, error) {
	zr, err := zstd.NewReader(src)
	if err != nil {
		return nil, fmt.Errorf("corpus: opening zstd stream: %w", err)
	}
	defer zr.Close()

	var out [][]uint32
	scanner := bufio.NewScanner(zr)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		walk := make([]uint32, len(fields))
		for i, f := range fields {
			idx, err := g.IndexOfLabel(f)
			if err != nil {
				return nil, fmt.Errorf("corpus: line %q: %w", line, err)
			}
			walk[i] = idx
		}
		out = append(out, walk)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("corpus: reading stream: %w", err)
	}
	return out, nil
}
