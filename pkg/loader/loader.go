// Package loader parses a tabular edge list (and an optional node-type
// file) into a graph.Graph: it assigns canonical node indices, symmetrises
// every undirected edge into two half-edges, and validates the result.
package loader

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/azybler/xn2vwalk/pkg/graph"
)

type rawEdge struct {
	src, dst   string
	weight     float64
	edgeType   string
	hasType    bool
}

func splitLine(line, sep string) []string {
	return strings.Split(line, sep)
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("loader: reading input: %w", err)
	}
	return lines, nil
}

// Load parses edges from r under opts, optionally reads node types from
// nodeTypes (may be nil), and returns the assembled Graph. Load never
// partially succeeds: any validation or format error returns a nil Graph.
func Load(r io.Reader, opts Options, nodeTypes io.Reader) (*graph.Graph, error) {
	if opts.Separator == "" {
		opts.Separator = "\t"
	}

	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}
	if opts.HasHeader && len(lines) > 0 {
		lines = lines[1:]
	}

	// Pass 1 (logical): parse every record and collect labels in
	// first-seen order, assigning canonical indices as they appear.
	raws := make([]rawEdge, 0, len(lines))
	labelIndex := make(map[string]uint32)
	var labels []string

	addLabel := func(s string) uint32 {
		if idx, ok := labelIndex[s]; ok {
			return idx
		}
		idx := uint32(len(labels))
		labelIndex[s] = idx
		labels = append(labels, s)
		return idx
	}

	need := opts.maxCol() + 1
	for lineNo, line := range lines {
		fields := splitLine(line, opts.Separator)
		if len(fields) < need {
			return nil, fmt.Errorf("loader: line %d: want at least %d columns, got %d: %w", lineNo+1, need, len(fields), ErrValidation)
		}

		src := strings.TrimSpace(fields[opts.SourceCol])
		dst := strings.TrimSpace(fields[opts.DestCol])
		if src == "" || dst == "" {
			return nil, fmt.Errorf("loader: line %d: empty source/destination label: %w", lineNo+1, ErrInputFormat)
		}

		re := rawEdge{src: src, dst: dst, weight: opts.DefaultWeight}

		if opts.WeightCol >= 0 {
			w, err := strconv.ParseFloat(strings.TrimSpace(fields[opts.WeightCol]), 64)
			if err != nil {
				return nil, fmt.Errorf("loader: line %d: non-numeric weight %q: %w", lineNo+1, fields[opts.WeightCol], ErrInputFormat)
			}
			re.weight = w
		}
		if re.weight <= 0 {
			return nil, fmt.Errorf("loader: line %d: non-positive weight %v: %w", lineNo+1, re.weight, ErrValidation)
		}

		if opts.EdgeTypeCol >= 0 {
			re.edgeType = strings.TrimSpace(fields[opts.EdgeTypeCol])
			re.hasType = true
		}

		addLabel(src)
		addLabel(dst)
		raws = append(raws, re)
	}

	// Edge-type tags keep their own integer value when every tag in the file
	// is an integer; otherwise every tag is interned to a small integer in
	// first-seen order.
	numericTypes := true
	for _, re := range raws {
		if _, err := strconv.ParseInt(re.edgeType, 10, 32); re.hasType && err != nil {
			numericTypes = false
			break
		}
	}
	edgeTypeIndex := make(map[string]int32)
	internEdgeType := func(s string) int32 {
		if numericTypes {
			v, _ := strconv.ParseInt(s, 10, 32)
			return int32(v)
		}
		if !strings.EqualFold(s, "") {
			if idx, ok := edgeTypeIndex[s]; ok {
				return idx
			}
			idx := int32(len(edgeTypeIndex))
			edgeTypeIndex[s] = idx
			return idx
		}
		return 0
	}

	// Pass 2 (logical): symmetrise into half-edges, deduplicating by
	// (u, v) and keeping the first weight/type seen for a pair; a later
	// occurrence with a different weight or type is a conflict.
	type key struct{ u, v uint32 }
	type val struct {
		w float64
		t int32
	}
	half := make(map[key]val, len(raws)*2)
	var order []key

	put := func(u, v uint32, w float64, t int32) error {
		k := key{u, v}
		if existing, ok := half[k]; ok {
			if existing.w != w || existing.t != t {
				return fmt.Errorf("loader: conflicting duplicate edge (%d,%d): w=%v/t=%d vs w=%v/t=%d: %w",
					u, v, existing.w, existing.t, w, t, ErrValidation)
			}
			return nil
		}
		half[k] = val{w: w, t: t}
		order = append(order, k)
		return nil
	}

	for _, re := range raws {
		u := labelIndex[re.src]
		v := labelIndex[re.dst]
		t := int32(0)
		if re.hasType {
			t = internEdgeType(re.edgeType)
		}
		if err := put(u, v, re.weight, t); err != nil {
			return nil, err
		}
		if err := put(v, u, re.weight, t); err != nil {
			return nil, err
		}
	}

	sort.Slice(order, func(i, j int) bool {
		if order[i].u != order[j].u {
			return order[i].u < order[j].u
		}
		return order[i].v < order[j].v
	})

	n := uint32(len(labels))
	m := uint32(len(order))
	offsets := make([]uint32, n+1)
	dest := make([]uint32, m)
	weight := make([]float64, m)
	edgeType := make([]int32, m)

	for _, k := range order {
		offsets[k.u+1]++
	}
	for i := uint32(1); i <= n; i++ {
		offsets[i] += offsets[i-1]
	}
	pos := make([]uint32, n)
	copy(pos, offsets[:n])
	for _, k := range order {
		v := half[k]
		idx := pos[k.u]
		dest[idx] = k.v
		weight[idx] = v.w
		edgeType[idx] = v.t
		pos[k.u]++
	}

	nodeType, err := loadNodeTypes(nodeTypes, labelIndex, n)
	if err != nil {
		return nil, err
	}

	return graph.New(offsets, dest, weight, edgeType, labels, nodeType), nil
}

// loadNodeTypes parses the optional label -> type_tag file, interning type
// tags to small integers in first-seen order. A label that was never seen
// in the edge file is a validation error.
func loadNodeTypes(r io.Reader, labelIndex map[string]uint32, n uint32) ([]int32, error) {
	if r == nil {
		return nil, nil
	}

	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}

	nodeType := make([]int32, n)
	for i := range nodeType {
		nodeType[i] = graph.NoType
	}

	typeIndex := make(map[string]int32)
	for lineNo, line := range lines {
		fields := splitLine(line, "\t")
		if len(fields) < 2 {
			return nil, fmt.Errorf("loader: node-type line %d: want 2 columns, got %d: %w", lineNo+1, len(fields), ErrValidation)
		}
		label := strings.TrimSpace(fields[0])
		tag := strings.TrimSpace(fields[1])

		idx, ok := labelIndex[label]
		if !ok {
			return nil, fmt.Errorf("loader: node-type line %d: %w: %q", lineNo+1, graph.ErrUnknownLabel, label)
		}

		t, ok := typeIndex[tag]
		if !ok {
			t = int32(len(typeIndex))
			typeIndex[tag] = t
		}
		nodeType[idx] = t
	}

	return nodeType, nil
}
