// Package graph holds the compressed, read-only graph representation used
// by the walk engine: a CSR (compressed sparse row) neighbour-list store
// addressed by stable integer node indices.
package graph

import (
	"fmt"
	"sort"
)

// NoType is the sentinel node type tag used when the loader was given no
// type information for a node. Edges loaded without a type column carry
// tag 0, not NoType.
const NoType = -1

// Graph is a directed graph in CSR form. Every undirected input edge is
// represented as two opposing half-edges, so EdgeCount() == 2 * (number of
// undirected edges). Offsets[u]..Offsets[u+1] indexes into Dest/Weight/
// EdgeType for the half-edges originating at node u; within that range,
// Dest is sorted strictly increasing — this is what makes HasEdge/Weight/
// EdgeType O(log d) binary searches instead of a separate hash index.
type Graph struct {
	offsets  []uint32 // len N+1
	dest     []uint32 // len M, sorted within each node's range
	weight   []float64
	edgeType []int32

	labels     []string          // index -> original label
	labelIndex map[string]uint32 // label -> index
	nodeType   []int32           // index -> node type, NoType if absent
}

// New assembles a Graph from already-sorted CSR arrays and label/type
// tables. It is the low-level constructor used by package loader; callers
// that already hold valid CSR arrays (e.g. tests) can call it directly.
func New(offsets []uint32, dest []uint32, weight []float64, edgeType []int32, labels []string, nodeType []int32) *Graph {
	labelIndex := make(map[string]uint32, len(labels))
	for i, l := range labels {
		labelIndex[l] = uint32(i)
	}
	return &Graph{
		offsets:    offsets,
		dest:       dest,
		weight:     weight,
		edgeType:   edgeType,
		labels:     labels,
		labelIndex: labelIndex,
		nodeType:   nodeType,
	}
}

// NodeCount returns the number of nodes N.
func (g *Graph) NodeCount() uint32 { return uint32(len(g.offsets) - 1) }

// EdgeCount returns the number of directed half-edges M.
func (g *Graph) EdgeCount() uint32 { return uint32(len(g.dest)) }

// edgeRange returns the half-edge index range [start, end) for node u.
func (g *Graph) edgeRange(u uint32) (start, end uint32) {
	return g.offsets[u], g.offsets[u+1]
}

// Degree returns the out-degree of node u.
func (g *Graph) Degree(u uint32) uint32 {
	start, end := g.edgeRange(u)
	return end - start
}

// IsTrap reports whether u has degree 0. A walk reaching a trap
// terminates; see package walk.
func (g *Graph) IsTrap(u uint32) bool {
	return g.Degree(u) == 0
}

// Neighbours returns the ordered (by destination index) sequence of node
// indices reachable directly from u. The returned slice aliases internal
// storage and must not be mutated.
func (g *Graph) Neighbours(u uint32) []uint32 {
	start, end := g.edgeRange(u)
	return g.dest[start:end]
}

// OutEdges returns the ordered sequence of half-edge indices originating
// at u, aligned with Neighbours(u).
func (g *Graph) OutEdges(u uint32) []uint32 {
	start, end := g.edgeRange(u)
	out := make([]uint32, end-start)
	for i := range out {
		out[i] = start + uint32(i)
	}
	return out
}

// Src returns the source node index of half-edge e, via binary search over
// offsets (mirrors the teacher's findCSRSource in pkg/routing/unpack.go).
func (g *Graph) Src(e uint32) uint32 {
	n := g.NodeCount()
	lo, hi := uint32(0), n
	for lo < hi {
		mid := (lo + hi) / 2
		if g.offsets[mid+1] <= e {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// Dst returns the destination node index of half-edge e.
func (g *Graph) Dst(e uint32) uint32 { return g.dest[e] }

// EdgeWeight returns the weight of half-edge e.
func (g *Graph) EdgeWeight(e uint32) float64 { return g.weight[e] }

// EdgeTypeAt returns the type tag of half-edge e directly, without the
// binary search EdgeType(u,v) performs — the form the preprocessor uses
// while it is already iterating OutEdges(u).
func (g *Graph) EdgeTypeAt(e uint32) int32 { return g.edgeType[e] }

// findHalfEdge returns the index of the half-edge from u to v via binary
// search over the sorted destination slice, and whether it was found.
func (g *Graph) findHalfEdge(u, v uint32) (idx uint32, ok bool) {
	start, end := g.edgeRange(u)
	nbrs := g.dest[start:end]
	i := sort.Search(len(nbrs), func(i int) bool { return nbrs[i] >= v })
	if i < len(nbrs) && nbrs[i] == v {
		return start + uint32(i), true
	}
	return 0, false
}

// HalfEdgeIndex returns the half-edge index of u->v, or ErrNoSuchEdge if
// absent. Exported for callers (package walk) that need the index itself
// rather than just existence or weight.
func (g *Graph) HalfEdgeIndex(u, v uint32) (uint32, error) {
	idx, ok := g.findHalfEdge(u, v)
	if !ok {
		return 0, fmt.Errorf("graph: halfEdgeIndex(%d,%d): %w", u, v, ErrNoSuchEdge)
	}
	return idx, nil
}

// HasEdge reports whether a half-edge u->v exists.
func (g *Graph) HasEdge(u, v uint32) bool {
	_, ok := g.findHalfEdge(u, v)
	return ok
}

// Weight returns the weight of half-edge u->v, or ErrNoSuchEdge if absent.
func (g *Graph) Weight(u, v uint32) (float64, error) {
	idx, ok := g.findHalfEdge(u, v)
	if !ok {
		return 0, fmt.Errorf("graph: weight(%d,%d): %w", u, v, ErrNoSuchEdge)
	}
	return g.weight[idx], nil
}

// EdgeType returns the type tag of half-edge u->v, or ErrNoSuchEdge if
// absent. Edges loaded without a type column have type 0.
func (g *Graph) EdgeType(u, v uint32) (int32, error) {
	idx, ok := g.findHalfEdge(u, v)
	if !ok {
		return 0, fmt.Errorf("graph: edgeType(%d,%d): %w", u, v, ErrNoSuchEdge)
	}
	return g.edgeType[idx], nil
}

// NodeType returns the type tag of node u, or NoType if none was loaded.
func (g *Graph) NodeType(u uint32) int32 {
	if g.nodeType == nil {
		return NoType
	}
	return g.nodeType[u]
}

// IndexOfLabel returns the stable index assigned to label s at load time.
func (g *Graph) IndexOfLabel(s string) (uint32, error) {
	idx, ok := g.labelIndex[s]
	if !ok {
		return 0, fmt.Errorf("graph: indexOfLabel(%q): %w", s, ErrUnknownLabel)
	}
	return idx, nil
}

// LabelOfIndex returns the original label for index u.
func (g *Graph) LabelOfIndex(u uint32) (string, error) {
	if u >= g.NodeCount() {
		return "", fmt.Errorf("graph: labelOfIndex(%d): %w", u, ErrIndexOutOfRange)
	}
	return g.labels[u], nil
}

// Nodes returns all node indices, 0..NodeCount()-1.
func (g *Graph) Nodes() []uint32 {
	n := g.NodeCount()
	out := make([]uint32, n)
	for i := range out {
		out[i] = uint32(i)
	}
	return out
}

// Edges returns all half-edge indices, 0..EdgeCount()-1.
func (g *Graph) Edges() []uint32 {
	m := g.EdgeCount()
	out := make([]uint32, m)
	for i := range out {
		out[i] = uint32(i)
	}
	return out
}
