package graph

import (
	gonumgraph "gonum.org/v1/gonum/graph"
)

// gonumNode adapts a node index to gonum's graph.Node interface.
type gonumNode uint32

func (n gonumNode) ID() int64 { return int64(n) }

// gonumEdge adapts a half-edge to gonum's graph.WeightedEdge interface.
type gonumEdge struct {
	from, to uint32
	weight   float64
}

func (e gonumEdge) From() gonumgraph.Node         { return gonumNode(e.from) }
func (e gonumEdge) To() gonumgraph.Node           { return gonumNode(e.to) }
func (e gonumEdge) ReversedEdge() gonumgraph.Edge { return gonumEdge{e.to, e.from, e.weight} }
func (e gonumEdge) Weight() float64               { return e.weight }

// AsGonumDirected returns a zero-copy view of g satisfying gonum's
// graph.Directed. The edges it hands out are graph.WeightedEdge values;
// the view itself does not implement graph.Weighted. Downstream
// consumers — e.g. a link-prediction collaborator — can run
// gonum/graph/{path,network,community} algorithms against the same CSR
// storage the walk engine uses, without building a second copy of the
// graph (see raymond-w-ko-beads_viewer's pkg/analysis, which instead
// copies into a gonum/graph/simple.DirectedGraph before running
// network.Betweenness).
func (g *Graph) AsGonumDirected() gonumgraph.Directed {
	return gonumDirected{g}
}

type gonumDirected struct{ g *Graph }

func (d gonumDirected) Node(id int64) gonumgraph.Node {
	if id < 0 || id >= int64(d.g.NodeCount()) {
		return nil
	}
	return gonumNode(id)
}

func (d gonumDirected) Nodes() gonumgraph.Nodes {
	n := d.g.NodeCount()
	nodes := make([]gonumgraph.Node, n)
	for i := range nodes {
		nodes[i] = gonumNode(uint32(i))
	}
	return &sliceNodes{nodes: nodes, idx: -1}
}

func (d gonumDirected) From(id int64) gonumgraph.Nodes {
	nbrs := d.g.Neighbours(uint32(id))
	nodes := make([]gonumgraph.Node, len(nbrs))
	for i, v := range nbrs {
		nodes[i] = gonumNode(v)
	}
	return &sliceNodes{nodes: nodes, idx: -1}
}

func (d gonumDirected) HasEdgeBetween(xid, yid int64) bool {
	return d.g.HasEdge(uint32(xid), uint32(yid)) || d.g.HasEdge(uint32(yid), uint32(xid))
}

func (d gonumDirected) Edge(uid, vid int64) gonumgraph.Edge {
	return d.WeightedEdge(uid, vid)
}

func (d gonumDirected) WeightedEdge(uid, vid int64) gonumgraph.WeightedEdge {
	w, err := d.g.Weight(uint32(uid), uint32(vid))
	if err != nil {
		return nil
	}
	return gonumEdge{from: uint32(uid), to: uint32(vid), weight: w}
}

func (d gonumDirected) HasEdgeFromTo(uid, vid int64) bool {
	return d.g.HasEdge(uint32(uid), uint32(vid))
}

func (d gonumDirected) To(id int64) gonumgraph.Nodes {
	// The CSR store is forward-only; a reverse lookup requires a scan.
	// Link-prediction/analysis callers needing frequent reverse traversal
	// should build their own index — this exists for interface
	// completeness and occasional use, not the walk engine's hot path.
	n := d.g.NodeCount()
	var nodes []gonumgraph.Node
	for u := uint32(0); u < n; u++ {
		if d.g.HasEdge(u, uint32(id)) {
			nodes = append(nodes, gonumNode(u))
		}
	}
	return &sliceNodes{nodes: nodes, idx: -1}
}

// sliceNodes implements gonum's graph.Nodes iterator over a fixed slice.
type sliceNodes struct {
	nodes []gonumgraph.Node
	idx   int
}

func (s *sliceNodes) Len() int { return len(s.nodes) - (s.idx + 1) }

func (s *sliceNodes) Next() bool {
	if s.idx+1 >= len(s.nodes) {
		return false
	}
	s.idx++
	return true
}

func (s *sliceNodes) Node() gonumgraph.Node { return s.nodes[s.idx] }

func (s *sliceNodes) Reset() { s.idx = -1 }
