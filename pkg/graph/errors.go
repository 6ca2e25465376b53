package graph

import "errors"

// Sentinel errors returned by Graph's query accessors. Per spec these are
// programming errors at the boundary: callers branch on them with
// errors.Is, and the core never retries internally.
var (
	// ErrNoSuchEdge is returned by Weight/EdgeType when the requested
	// (u, v) pair is not an edge of the graph.
	ErrNoSuchEdge = errors.New("graph: no such edge")

	// ErrUnknownLabel is returned by IndexOfLabel when the label was
	// never seen at load time.
	ErrUnknownLabel = errors.New("graph: unknown label")

	// ErrIndexOutOfRange is returned by accessors given a node or edge
	// index outside the valid range established at load time.
	ErrIndexOutOfRange = errors.New("graph: index out of range")
)
