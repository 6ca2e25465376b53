// Package walk computes node2vec/xn2v second-order transition tables over a
// graph.Graph and draws biased random walks from them.
package walk

import (
	"context"
	"fmt"
	"log"
	"math"
	"runtime"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/semaphore"

	"github.com/azybler/xn2vwalk/pkg/alias"
	"github.com/azybler/xn2vwalk/pkg/graph"
)

// progressEvery bounds how often Build logs construction progress, so a
// preprocessor over a graph with millions of half-edges doesn't flood
// stderr with one line per item.
const progressEvery = 100000

type state int32

const (
	stateUnbuilt state = iota
	stateBuilding
	stateReady
	stateFailed
)

// TransitionPreprocessor computes node2vec/xn2v alias tables for a Graph.
// It is single-shot: Build moves it Unbuilt -> Building -> Ready|Failed.
// Once Ready, every exported accessor is a lock-free read against
// preallocated, immutable arrays.
type TransitionPreprocessor struct {
	g      *graph.Graph
	params Params

	state atomic.Int32

	nodeAlias []alias.Table // len N; zero Table for trap nodes
	edgeAlias []alias.Table // len M
}

// New returns a preprocessor over g with the given bias parameters. Build
// must be called before Walker.Walk or Batch.SimulateWalks.
func New(g *graph.Graph, params Params) *TransitionPreprocessor {
	return &TransitionPreprocessor{g: g, params: params}
}

// scratchPool holds reusable []float64 score buffers with capacity 64,
// avoiding a per-node/per-edge allocation during Build for degrees up to
// that size; larger degrees grow the buffer by append.
var scratchPool = sync.Pool{
	New: func() any { return make([]float64, 0, 64) },
}

// Build computes nodeAlias and edgeAlias in parallel, bounding concurrency
// to concurrency goroutines (runtime.NumCPU() if <= 0). It returns
// ErrInvalidParams if the bias parameters are non-positive, and
// ErrDegenerateDistribution if a non-trap node's or edge's neighbour
// scores sum to (numerically) zero.
func (tp *TransitionPreprocessor) Build(ctx context.Context, concurrency int) error {
	if !tp.state.CompareAndSwap(int32(stateUnbuilt), int32(stateBuilding)) {
		return fmt.Errorf("walk: Build called twice")
	}
	if err := tp.params.validate(); err != nil {
		tp.state.Store(int32(stateFailed))
		return err
	}
	if concurrency <= 0 {
		concurrency = runtime.NumCPU()
	}

	n := tp.g.NodeCount()
	m := tp.g.EdgeCount()
	tp.nodeAlias = make([]alias.Table, n)
	tp.edgeAlias = make([]alias.Table, m)

	sem := semaphore.NewWeighted(int64(concurrency))
	var wg sync.WaitGroup
	var firstErr atomic.Value // error
	var done atomic.Int64

	fail := func(err error) {
		firstErr.CompareAndSwap(nil, err)
	}

	if n > progressEvery {
		log.Printf("walk: building node-alias tables (%d nodes)...", n)
	}
	for u := uint32(0); u < n; u++ {
		if err := sem.Acquire(ctx, 1); err != nil {
			fail(err)
			break
		}
		wg.Add(1)
		go func(u uint32) {
			defer wg.Done()
			defer sem.Release(1)
			if err := tp.buildNodeAlias(u); err != nil {
				fail(err)
				return
			}
			if c := done.Add(1); c%progressEvery == 0 {
				log.Printf("walk: node-alias %d/%d", c, n)
			}
		}(u)
	}
	wg.Wait()

	if err, _ := firstErr.Load().(error); err == nil {
		done.Store(0)
		if m > progressEvery {
			log.Printf("walk: building edge-alias tables (%d half-edges)...", m)
		}
		for e := uint32(0); e < m; e++ {
			if err := sem.Acquire(ctx, 1); err != nil {
				fail(err)
				break
			}
			wg.Add(1)
			go func(e uint32) {
				defer wg.Done()
				defer sem.Release(1)
				if err := tp.buildEdgeAlias(e); err != nil {
					fail(err)
					return
				}
				if c := done.Add(1); c%progressEvery == 0 {
					log.Printf("walk: edge-alias %d/%d", c, m)
				}
			}(e)
		}
		wg.Wait()
	}

	if err, ok := firstErr.Load().(error); ok && err != nil {
		tp.state.Store(int32(stateFailed))
		return err
	}
	tp.state.Store(int32(stateReady))
	return nil
}

// Ready reports whether Build completed successfully.
func (tp *TransitionPreprocessor) Ready() bool {
	return state(tp.state.Load()) == stateReady
}

func (tp *TransitionPreprocessor) buildNodeAlias(u uint32) error {
	if tp.g.IsTrap(u) {
		return nil
	}
	outEdges := tp.g.OutEdges(u)
	scratch := scratchPool.Get().([]float64)[:0]
	defer scratchPool.Put(scratch) //nolint:staticcheck // buffer reused, not retained

	sum := 0.0
	for _, e := range outEdges {
		w := tp.g.EdgeWeight(e)
		scratch = append(scratch, w)
		sum += w
	}
	p, err := normalise(scratch, sum, u)
	if err != nil {
		return err
	}
	tp.nodeAlias[u] = alias.Build(p)
	return nil
}

func (tp *TransitionPreprocessor) buildEdgeAlias(e uint32) error {
	src := tp.g.Src(e)
	dst := tp.g.Dst(e)

	if tp.g.IsTrap(dst) {
		return nil
	}

	nbrs := tp.g.Neighbours(dst)
	outEdges := tp.g.OutEdges(dst)

	scratch := scratchPool.Get().([]float64)[:0]
	defer scratchPool.Put(scratch) //nolint:staticcheck

	var typeProb map[int32]float64
	if tp.params.Mode == Heterogeneous {
		typeProb = tp.heterogeneousTypeMass(dst, src, outEdges)
	}

	sum := 0.0
	for i, dstNbr := range nbrs {
		w := tp.g.EdgeWeight(outEdges[i])
		b := node2vecBias(dstNbr, src, dst, tp.g, tp.params)
		s := w * b
		if typeProb != nil {
			tNbr := tp.g.EdgeTypeAt(outEdges[i])
			s *= typeProb[tNbr]
		}
		scratch = append(scratch, s)
		sum += s
	}

	p, err := normalise(scratch, sum, dst)
	if err != nil {
		return err
	}
	tp.edgeAlias[e] = alias.Build(p)
	return nil
}

// node2vecBias returns the second-order factor for a candidate neighbour
// dstNbr of dst, given the walk arrived at dst from src.
func node2vecBias(dstNbr, src, dst uint32, g *graph.Graph, params Params) float64 {
	switch {
	case dstNbr == src:
		return 1.0 / params.P
	case g.HasEdge(dstNbr, src):
		return 1.0
	default:
		return 1.0 / params.Q
	}
}

// heterogeneousTypeMass computes P(t) for every edge type reachable from
// dst, biasing away from t_ref (the type of the edge just traversed,
// src->dst) by Gamma.
func (tp *TransitionPreprocessor) heterogeneousTypeMass(dst, src uint32, outEdges []uint32) map[int32]float64 {
	tRef, err := tp.g.EdgeType(src, dst)
	if err != nil {
		tRef = graph.NoType
	}

	counts := make(map[int32]int)
	for _, e := range outEdges {
		counts[tp.g.EdgeTypeAt(e)]++
	}
	k := len(counts)

	mass := make(map[int32]float64, k)
	r := 0.0
	for t, c := range counts {
		if t == tRef {
			continue
		}
		pt := tp.params.Gamma / (float64(c) * float64(k))
		mass[t] = pt
		r += pt
	}

	if cRef, ok := counts[tRef]; ok {
		if cRef == 0 {
			mass[tRef] = 0
		} else {
			mass[tRef] = (1 - r) / float64(cRef)
		}
	}

	return mass
}

// normalise turns raw non-negative scores into a probability vector
// summing to 1, returning ErrDegenerateDistribution if sum is (numerically)
// zero or any entry is negative beyond floating-point tolerance.
func normalise(scores []float64, sum float64, node uint32) ([]float64, error) {
	const tol = -1e-9
	if sum <= 0 || math.IsNaN(sum) {
		return nil, fmt.Errorf("walk: node %d: %w", node, ErrDegenerateDistribution)
	}
	p := make([]float64, len(scores))
	for i, s := range scores {
		if s < tol {
			return nil, fmt.Errorf("walk: node %d: negative score %v: %w", node, s, ErrDegenerateDistribution)
		}
		if s < 0 {
			s = 0
		}
		p[i] = s / sum
	}
	return p, nil
}
