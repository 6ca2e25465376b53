package walk

import (
	"math/rand"

	"github.com/azybler/xn2vwalk/pkg/graph"
)

// Walker draws walks against a Ready TransitionPreprocessor. Each Walker
// owns its own *rand.Rand; it is not safe for concurrent use by multiple
// goroutines, but distinct Walkers over the same preprocessor are.
type Walker struct {
	g   *graph.Graph
	tp  *TransitionPreprocessor
	rng *rand.Rand
}

// NewWalker returns a Walker over tp, seeded deterministically by mixing
// seed with stream — callers typically derive stream from the starting
// node and epoch so that repeated runs reproduce identical walks.
func NewWalker(tp *TransitionPreprocessor, seed int64, stream uint64) (*Walker, error) {
	if !tp.Ready() {
		return nil, ErrNotPreprocessed
	}
	return &Walker{g: tp.g, tp: tp, rng: deriveRNG(seed, stream)}, nil
}

// Walk returns a walk of up to L node indices starting at start. A trap
// (degree-0 node) reached mid-walk ends it early; Walker never returns an
// error for this, only a shorter sequence.
func (w *Walker) Walk(start uint32, length int) ([]uint32, error) {
	if !w.tp.Ready() {
		return nil, ErrNotPreprocessed
	}
	if length <= 0 {
		return nil, nil
	}

	walk := make([]uint32, 0, length)
	walk = append(walk, start)

	for len(walk) < length {
		cur := walk[len(walk)-1]
		if w.g.IsTrap(cur) {
			break
		}

		nbrs := w.g.Neighbours(cur)

		var i int
		if len(walk) == 1 {
			i = w.tp.nodeAlias[cur].Sample(w.rng)
		} else {
			prev := walk[len(walk)-2]
			e, err := w.g.HalfEdgeIndex(prev, cur)
			if err != nil {
				return nil, err
			}
			i = w.tp.edgeAlias[e].Sample(w.rng)
		}
		walk = append(walk, nbrs[i])
	}

	return walk, nil
}
