package walk

import (
	"sync"
)

// Batch drives repeated SimulateWalks calls against a Ready preprocessor,
// with an opt-in memoisation cache keyed by (numWalks, length).
type Batch struct {
	tp   *TransitionPreprocessor
	seed int64

	mu    sync.Mutex
	cache map[batchKey][][]uint32
}

type batchKey struct {
	numWalks int
	length   int
}

// NewBatch returns a Batch over tp. seed is the run-level seed every
// per-node, per-epoch Walker stream is derived from.
func NewBatch(tp *TransitionPreprocessor, seed int64) *Batch {
	return &Batch{tp: tp, seed: seed, cache: make(map[batchKey][][]uint32)}
}

// SimulateWalks produces numWalks epochs, each a freshly shuffled
// permutation of every node, walking each to length length. The result is
// jagged: walks that reach a trap are shorter than length. When useCache
// is true and an identical (numWalks, length) call was already made, the
// cached corpus is returned without recomputation.
func (b *Batch) SimulateWalks(numWalks, length int, useCache bool) ([][]uint32, error) {
	if !b.tp.Ready() {
		return nil, ErrNotPreprocessed
	}

	key := batchKey{numWalks: numWalks, length: length}
	if useCache {
		b.mu.Lock()
		cached, ok := b.cache[key]
		b.mu.Unlock()
		if ok {
			return cached, nil
		}
	}

	n := int(b.tp.g.NodeCount())
	corpus := make([][]uint32, 0, numWalks*n)

	for epoch := 0; epoch < numWalks; epoch++ {
		epochRNG := deriveRNG(b.seed, uint64(epoch))
		order := shufflePermutation(n, epochRNG)

		for _, u := range order {
			stream := uint64(epoch)<<32 | uint64(u)
			walker, err := NewWalker(b.tp, b.seed, stream)
			if err != nil {
				return nil, err
			}
			w, err := walker.Walk(u, length)
			if err != nil {
				return nil, err
			}
			corpus = append(corpus, w)
		}
	}

	if useCache {
		b.mu.Lock()
		b.cache[key] = corpus
		b.mu.Unlock()
	}

	return corpus, nil
}
