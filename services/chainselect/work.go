package chainselect

import (
	"github.com/bsv-blockchain/go-bt/v2/chainhash"
	"github.com/dolthub/swiss"

	"github.com/bsv-blockchain/bestchain/errors"
	"github.com/bsv-blockchain/bestchain/model"
	"github.com/bsv-blockchain/bestchain/stores/headermap"
)

// WorkCache memoizes identity -> cumulative work from root, inclusive. It
// only grows; a value is written once per identity and never changes within
// a run.
type WorkCache struct {
	m *swiss.Map[chainhash.Hash, uint64]
}

func NewWorkCache(expected int) *WorkCache {
	if expected <= 0 {
		expected = 1024
	}

	return &WorkCache{
		m: swiss.NewMap[chainhash.Hash, uint64](uint32(expected)),
	}
}

// Get returns the memoized cumulative work for hash, if computed.
func (c *WorkCache) Get(hash *chainhash.Hash) (uint64, bool) {
	return c.m.Get(*hash)
}

func (c *WorkCache) put(hash *chainhash.Hash, total uint64) {
	c.m.Put(*hash, total)
}

// DetermineWork walks the ancestry of source through the store, summing raw
// header weights until a root is reached or a memoized ancestor total can be
// added instead. A memo hit is sound because the cached value under a hash
// is always that header's own total work from root.
//
// The walk is capped at store.Len() parent hops: a longer walk can only mean
// the parent links form a cycle, which is reported as an invalid block
// rather than looping forever.
func DetermineWork(cache *WorkCache, store *headermap.Store, source *model.BlockHeader) (uint64, error) {
	visitor := source
	totalWork := uint64(source.Work())

	for steps := 0; ; steps++ {
		if steps >= store.Len() {
			return 0, errors.NewBlockInvalidError("ancestry of block %s does not terminate, cycle in parent links", source.Hash())
		}

		prevHeader, ok := store.Get(visitor.HashPrevBlock)
		if !ok {
			// reached a root
			break
		}

		if cached, ok := cache.Get(visitor.HashPrevBlock); ok {
			totalWork += cached
			break
		}

		visitor = prevHeader
		totalWork += uint64(prevHeader.Work())
	}

	return totalWork, nil
}
