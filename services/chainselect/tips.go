package chainselect

import (
	"github.com/bsv-blockchain/go-bt/v2/chainhash"
	"github.com/dolthub/swiss"

	"github.com/bsv-blockchain/bestchain/model"
	"github.com/bsv-blockchain/bestchain/stores/headermap"
)

// FindChainTips returns every header that is not the parent of any other
// header in the store. A parent reference only counts when the parent itself
// is present, so a header whose parent is unknown can still be a tip.
//
// Tips are diagnostic: selection evaluates every header as a candidate
// rather than only the structural tips.
func FindChainTips(store *headermap.Store) []*model.BlockHeader {
	parents := swiss.NewMap[chainhash.Hash, struct{}](uint32(store.Len()))

	for _, header := range store.All() {
		if !store.Exists(header.HashPrevBlock) {
			continue
		}

		parents.Put(*header.HashPrevBlock, struct{}{})
	}

	var tips []*model.BlockHeader

	for _, header := range store.All() {
		if parents.Has(*header.Hash()) {
			continue
		}

		tips = append(tips, header)
	}

	return tips
}
