package chainselect

import (
	"github.com/ordishs/gocore"

	"github.com/bsv-blockchain/bestchain/errors"
	"github.com/bsv-blockchain/bestchain/model"
	"github.com/bsv-blockchain/bestchain/stores/headermap"
	"github.com/bsv-blockchain/bestchain/ulogger"
)

// FindBest evaluates every header in the store as a candidate tip and
// returns the root-to-tip chain with the greatest accumulated work.
//
// Tie-break policy: a candidate replaces the current winner only with
// strictly greater work, so on equal work the header encountered first in
// store order wins. Store order is ascending identity bytes (see
// headermap.Finalize), which makes the policy deterministic for a given
// input set.
func FindBest(logger ulogger.Logger, store *headermap.Store) (*Chain, error) {
	start := gocore.CurrentTime()
	defer func() {
		gocore.NewStat("chainselect").NewStat("FindBest").AddTime(start)
	}()

	if store.Len() == 0 {
		return nil, errors.NewInvalidArgumentError("cannot select a best chain from an empty store")
	}

	cache := NewWorkCache(store.Len())

	var (
		bestHeader *model.BlockHeader
		mostWork   uint64
	)

	for _, header := range store.All() {
		work, err := DetermineWork(cache, store, header)
		if err != nil {
			return nil, err
		}

		cache.put(header.Hash(), work)

		if bestHeader == nil || work > mostWork {
			bestHeader = header
			mostWork = work
		}
	}

	logger.Debugf("best candidate %s with %d accumulated work", bestHeader.Hash(), mostWork)

	// walk back from the winner to its root
	headers := []*model.BlockHeader{bestHeader}

	visitor := bestHeader
	for {
		prevHeader, ok := store.Get(visitor.HashPrevBlock)
		if !ok {
			break
		}

		visitor = prevHeader
		headers = append(headers, visitor)
	}

	// reverse into root-first order
	for i, j := 0, len(headers)-1; i < j; i, j = i+1, j-1 {
		headers[i], headers[j] = headers[j], headers[i]
	}

	return &Chain{headers: headers}, nil
}
