// Package chainselect implements best-chain selection over a forest of block
// headers: tip discovery, memoized cumulative-work accumulation, and
// materialization of the heaviest root-to-tip path.
package chainselect

import (
	"github.com/bsv-blockchain/bestchain/model"
)

// Chain is an ordered root-to-tip sequence of headers. Each non-root
// element's HashPrevBlock equals the identity of the element before it; the
// root's parent is not present in the store the chain was selected from.
type Chain struct {
	headers []*model.BlockHeader
}

// Headers returns the chain root first, tip last.
func (c *Chain) Headers() []*model.BlockHeader {
	return c.headers
}

// Genesis returns the root of the chain.
func (c *Chain) Genesis() *model.BlockHeader {
	return c.headers[0]
}

// Tip returns the last header of the chain.
func (c *Chain) Tip() *model.BlockHeader {
	return c.headers[len(c.headers)-1]
}

// Length returns the number of headers in the chain.
func (c *Chain) Length() int {
	return len(c.headers)
}

// Height is the tip's height with the root at height 0.
func (c *Chain) Height() uint32 {
	return uint32(len(c.headers) - 1)
}

// TotalWork sums the raw header weights along the chain.
func (c *Chain) TotalWork() uint64 {
	var total uint64
	for _, header := range c.headers {
		total += uint64(header.Work())
	}

	return total
}
