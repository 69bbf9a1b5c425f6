// Package headermap holds the in-memory block header set for one run: every
// header read from the input, keyed by identity, iterated in a stable order.
package headermap

import (
	"bytes"
	"sort"

	"github.com/bsv-blockchain/go-bt/v2/chainhash"
	"github.com/dolthub/swiss"

	"github.com/bsv-blockchain/bestchain/model"
)

type entry struct {
	hash   chainhash.Hash
	header *model.BlockHeader
}

// Store maps header identity to header. Duplicate inserts overwrite silently;
// callers that need first-wins semantics must de-duplicate upstream. After
// Finalize the store is read-only and iterates in ascending identity order.
type Store struct {
	entries   []entry
	index     *swiss.Map[chainhash.Hash, int]
	finalized bool
}

// New creates a store sized for the expected number of headers. The swiss map
// uses a lot less memory than the standard map for hash keys.
func New(expected int) *Store {
	if expected <= 0 {
		expected = 1024
	}

	return &Store{
		entries: make([]entry, 0, expected),
		index:   swiss.NewMap[chainhash.Hash, int](uint32(expected)),
	}
}

// Insert adds the header under its identity, replacing any previous header
// with the same identity. Inserting after Finalize is a programming error.
func (s *Store) Insert(header *model.BlockHeader) {
	if s.finalized {
		panic("headermap: insert after finalize")
	}

	hash := *header.Hash()

	if i, ok := s.index.Get(hash); ok {
		s.entries[i] = entry{hash: hash, header: header}
		return
	}

	s.index.Put(hash, len(s.entries))
	s.entries = append(s.entries, entry{hash: hash, header: header})
}

// Get returns the header stored under hash, if any.
func (s *Store) Get(hash *chainhash.Hash) (*model.BlockHeader, bool) {
	i, ok := s.index.Get(*hash)
	if !ok {
		return nil, false
	}

	return s.entries[i].header, true
}

// Exists reports whether a header is stored under hash.
func (s *Store) Exists(hash *chainhash.Hash) bool {
	_, ok := s.index.Get(*hash)
	return ok
}

// Len returns the number of distinct headers in the store.
func (s *Store) Len() int {
	return len(s.entries)
}

// Finalize sorts the store by ascending identity bytes and freezes it. The
// sorted order is what pins down the selector's first-encountered tie-break.
func (s *Store) Finalize() {
	sort.Slice(s.entries, func(i, j int) bool {
		return bytes.Compare(s.entries[i].hash[:], s.entries[j].hash[:]) < 0
	})

	for i := range s.entries {
		s.index.Put(s.entries[i].hash, i)
	}

	s.finalized = true
}

// All returns every header in the store's stable order. Only meaningful after
// Finalize.
func (s *Store) All() []*model.BlockHeader {
	headers := make([]*model.BlockHeader, len(s.entries))
	for i := range s.entries {
		headers[i] = s.entries[i].header
	}

	return headers
}
