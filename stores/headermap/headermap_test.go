package headermap

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/bsv-blockchain/go-bt/v2/chainhash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bsv-blockchain/bestchain/model"
)

func newHeader(t *testing.T, prev *chainhash.Hash, work uint32, nonce uint32) *model.BlockHeader {
	t.Helper()

	var bits [4]byte
	binary.BigEndian.PutUint32(bits[:], work)

	nb, err := model.NewNBitFromSlice(bits[:])
	require.NoError(t, err)

	merkleRoot := chainhash.DoubleHashH(binary.LittleEndian.AppendUint32(nil, nonce))

	return &model.BlockHeader{
		Version:        1,
		HashPrevBlock:  prev,
		HashMerkleRoot: &merkleRoot,
		Timestamp:      1231006505,
		Bits:           *nb,
		Nonce:          nonce,
	}
}

func TestStoreInsertGet(t *testing.T) {
	store := New(4)

	header := newHeader(t, &chainhash.Hash{}, 10, 1)
	store.Insert(header)

	require.Equal(t, 1, store.Len())

	got, ok := store.Get(header.Hash())
	require.True(t, ok)
	assert.Same(t, header, got)

	assert.True(t, store.Exists(header.Hash()))

	missing := chainhash.DoubleHashH([]byte("missing"))
	_, ok = store.Get(&missing)
	assert.False(t, ok)
	assert.False(t, store.Exists(&missing))
}

func TestStoreDuplicateInsertLastWins(t *testing.T) {
	store := New(4)

	// two distinct parses of the same record share an identity
	first := newHeader(t, &chainhash.Hash{}, 10, 1)

	second, err := model.NewBlockHeaderFromBytes(first.Bytes())
	require.NoError(t, err)
	require.Equal(t, first.Hash(), second.Hash())

	store.Insert(first)
	store.Insert(second)

	require.Equal(t, 1, store.Len())

	got, ok := store.Get(first.Hash())
	require.True(t, ok)
	assert.Same(t, second, got)
}

func TestStoreFinalize(t *testing.T) {
	store := New(16)

	for nonce := uint32(0); nonce < 16; nonce++ {
		store.Insert(newHeader(t, &chainhash.Hash{}, 10, nonce))
	}

	store.Finalize()

	headers := store.All()
	require.Len(t, headers, 16)

	for i := 1; i < len(headers); i++ {
		prev := headers[i-1].Hash()
		curr := headers[i].Hash()
		assert.Negative(t, bytes.Compare(prev[:], curr[:]), "store order must be ascending identity bytes")
	}

	// lookups still resolve after the sort
	for _, header := range headers {
		got, ok := store.Get(header.Hash())
		require.True(t, ok)
		assert.Same(t, header, got)
	}

	assert.Panics(t, func() {
		store.Insert(newHeader(t, &chainhash.Hash{}, 10, 99))
	})
}
