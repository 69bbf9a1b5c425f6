package codec

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/bsv-blockchain/go-bt/v2/chainhash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bsv-blockchain/bestchain/model"
	"github.com/bsv-blockchain/bestchain/services/chainselect"
	"github.com/bsv-blockchain/bestchain/stores/headermap"
	"github.com/bsv-blockchain/bestchain/ulogger"
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

func TestHeaderReader(t *testing.T) {
	t.Run("reads consecutive records", func(t *testing.T) {
		a := newHeader(t, &chainhash.Hash{}, 1, 1)
		b := newHeader(t, a.Hash(), 1, 2)

		var stream bytes.Buffer
		stream.Write(a.Bytes())
		stream.Write(b.Bytes())

		store := headermap.New(2)

		read, err := NewHeaderReader(&stream).ReadAll(store)
		require.NoError(t, err)
		assert.Equal(t, 2, read)
		assert.Equal(t, 2, store.Len())

		got, ok := store.Get(a.Hash())
		require.True(t, ok)
		assert.Equal(t, a.Bytes(), got.Bytes())
	})

	t.Run("truncated trailing record is dropped silently", func(t *testing.T) {
		a := newHeader(t, &chainhash.Hash{}, 1, 1)

		var stream bytes.Buffer
		stream.Write(a.Bytes())
		stream.Write(a.Bytes()[:41]) // partial record at end of stream

		store := headermap.New(2)

		read, err := NewHeaderReader(&stream).ReadAll(store)
		require.NoError(t, err)
		assert.Equal(t, 1, read)
		assert.Equal(t, 1, store.Len())
	})

	t.Run("empty stream reads nothing", func(t *testing.T) {
		store := headermap.New(1)

		read, err := NewHeaderReader(bytes.NewReader(nil)).ReadAll(store)
		require.NoError(t, err)
		assert.Zero(t, read)
		assert.Zero(t, store.Len())
	})
}

func TestWriteChain(t *testing.T) {
	a := newHeader(t, &chainhash.Hash{}, 1, 1)
	b := newHeader(t, a.Hash(), 1, 2)
	c := newHeader(t, b.Hash(), 1, 3)

	store := headermap.New(3)
	for _, header := range []*model.BlockHeader{a, b, c} {
		store.Insert(header)
	}
	store.Finalize()

	best, err := chainselect.FindBest(ulogger.TestLogger{}, store)
	require.NoError(t, err)
	require.Equal(t, 3, best.Length())

	var out bytes.Buffer
	require.NoError(t, WriteChain(&out, best))
	require.Equal(t, 3*ChainRecordSize, out.Len())

	// decode the records back into identity -> height
	heights := map[chainhash.Hash]uint32{}

	var prevHash *chainhash.Hash

	raw := out.Bytes()
	for i := 0; i < len(raw); i += ChainRecordSize {
		record := raw[i : i+ChainRecordSize]

		hash, err := chainhash.NewHash(record[:chainhash.HashSize])
		require.NoError(t, err)

		if prevHash != nil {
			assert.Negative(t, bytes.Compare(prevHash[:], hash[:]), "records must be sorted by identity")
		}
		prevHash = hash

		heights[*hash] = binary.LittleEndian.Uint32(record[chainhash.HashSize:])
	}

	require.Len(t, heights, 3)
	assert.Equal(t, uint32(0), heights[*a.Hash()])
	assert.Equal(t, uint32(1), heights[*b.Hash()])
	assert.Equal(t, uint32(2), heights[*c.Hash()])
}

// end-to-end: raw records in, best chain records out
func TestPipeline(t *testing.T) {
	a := newHeader(t, &chainhash.Hash{}, 10, 1)
	b := newHeader(t, a.Hash(), 5, 2)
	c := newHeader(t, a.Hash(), 20, 3)

	var stream bytes.Buffer
	for _, header := range []*model.BlockHeader{a, b, c} {
		stream.Write(header.Bytes())
	}
	stream.Write([]byte{0xde, 0xad}) // trailing garbage, short of a record

	store := headermap.New(4)

	read, err := NewHeaderReader(&stream).ReadAll(store)
	require.NoError(t, err)
	require.Equal(t, 3, read)

	store.Finalize()

	tips := chainselect.FindChainTips(store)
	assert.Len(t, tips, 2)

	best, err := chainselect.FindBest(ulogger.TestLogger{}, store)
	require.NoError(t, err)
	assert.Equal(t, uint64(30), best.TotalWork())

	var out bytes.Buffer
	require.NoError(t, WriteChain(&out, best))
	assert.Equal(t, 2*ChainRecordSize, out.Len())
}
