package model

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/bsv-blockchain/bestchain/errors"
	"github.com/bsv-blockchain/go-bc"
	"github.com/bsv-blockchain/go-bt/v2"
	"github.com/bsv-blockchain/go-bt/v2/chainhash"
)

// BlockHeaderSize is the length of a serialized block header in bytes.
const BlockHeaderSize = 80

// BlockHeader is one 80-byte chain-link record. A header is immutable once
// parsed; its identity is the double-SHA256 of its serialized bytes.
type BlockHeader struct {
	// Version of the block.  This is not the same as the protocol version.
	Version uint32

	// Hash of the previous block header in the blockchain. A parent hash
	// that resolves to no known header marks this header as a chain root.
	HashPrevBlock *chainhash.Hash

	// Merkle tree reference to hash of all transactions for the block.
	HashMerkleRoot *chainhash.Hash

	// Time the block was created in unix time.
	Timestamp uint32

	// Difficulty target for the block.
	Bits NBit

	// Nonce used to generate the block.
	Nonce uint32

	hash *chainhash.Hash
}

// NewBlockHeaderFromBytes parses an exact 80-byte serialized header.
func NewBlockHeaderFromBytes(headerBytes []byte) (*BlockHeader, error) {
	if len(headerBytes) != BlockHeaderSize {
		return nil, errors.NewInvalidArgumentError("block header should be %d bytes long, got %d", BlockHeaderSize, len(headerBytes))
	}

	hashPrevBlock, err := chainhash.NewHash(headerBytes[4:36])
	if err != nil {
		return nil, errors.NewInvalidArgumentError("error creating previous block hash from bytes", err)
	}

	hashMerkleRoot, err := chainhash.NewHash(headerBytes[36:68])
	if err != nil {
		return nil, errors.NewInvalidArgumentError("error creating merkle root hash from bytes", err)
	}

	bits, err := NewNBitFromSlice(bt.ReverseBytes(headerBytes[72:76]))
	if err != nil {
		return nil, errors.NewInvalidArgumentError("error creating nBits from bytes", err)
	}

	return &BlockHeader{
		Version:        binary.LittleEndian.Uint32(headerBytes[:4]),
		HashPrevBlock:  hashPrevBlock,
		HashMerkleRoot: hashMerkleRoot,
		Timestamp:      binary.LittleEndian.Uint32(headerBytes[68:72]),
		Bits:           *bits,
		Nonce:          binary.LittleEndian.Uint32(headerBytes[76:]),
	}, nil
}

// NewBlockHeaderFromString parses a hex-encoded 80-byte header.
func NewBlockHeaderFromString(headerHex string) (*BlockHeader, error) {
	headerBytes, err := hex.DecodeString(headerHex)
	if err != nil {
		return nil, errors.NewInvalidArgumentError("error decoding hex string to bytes", err)
	}

	return NewBlockHeaderFromBytes(headerBytes)
}

// Hash returns the header's identity, calculating it on first use.
func (bh *BlockHeader) Hash() *chainhash.Hash {
	if bh.hash != nil {
		return bh.hash
	}

	hash := chainhash.DoubleHashH(bh.Bytes())
	bh.hash = &hash

	return bh.hash
}

// Work returns the raw nBits field as an unsigned 32-bit weight, exactly as
// it appears on the wire. Chain selection sums these values verbatim; no
// expansion into a difficulty target is performed.
func (bh *BlockHeader) Work() uint32 {
	return binary.BigEndian.Uint32(bh.Bits[:])
}

// Bytes serializes the header back into its 80-byte wire form.
func (bh *BlockHeader) Bytes() []byte {
	blockHeaderBytes := make([]byte, 0, BlockHeaderSize)
	blockHeaderBytes = append(blockHeaderBytes, bc.UInt32ToBytes(bh.Version)...)
	blockHeaderBytes = append(blockHeaderBytes, bh.HashPrevBlock.CloneBytes()...)
	blockHeaderBytes = append(blockHeaderBytes, bh.HashMerkleRoot.CloneBytes()...)
	blockHeaderBytes = append(blockHeaderBytes, bc.UInt32ToBytes(bh.Timestamp)...)
	blockHeaderBytes = append(blockHeaderBytes, bt.ReverseBytes(bh.Bits[:])...)
	blockHeaderBytes = append(blockHeaderBytes, bc.UInt32ToBytes(bh.Nonce)...)

	return blockHeaderBytes
}

func (bh *BlockHeader) String() string {
	return bh.Hash().String()
}
