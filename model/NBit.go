package model

import (
	"encoding/hex"
	"math/big"

	"github.com/bsv-blockchain/bestchain/errors"
)

// NBit is the compact difficulty encoding carried in a block header, held in
// big-endian display order (the order difficulty is written in hex, e.g.
// "207fffff").
type NBit [4]byte

// genesisTarget is the target for difficulty 1 (nBits 1d00ffff), used as the
// numerator when calculating a human-readable difficulty.
var genesisTarget = new(big.Int).Lsh(big.NewInt(0xffff), 208)

// NewNBitFromSlice creates an NBit from a 4-byte big-endian slice.
func NewNBitFromSlice(b []byte) (*NBit, error) {
	if len(b) != 4 {
		return nil, errors.NewInvalidArgumentError("nBits should be 4 bytes long, got %d", len(b))
	}

	var nb NBit
	copy(nb[:], b)

	return &nb, nil
}

// NewNBitFromString creates an NBit from its hex representation.
func NewNBitFromString(s string) (*NBit, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.NewInvalidArgumentError("error decoding nBits hex string", err)
	}

	return NewNBitFromSlice(b)
}

func (nb NBit) String() string {
	return hex.EncodeToString(nb[:])
}

// CloneBytes returns a copy of the nBits bytes in big-endian order.
func (nb NBit) CloneBytes() []byte {
	b := make([]byte, 4)
	copy(b, nb[:])

	return b
}

// CalculateTarget expands the compact encoding into the full 256-bit target.
// The top byte is the exponent, the remaining three bytes the mantissa.
func (nb NBit) CalculateTarget() *big.Int {
	exponent := uint(nb[0])
	mantissa := int64(nb[1])<<16 | int64(nb[2])<<8 | int64(nb[3])

	if exponent <= 3 {
		mantissa >>= 8 * (3 - exponent)
		return big.NewInt(mantissa)
	}

	target := big.NewInt(mantissa)
	target.Lsh(target, 8*(exponent-3))

	return target
}

// CalculateDifficulty returns the difficulty relative to the difficulty-1
// target. Diagnostic only; chain selection never expands targets.
func (nb NBit) CalculateDifficulty() *big.Float {
	target := nb.CalculateTarget()

	return new(big.Float).Quo(
		new(big.Float).SetInt(genesisTarget),
		new(big.Float).SetInt(target),
	)
}
