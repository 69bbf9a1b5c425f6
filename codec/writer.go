package codec

import (
	"bytes"
	"encoding/binary"
	"io"
	"sort"

	"github.com/bsv-blockchain/go-bt/v2/chainhash"
	safeconversion "github.com/bsv-blockchain/go-safe-conversion"

	"github.com/bsv-blockchain/bestchain/errors"
	"github.com/bsv-blockchain/bestchain/services/chainselect"
)

// ChainRecordSize is the length of one output record: a 32-byte identity
// followed by a little-endian uint32 height.
const ChainRecordSize = chainhash.HashSize + 4

// WriteChain emits one record per header of the chain, heights counted from
// the root at 0, re-sorted by ascending identity bytes so consumers can
// binary-search identity -> height.
func WriteChain(w io.Writer, chain *chainselect.Chain) error {
	type chainRecord struct {
		hash   chainhash.Hash
		height uint32
	}

	records := make([]chainRecord, 0, chain.Length())

	for i, header := range chain.Headers() {
		height, err := safeconversion.IntToUint32(i)
		if err != nil {
			return errors.NewProcessingError("chain height overflows a record", err)
		}

		records = append(records, chainRecord{hash: *header.Hash(), height: height})
	}

	sort.Slice(records, func(i, j int) bool {
		return bytes.Compare(records[i].hash[:], records[j].hash[:]) < 0
	})

	buf := make([]byte, ChainRecordSize)

	for _, record := range records {
		copy(buf[:chainhash.HashSize], record.hash[:])
		binary.LittleEndian.PutUint32(buf[chainhash.HashSize:], record.height)

		if _, err := w.Write(buf); err != nil {
			return errors.NewStorageError("failed writing chain record", err)
		}
	}

	return nil
}
