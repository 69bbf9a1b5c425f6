// Package codec keeps the fixed-layout record encoding at the edges of the
// pipeline so the selection code never touches raw byte offsets.
package codec

import (
	"bufio"
	"io"

	"github.com/bsv-blockchain/bestchain/errors"
	"github.com/bsv-blockchain/bestchain/model"
	"github.com/bsv-blockchain/bestchain/stores/headermap"
)

// HeaderReader decodes consecutive 80-byte header records from a stream.
type HeaderReader struct {
	r   *bufio.Reader
	buf [model.BlockHeaderSize]byte
}

func NewHeaderReader(r io.Reader) *HeaderReader {
	return &HeaderReader{
		r: bufio.NewReaderSize(r, 1024*model.BlockHeaderSize),
	}
}

// Next returns the next header, or io.EOF when the stream is exhausted. A
// trailing record shorter than 80 bytes is treated as end of stream, not an
// error.
func (hr *HeaderReader) Next() (*model.BlockHeader, error) {
	if _, err := io.ReadFull(hr.r, hr.buf[:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, io.EOF
		}

		return nil, errors.NewProcessingError("failed reading header record", err)
	}

	return model.NewBlockHeaderFromBytes(hr.buf[:])
}

// ReadAll inserts every remaining header into the store and returns the
// number of records read.
func (hr *HeaderReader) ReadAll(store *headermap.Store) (int, error) {
	read := 0

	for {
		header, err := hr.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return read, nil
			}

			return read, err
		}

		store.Insert(header)
		read++
	}
}
