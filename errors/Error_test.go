package errors

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("message formatting", func(t *testing.T) {
		err := NewBlockInvalidError("block %d is bad", 42)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "BLOCK_INVALID")
		assert.Contains(t, err.Error(), "block 42 is bad")
	})

	t.Run("final error param is wrapped", func(t *testing.T) {
		err := NewProcessingError("failed reading header record", io.ErrClosedPipe)
		require.Error(t, err)
		assert.Contains(t, err.Error(), io.ErrClosedPipe.Error())

		var e *Error
		require.True(t, As(err, &e))
		assert.Equal(t, ERR_PROCESSING, e.Code())
		assert.Equal(t, "failed reading header record", e.Message())
	})

	t.Run("invalid code", func(t *testing.T) {
		err := New(ERR(9999), "whatever")
		assert.Contains(t, err.Error(), "invalid error code")
	})
}

func TestIs(t *testing.T) {
	t.Run("codes match", func(t *testing.T) {
		err := NewInvalidArgumentError("cannot select a best chain from an empty store")
		assert.True(t, Is(err, ErrInvalidArgument))
		assert.False(t, Is(err, ErrBlockInvalid))
	})

	t.Run("wrapped codes match", func(t *testing.T) {
		inner := NewBlockNotFoundError("missing parent")
		outer := NewProcessingError("selection failed", inner)

		assert.True(t, Is(outer, ErrProcessing))
		assert.True(t, Is(outer, ErrBlockNotFound))
		assert.False(t, Is(outer, ErrStorageError))
	})
}

func TestUnwrap(t *testing.T) {
	inner := NewBlockInvalidError("cycle in parent links")
	outer := NewProcessingError("selection failed", inner)

	var e *Error
	require.True(t, As(outer, &e))
	assert.Equal(t, inner, Unwrap(e))
}

func TestERRString(t *testing.T) {
	assert.Equal(t, "BLOCK_INVALID", ERR_BLOCK_INVALID.String())
	assert.Equal(t, "ERR(9999)", ERR(9999).String())
}
