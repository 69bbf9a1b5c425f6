package errors

var (
	ErrUnknown         = New(ERR_UNKNOWN, "unknown error")
	ErrInvalidArgument = New(ERR_INVALID_ARGUMENT, "invalid argument")
	ErrNotFound        = New(ERR_NOT_FOUND, "not found")
	ErrProcessing      = New(ERR_PROCESSING, "error processing")
	ErrConfiguration   = New(ERR_CONFIGURATION, "configuration error")
	ErrBlockNotFound   = New(ERR_BLOCK_NOT_FOUND, "block not found")
	ErrBlockInvalid    = New(ERR_BLOCK_INVALID, "block invalid")
	ErrBlockError      = New(ERR_BLOCK_ERROR, "block error")
	ErrStorageError    = New(ERR_STORAGE_ERROR, "storage error")
)

// errors initialization functions

func NewUnknownError(message string, params ...interface{}) error {
	return New(ERR_UNKNOWN, message, params...)
}

func NewInvalidArgumentError(message string, params ...interface{}) error {
	return New(ERR_INVALID_ARGUMENT, message, params...)
}

func NewNotFoundError(message string, params ...interface{}) error {
	return New(ERR_NOT_FOUND, message, params...)
}

func NewProcessingError(message string, params ...interface{}) error {
	return New(ERR_PROCESSING, message, params...)
}

func NewConfigurationError(message string, params ...interface{}) error {
	return New(ERR_CONFIGURATION, message, params...)
}

func NewBlockNotFoundError(message string, params ...interface{}) error {
	return New(ERR_BLOCK_NOT_FOUND, message, params...)
}

func NewBlockInvalidError(message string, params ...interface{}) error {
	return New(ERR_BLOCK_INVALID, message, params...)
}

func NewBlockError(message string, params ...interface{}) error {
	return New(ERR_BLOCK_ERROR, message, params...)
}

func NewStorageError(message string, params ...interface{}) error {
	return New(ERR_STORAGE_ERROR, message, params...)
}
