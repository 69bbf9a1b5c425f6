package ulogger

import (
	"io"
	"os"
)

type Options struct {
	writer     io.Writer
	loggerType string
	logLevel   string
	skip       int
}

type Option func(*Options)

// DefaultOptions writes to stderr: stdout is reserved for the data stream in
// the tools this package serves.
func DefaultOptions() *Options {
	return &Options{
		writer:     os.Stderr,
		loggerType: "zerolog",
		logLevel:   "INFO",
	}
}

func WithWriter(w io.Writer) Option {
	return func(o *Options) {
		o.writer = w
	}
}

func WithLoggerType(loggerType string) Option {
	return func(o *Options) {
		o.loggerType = loggerType
	}
}

func WithLevel(logLevel string) Option {
	return func(o *Options) {
		o.logLevel = logLevel
	}
}

func WithSkipFrame(skip int) Option {
	return func(o *Options) {
		o.skip = skip
	}
}
