package network

import (
	"github.com/rs/zerolog"
)

// defaultChunkSize is the default per-poll read size. One frame plus
// its prefix fits comfortably, so a waiting full frame is usually
// pulled in a single poll.
const defaultChunkSize = 512

// options holds the configuration for a connection stream.
type options struct {
	logger    zerolog.Logger
	loggerSet bool
	chunkSize int
}

// Option is a function that configures connection-stream options.
type Option func(*options)

// LoggerOption returns an Option that sets the logger. If not set, a
// disabled logger is used.
func LoggerOption(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
		o.loggerSet = true
	}
}

// ChunkSizeOption returns an Option that sets how many bytes are pulled
// from the transport per poll.
func ChunkSizeOption(size int) Option {
	return func(o *options) {
		o.chunkSize = size
	}
}

// checkOptions sets default values for unset options.
func checkOptions(opts *options) {
	if opts.chunkSize <= 0 {
		opts.chunkSize = defaultChunkSize
	}
	if !opts.loggerSet {
		opts.logger = zerolog.Nop()
	}
}
