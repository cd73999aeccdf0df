package network

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/INDA25PlusPlus/rsoderh-gui/internal/chesstp"
)

// ConnectionStream owns one live chesstp session endpoint. It composes
// the frame scanner and the message codec into a non-blocking receive
// operation and a blocking whole-frame send operation.
//
// A ConnectionStream is exclusively owned by one session and is not
// safe for concurrent use; the session's owner polls Accept once per
// tick from a single control thread.
type ConnectionStream struct {
	stream  Stream
	scanner *FrameScanner
	logger  zerolog.Logger
	closed  bool
}

// NewConnectionStream wraps an established byte stream.
func NewConnectionStream(stream Stream, opt ...Option) *ConnectionStream {
	var opts options
	for _, o := range opt {
		o(&opts)
	}
	checkOptions(&opts)

	return &ConnectionStream{
		stream:  stream,
		scanner: NewFrameScanner(stream, chesstp.FramePrefix, opts.chunkSize),
		logger:  opts.logger,
	}
}

// Accept polls for one complete message. It returns (nil, nil) when no
// full frame has arrived yet and never blocks; bytes read toward an
// incomplete frame are retained for the next call. A frame that
// arrives but fails to decode is a protocol error, not a retry
// condition.
func (c *ConnectionStream) Accept() (chesstp.Message, error) {
	if c.closed {
		return nil, ErrConnectionClosed
	}

	found, err := c.scanner.Scan()
	if err != nil {
		return nil, errors.Wrap(err, "scan for frame prefix")
	}
	if !found {
		return nil, nil
	}

	frame, complete, err := c.scanner.TryConsume(chesstp.FrameSize)
	if err != nil {
		return nil, errors.Wrap(err, "read frame")
	}
	if !complete {
		c.logger.Debug().Int("buffered", c.scanner.Buffered()).
			Msg("frame prefix located, waiting for remainder")
		return nil, nil
	}

	message, err := chesstp.Parse(frame)
	if err != nil {
		return nil, errors.Wrap(err, "parse frame")
	}

	c.logger.Debug().Type("message", message).Msg("message received")
	return message, nil
}

// Write serializes a message and transmits the whole frame. A short
// write would desynchronize the peer's frame scanner, so writing
// continues until the full frame is on the wire or a hard error
// occurs.
func (c *ConnectionStream) Write(message chesstp.Message) error {
	if c.closed {
		return ErrConnectionClosed
	}

	frame, err := chesstp.Serialize(message)
	if err != nil {
		return err
	}

	for written := 0; written < len(frame); {
		n, err := c.stream.Write(frame[written:])
		if err != nil {
			return errors.Wrap(err, "write frame")
		}
		if n == 0 {
			return errors.New("transport accepted no bytes")
		}
		written += n
	}

	c.logger.Debug().Type("message", message).Msg("message sent")
	return nil
}

// Close releases the underlying stream. Buffered unread inbound bytes
// are discarded. Safe to call multiple times.
func (c *ConnectionStream) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	c.scanner.Discard()
	c.logger.Debug().Msg("connection closed")
	return c.stream.Close()
}
