package network

import (
	"bytes"
	stderrors "errors"

	"github.com/pkg/errors"
)

// FrameScanner aligns an incrementally arriving byte stream on a fixed
// frame prefix. Data is pulled from the source in whatever chunk sizes
// it delivers, so the prefix may be split across any number of reads;
// the scanner never discards a byte that could still open a match, and
// never buffers more than one chunk beyond a frame.
type FrameScanner struct {
	src    Stream
	prefix []byte
	chunk  []byte
	buf    []byte
}

// NewFrameScanner returns a scanner that aligns src on prefix, reading
// at most chunkSize bytes per poll.
func NewFrameScanner(src Stream, prefix string, chunkSize int) *FrameScanner {
	return &FrameScanner{
		src:    src,
		prefix: []byte(prefix),
		chunk:  make([]byte, chunkSize),
	}
}

// fill appends whatever the source has available to the buffer. It
// returns ErrWouldBlock when nothing new arrived.
func (s *FrameScanner) fill() error {
	n, err := s.src.TryRead(s.chunk)
	if n > 0 {
		// Surface any error on the next call; the bytes that did
		// arrive must be searched first.
		s.buf = append(s.buf, s.chunk[:n]...)
		return nil
	}
	return err
}

// Scan searches the stream for the frame prefix. When found, all bytes
// strictly before the prefix are discarded and the buffer is left
// starting at the prefix. When the data seen so far cannot contain the
// prefix, Scan reports false and must be called again once more data
// may have arrived; bytes that could be the start of a later match are
// retained across calls.
func (s *FrameScanner) Scan() (bool, error) {
	for {
		if i := bytes.Index(s.buf, s.prefix); i >= 0 {
			s.buf = append(s.buf[:0], s.buf[i:]...)
			return true, nil
		}

		// Only the trailing len(prefix)-1 bytes can still open a
		// match; everything before them is garbage.
		if keep := len(s.prefix) - 1; len(s.buf) > keep {
			s.buf = append(s.buf[:0], s.buf[len(s.buf)-keep:]...)
		}

		if err := s.fill(); err != nil {
			if stderrors.Is(err, ErrWouldBlock) {
				return false, nil
			}
			return false, errors.Wrap(err, "refill scan buffer")
		}
	}
}

// Buffered returns how many bytes are currently retained.
func (s *FrameScanner) Buffered() int {
	return len(s.buf)
}

// TryConsume returns the first n buffered bytes and consumes them,
// pulling from the source as needed. It reports false, without
// consuming anything, when fewer than n bytes have arrived so far; the
// bytes already buffered are kept for the next call.
func (s *FrameScanner) TryConsume(n int) ([]byte, bool, error) {
	for len(s.buf) < n {
		if err := s.fill(); err != nil {
			if stderrors.Is(err, ErrWouldBlock) {
				return nil, false, nil
			}
			return nil, false, errors.Wrap(err, "refill scan buffer")
		}
	}

	out := make([]byte, n)
	copy(out, s.buf)
	s.buf = append(s.buf[:0], s.buf[n:]...)
	return out, true, nil
}

// Discard drops all buffered bytes.
func (s *FrameScanner) Discard() {
	s.buf = s.buf[:0]
}
