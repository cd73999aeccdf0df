// Package network implements the chesstp session layer: a byte-stream
// transport with explicit would-block signaling, the frame scanner that
// aligns the inbound stream on frame boundaries, and the connection
// stream that exchanges whole chesstp messages with the remote peer.
package network

import (
	stderrors "errors"
	"net"
	"time"

	"github.com/pkg/errors"
)

// ErrWouldBlock signals that no data is currently available on the
// stream. It is the only non-fatal read condition in this package and
// is never treated as a failure.
var ErrWouldBlock = errors.New("read would block")

// ErrConnectionClosed is returned when operating on a closed stream.
var ErrConnectionClosed = errors.New("connection closed")

// Stream is a bidirectional byte stream. Reads never block: when no
// data is ready, TryRead reports ErrWouldBlock, which is distinct from
// the peer having closed the stream.
type Stream interface {
	// TryRead reads whatever bytes are currently available into p.
	// It returns ErrWouldBlock when nothing is ready and io.EOF once
	// the peer has closed its sending half.
	TryRead(p []byte) (int, error)
	// Write writes bytes to the stream, blocking as needed.
	Write(p []byte) (int, error)
	// Close releases the stream.
	Close() error
}

// readGrace is the read deadline window for a TryRead poll. It must
// lie in the future: the runtime fails a read against an expired
// deadline before touching the socket, which would starve the stream
// of data the kernel already holds.
const readGrace = time.Millisecond

// tcpStream adapts *net.TCPConn to Stream. Non-blocking reads are
// realized with a near-immediate read deadline: available bytes are
// returned at once, and a deadline-expired read with no data maps to
// ErrWouldBlock.
type tcpStream struct {
	conn *net.TCPConn
}

// NewTCPStream wraps an established TCP connection as a Stream.
func NewTCPStream(conn *net.TCPConn) Stream {
	return &tcpStream{conn: conn}
}

func (s *tcpStream) TryRead(p []byte) (int, error) {
	if err := s.conn.SetReadDeadline(time.Now().Add(readGrace)); err != nil {
		return 0, errors.Wrap(err, "set read deadline")
	}
	n, err := s.conn.Read(p)
	if err != nil {
		var netErr net.Error
		if stderrors.As(err, &netErr) && netErr.Timeout() {
			if n > 0 {
				return n, nil
			}
			return 0, ErrWouldBlock
		}
		return n, err
	}
	return n, nil
}

func (s *tcpStream) Write(p []byte) (int, error) {
	// Write deadlines are independent of the read deadline TryRead
	// manages; none is ever set, so writes block until done.
	return s.conn.Write(p)
}

func (s *tcpStream) Close() error {
	return s.conn.Close()
}
