package network

import (
	"context"
	"net"
	"time"

	"github.com/pkg/errors"
)

// Mode selects how a game session is established.
type Mode int

const (
	// Local plays both sides on this machine; no network session.
	Local Mode = iota
	// Client connects to a listening peer.
	Client
	// Server listens for a connecting peer.
	Server
)

// String returns the string representation of a mode.
func (m Mode) String() string {
	switch m {
	case Local:
		return "Local"
	case Client:
		return "Client"
	case Server:
		return "Server"
	}
	return "Unknown"
}

// ParseMode maps a configuration string to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "local":
		return Local, nil
	case "client":
		return Client, nil
	case "server":
		return Server, nil
	}
	return 0, errors.Errorf("unknown mode %q, want local, client or server", s)
}

// DefaultPort is the port used when none is configured.
const DefaultPort = 3000

// Listen waits for exactly one peer to connect on the given port and
// returns the session stream for it. The listener is closed once the
// peer has connected; a chesstp session has exactly two participants.
// Cancelling the context aborts the wait.
func Listen(ctx context.Context, port int, opt ...Option) (*ConnectionStream, error) {
	listener, err := net.ListenTCP("tcp", &net.TCPAddr{Port: port})
	if err != nil {
		return nil, errors.Wrapf(err, "listen on port %d", port)
	}
	defer listener.Close()

	// Set a deadline to unblock Accept when the context is cancelled.
	stop := context.AfterFunc(ctx, func() {
		_ = listener.SetDeadline(time.Now())
	})
	defer stop()

	conn, err := listener.AcceptTCP()
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, errors.Wrap(err, "accept peer")
	}

	_ = conn.SetNoDelay(true)
	return NewConnectionStream(NewTCPStream(conn), opt...), nil
}

// Dial connects to a listening peer at addr ("host:port") and returns
// the session stream for it.
func Dial(ctx context.Context, addr string, opt ...Option) (*ConnectionStream, error) {
	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, errors.Wrapf(err, "dial %s", addr)
	}

	tcp := conn.(*net.TCPConn)
	_ = tcp.SetNoDelay(true)
	return NewConnectionStream(NewTCPStream(tcp), opt...), nil
}
