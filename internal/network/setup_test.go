package network

import (
	"context"
	"errors"
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/INDA25PlusPlus/rsoderh-gui/internal/chesstp"
)

func TestParseMode(t *testing.T) {
	tests := map[string]Mode{
		"local":  Local,
		"client": Client,
		"server": Server,
	}
	for input, want := range tests {
		got, err := ParseMode(input)
		if err != nil || got != want {
			t.Errorf("ParseMode(%q) = %v, %v", input, got, err)
		}
	}

	if _, err := ParseMode("spectator"); err == nil {
		t.Error("ParseMode(\"spectator\") unexpectedly succeeded")
	}
}

// freePort reserves and releases an ephemeral port for the test.
func freePort(t *testing.T) int {
	t.Helper()
	listener, err := net.ListenTCP("tcp", &net.TCPAddr{IP: net.ParseIP("127.0.0.1"), Port: 0})
	if err != nil {
		t.Fatalf("failed to reserve port: %v", err)
	}
	port := listener.Addr().(*net.TCPAddr).Port
	listener.Close()
	return port
}

func TestListenDialSession(t *testing.T) {
	port := freePort(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	type result struct {
		stream *ConnectionStream
		err    error
	}
	serverChan := make(chan result, 1)
	go func() {
		stream, err := Listen(ctx, port)
		serverChan <- result{stream: stream, err: err}
	}()

	// The listener may not be up yet; retry the dial briefly.
	var client *ConnectionStream
	var err error
	for i := 0; i < 50; i++ {
		client, err = Dial(ctx, net.JoinHostPort("127.0.0.1", strconv.Itoa(port)))
		if err == nil {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}
	if err != nil {
		t.Fatalf("Dial failed: %v", err)
	}
	defer client.Close()

	serverResult := <-serverChan
	if serverResult.err != nil {
		t.Fatalf("Listen failed: %v", serverResult.err)
	}
	server := serverResult.stream
	defer server.Close()

	quit, err := chesstp.NewQuit("gg")
	if err != nil {
		t.Fatalf("NewQuit failed: %v", err)
	}
	if err := client.Write(quit); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	got := acceptEventually(t, server)
	if diff := cmp.Diff(chesstp.Message(quit), got); diff != "" {
		t.Errorf("message mismatch (-want +got):\n%s", diff)
	}
}

func TestListenCancellation(t *testing.T) {
	port := freePort(t)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		_, err := Listen(ctx, port)
		done <- err
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Listen = %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Listen did not return after cancellation")
	}
}
