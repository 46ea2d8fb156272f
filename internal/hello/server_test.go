package hello

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockConn struct {
	in  *bytes.Reader
	out bytes.Buffer
}

func newMockConn(request string) *mockConn {
	return &mockConn{in: bytes.NewReader([]byte(request))}
}

func (m *mockConn) Read(p []byte) (int, error)  { return m.in.Read(p) }
func (m *mockConn) Write(p []byte) (int, error) { return m.out.Write(p) }

func TestHandleConn(t *testing.T) {
	t.Run("Should serve the hello page for GET /", func(t *testing.T) {
		conn := newMockConn("GET / HTTP/1.1\r\nHost: localhost\r\n\r\n")
		require.NoError(t, New().HandleConn(context.Background(), conn))

		assert.Equal(t, "HTTP/1.1 200 OK\r\n\r\n"+string(helloPage), conn.out.String())
	})

	t.Run("Should delay GET /sleep before answering", func(t *testing.T) {
		s := &Server{SleepDelay: 30 * time.Millisecond}
		conn := newMockConn("GET /sleep HTTP/1.1\r\n\r\n")

		start := time.Now()
		require.NoError(t, s.HandleConn(context.Background(), conn))

		assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
		assert.True(t, strings.HasPrefix(conn.out.String(), "HTTP/1.1 200 OK\r\n\r\n"))
	})

	t.Run("Should abandon the sleep on cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		conn := newMockConn("GET /sleep HTTP/1.1\r\n\r\n")

		err := New().HandleConn(ctx, conn)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, conn.out.String())
	})

	t.Run("Should answer 404 for anything else", func(t *testing.T) {
		for _, req := range []string{"GET /missing HTTP/1.1\r\n", "POST / HTTP/1.1\r\n", ""} {
			conn := newMockConn(req)
			require.NoError(t, New().HandleConn(context.Background(), conn))
			assert.Equal(t, "HTTP/1.1 404 NOT FOUND\r\n\r\n"+string(notFoundPage), conn.out.String(), req)
		}
	})
}

type flakyListener struct {
	net.Listener
	failures int
	calls    int
}

func (l *flakyListener) Accept() (net.Conn, error) {
	l.calls++
	if l.calls <= l.failures {
		return nil, errors.New("too many open files")
	}
	return nil, net.ErrClosed
}

func (l *flakyListener) Close() error { return nil }

func TestNextBackoff(t *testing.T) {
	t.Run("Should start small, double and cap", func(t *testing.T) {
		assert.Equal(t, minAcceptBackoff, nextBackoff(0))
		assert.Equal(t, 2*minAcceptBackoff, nextBackoff(minAcceptBackoff))
		assert.Equal(t, maxAcceptBackoff, nextBackoff(maxAcceptBackoff))
		assert.Equal(t, maxAcceptBackoff, nextBackoff(800*time.Millisecond))
	})
}

func TestServe(t *testing.T) {
	t.Run("Should back off between failed accepts", func(t *testing.T) {
		ln := &flakyListener{failures: 3}

		start := time.Now()
		err := New().Serve(context.Background(), ln)

		assert.ErrorIs(t, err, net.ErrClosed)
		assert.Equal(t, 4, ln.calls)
		assert.GreaterOrEqual(t, time.Since(start), 35*time.Millisecond)
	})

	t.Run("Should stop backing off on cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		ln := &flakyListener{failures: 1 << 30}
		done := make(chan error, 1)
		go func() { done <- New().Serve(ctx, ln) }()

		time.Sleep(20 * time.Millisecond)
		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(2 * time.Second):
			t.Fatal("Serve did not return after cancellation")
		}
	})

	t.Run("Should answer over TCP and stop on cancellation", func(t *testing.T) {
		ln, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- New().Serve(ctx, ln) }()

		conn, err := net.Dial("tcp", ln.Addr().String())
		require.NoError(t, err)
		_, err = conn.Write([]byte("GET / HTTP/1.1\r\n\r\n"))
		require.NoError(t, err)
		body, err := io.ReadAll(conn)
		require.NoError(t, err)
		conn.Close()
		assert.Contains(t, string(body), "<h1>Hello!</h1>")

		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(2 * time.Second):
			t.Fatal("Serve did not return after cancellation")
		}
	})
}
