// Package hello is a tiny HTTP/1.1 responder written directly on TCP. It
// recognises two request lines and answers everything else with 404.
package hello

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"go-practice/internal/logger"
	"io"
	"net"
	"sync"
	"time"
)

const (
	DefaultAddr       = "127.0.0.1:8888"
	DefaultSleepDelay = 5 * time.Second

	requestBufSize = 1024
	readTimeout    = 10 * time.Second

	minAcceptBackoff = 5 * time.Millisecond
	maxAcceptBackoff = time.Second

	statusOK       = "HTTP/1.1 200 OK\r\n\r\n"
	statusNotFound = "HTTP/1.1 404 NOT FOUND\r\n\r\n"
)

var (
	getRoot  = []byte("GET / HTTP/1.1\r\n")
	getSleep = []byte("GET /sleep HTTP/1.1\r\n")

	//go:embed pages/hello.html
	helloPage []byte
	//go:embed pages/404.html
	notFoundPage []byte
)

type Server struct {
	SleepDelay time.Duration
}

func New() *Server {
	return &Server{SleepDelay: DefaultSleepDelay}
}

// Serve accepts connections until ctx is cancelled, handling each on its own
// goroutine. It closes ln and waits for open connections before returning.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	var wg sync.WaitGroup
	defer wg.Wait()

	stop := context.AfterFunc(ctx, func() { _ = ln.Close() })
	defer stop()

	var backoff time.Duration
	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			if errors.Is(err, net.ErrClosed) {
				return err
			}
			backoff = nextBackoff(backoff)
			logger.Warn().Err(err).Dur("retry_in", backoff).Msg("accept failed")
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil
			}
			continue
		}
		backoff = 0

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer conn.Close()
			_ = conn.SetReadDeadline(time.Now().Add(readTimeout))
			if err := s.HandleConn(ctx, conn); err != nil {
				logger.Debug().Err(err).Str("remote", conn.RemoteAddr().String()).Msg("connection failed")
			}
		}()
	}
}

// nextBackoff doubles the accept retry delay within
// [minAcceptBackoff, maxAcceptBackoff].
func nextBackoff(d time.Duration) time.Duration {
	if d == 0 {
		return minAcceptBackoff
	}
	return min(2*d, maxAcceptBackoff)
}

// HandleConn reads one request from rw and writes the matching response.
func (s *Server) HandleConn(ctx context.Context, rw io.ReadWriter) error {
	buf := make([]byte, requestBufSize)
	n, err := rw.Read(buf)
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	request := buf[:n]

	status, page := statusNotFound, notFoundPage
	switch {
	case bytes.HasPrefix(request, getRoot):
		status, page = statusOK, helloPage
	case bytes.HasPrefix(request, getSleep):
		timer := time.NewTimer(s.SleepDelay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return ctx.Err()
		}
		status, page = statusOK, helloPage
	}

	response := make([]byte, 0, len(status)+len(page))
	response = append(response, status...)
	response = append(response, page...)
	_, err = rw.Write(response)
	return err
}
