package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"testing"

	"github.com/rs/zerolog"
)

type stubServer struct {
	listenErr   error
	shutdownErr error

	listened bool
	shutdown bool
	closed   bool
}

func (s *stubServer) ListenAndServe() error {
	s.listened = true
	return s.listenErr
}

func (s *stubServer) Shutdown(context.Context) error {
	s.shutdown = true
	return s.shutdownErr
}

func (s *stubServer) Close() error {
	s.closed = true
	return nil
}

func (s *stubServer) Addr() string { return ":0" }

func TestRun_BootstrapFailure(t *testing.T) {
	build := func() (httpServer, func(), error) {
		return nil, nil, errors.New("boot failure")
	}

	if code := Run(build, make(chan os.Signal, 1), zerolog.Nop()); code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
}

func TestRun_SignalTriggersGracefulShutdown(t *testing.T) {
	// Pre-load the signal so Run takes the shutdown path deterministically.
	sigCh := make(chan os.Signal, 1)
	sigCh <- os.Interrupt

	srv := &stubServer{listenErr: http.ErrServerClosed}
	var cleaned bool
	build := func() (httpServer, func(), error) {
		return srv, func() { cleaned = true }, nil
	}

	if code := Run(build, sigCh, zerolog.Nop()); code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if !srv.listened || !srv.shutdown {
		t.Fatalf("expected listen and graceful shutdown, got %+v", srv)
	}
	if srv.closed {
		t.Fatalf("Close must not run when Shutdown succeeds")
	}
	if !cleaned {
		t.Fatalf("cleanup must run")
	}
}

func TestRun_ServerCrashReturnsNonZero(t *testing.T) {
	srv := &stubServer{listenErr: errors.New("listen tcp: address in use")}
	var cleaned bool
	build := func() (httpServer, func(), error) {
		return srv, func() { cleaned = true }, nil
	}

	if code := Run(build, make(chan os.Signal, 1), zerolog.Nop()); code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if !cleaned {
		t.Fatalf("cleanup must run on the crash path")
	}
}

func TestRun_ForcedCloseWhenShutdownFails(t *testing.T) {
	sigCh := make(chan os.Signal, 1)
	sigCh <- os.Interrupt

	srv := &stubServer{
		listenErr:   http.ErrServerClosed,
		shutdownErr: errors.New("connections still draining"),
	}
	build := func() (httpServer, func(), error) {
		return srv, func() {}, nil
	}

	_ = Run(build, sigCh, zerolog.Nop())

	if !srv.shutdown || !srv.closed {
		t.Fatalf("expected Shutdown then forced Close, got %+v", srv)
	}
}
