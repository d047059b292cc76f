package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/resume-gate/internal/config"
	"github.com/MKhiriev/resume-gate/internal/handler"
	"github.com/MKhiriev/resume-gate/internal/logger"
	"github.com/MKhiriev/resume-gate/internal/workers"
)

type blockingWorker struct {
	started chan struct{}
	stopped chan struct{}
}

func (w *blockingWorker) Run(ctx context.Context) {
	close(w.started)
	<-ctx.Done()
	close(w.stopped)
}

func newTestServer(addr string) *server {
	return &server{
		httpServer: newHTTPServer(http.NotFoundHandler(), config.Server{
			HTTPAddress:    addr,
			RequestTimeout: time.Second,
		}, logger.Nop()),
		workers: &workers.Workers{},
		logger:  logger.Nop(),
	}
}

func TestNewServer_NoHandlers(t *testing.T) {
	srv, err := NewServer(&handler.Handlers{}, nil, config.Server{HTTPAddress: ":8080"}, logger.Nop())

	assert.Nil(t, srv)
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewServer_NoAddress(t *testing.T) {
	srv, err := NewServer(nil, nil, config.Server{}, logger.Nop())

	assert.Nil(t, srv)
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewHTTPServer_Timeouts(t *testing.T) {
	h := newHTTPServer(http.NotFoundHandler(), config.Server{
		HTTPAddress:    "127.0.0.1:8080",
		RequestTimeout: 30 * time.Second,
	}, logger.Nop())

	assert.Equal(t, "127.0.0.1:8080", h.server.Addr)
	assert.Equal(t, readHeaderTimeout, h.server.ReadHeaderTimeout)
	assert.Equal(t, 30*time.Second, h.server.ReadTimeout)
	assert.Greater(t, h.server.WriteTimeout, 30*time.Second)
	assert.Equal(t, idleTimeout, h.server.IdleTimeout)
}

func TestServer_Run_StopsOnCancel(t *testing.T) {
	s := newTestServer("127.0.0.1:0")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- s.run(ctx)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after cancellation")
	}
}

func TestServer_Run_StopsWorkersOnCancel(t *testing.T) {
	s := newTestServer("127.0.0.1:0")
	w := &blockingWorker{started: make(chan struct{}), stopped: make(chan struct{})}
	s.workers = workers.New(w)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- s.run(ctx)
	}()

	<-w.started
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after cancellation")
	}

	select {
	case <-w.stopped:
	default:
		t.Fatal("worker still running after server returned")
	}
}

func TestServer_Run_ListenErrorStopsWorkers(t *testing.T) {
	s := newTestServer("invalid-address")
	w := &blockingWorker{started: make(chan struct{}), stopped: make(chan struct{})}
	s.workers = workers.New(w)

	err := s.run(context.Background())

	assert.Error(t, err)
	<-w.stopped
}

func TestServer_Run_NoHTTPServer(t *testing.T) {
	s := &server{logger: logger.Nop(), workers: &workers.Workers{}}

	assert.Error(t, s.run(context.Background()))
}
