// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/resume-gate/internal/config"
	"github.com/MKhiriev/resume-gate/internal/logger"
	"github.com/MKhiriev/resume-gate/internal/mock"
	"github.com/MKhiriev/resume-gate/internal/store"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type mockWorker struct {
	runCount atomic.Int32
}

func (m *mockWorker) Run(ctx context.Context) {
	m.runCount.Add(1)
	<-ctx.Done()
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1, w2, w3 := &mockWorker{}, &mockWorker{}, &mockWorker{}
	ws := &Workers{workers: []Worker{w1, w2, w3}}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		ws.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		return w1.runCount.Load() == 1 && w2.runCount.Load() == 1 && w3.runCount.Load() == 1
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancellation")
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := &Workers{}

	// returns immediately without workers
	ws.Run(context.Background())
}

func TestNewWorkers_MonitorDisabled(t *testing.T) {
	ws := NewWorkers(&store.Storages{}, config.Workers{}, logger.Nop())

	assert.Empty(t, ws.workers)
}

func TestNewWorkers_MonitorEnabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	storages := &store.Storages{DownloadLogRepository: mock.NewMockDownloadLogRepository(ctrl)}

	ws := NewWorkers(storages, config.Workers{PendingSweepInterval: time.Minute, PendingStaleAfter: time.Minute}, logger.Nop())

	assert.Len(t, ws.workers, 1)
}
