package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/resume-gate/internal/config"
	"github.com/MKhiriev/resume-gate/internal/logger"
	"github.com/MKhiriev/resume-gate/internal/mock"
)

// ─────────────────────────────────────────────
// Liveness
// ─────────────────────────────────────────────

func TestHealthService_Liveness_IgnoresDatabase(t *testing.T) {
	ctrl := gomock.NewController(t)
	checker := mock.NewMockConnectionChecker(ctrl)
	checker.EXPECT().CheckConnection(gomock.Any()).Times(0)

	svc := NewHealthService(checker, config.Server{ReadinessTimeout: time.Second}, logger.Nop())

	assert.NoError(t, svc.Liveness(context.Background()))
}

// ─────────────────────────────────────────────
// Readiness
// ─────────────────────────────────────────────

func TestHealthService_Readiness_OK(t *testing.T) {
	ctrl := gomock.NewController(t)
	checker := mock.NewMockConnectionChecker(ctrl)
	checker.EXPECT().CheckConnection(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
		deadline, ok := ctx.Deadline()
		require.True(t, ok, "readiness query must be bounded")
		assert.WithinDuration(t, time.Now().Add(500*time.Millisecond), deadline, 100*time.Millisecond)
		return nil
	})

	svc := NewHealthService(checker, config.Server{ReadinessTimeout: 500 * time.Millisecond}, logger.Nop())

	assert.NoError(t, svc.Readiness(context.Background()))
}

func TestHealthService_Readiness_DatabaseDown(t *testing.T) {
	ctrl := gomock.NewController(t)
	checker := mock.NewMockConnectionChecker(ctrl)
	checker.EXPECT().CheckConnection(gomock.Any()).Return(errors.New("connection refused"))

	svc := NewHealthService(checker, config.Server{ReadinessTimeout: time.Second}, logger.Nop())

	err := svc.Readiness(context.Background())

	assert.ErrorIs(t, err, ErrDatabaseUnreachable)
}

func TestHealthService_Readiness_SlowDatabase(t *testing.T) {
	ctrl := gomock.NewController(t)
	checker := mock.NewMockConnectionChecker(ctrl)
	checker.EXPECT().CheckConnection(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})

	svc := NewHealthService(checker, config.Server{ReadinessTimeout: 20 * time.Millisecond}, logger.Nop())

	start := time.Now()
	err := svc.Readiness(context.Background())

	assert.ErrorIs(t, err, ErrDatabaseUnreachable)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)
}

// TestHealthService_ProbesAreIndependent: a failing database makes the
// service unready but never dead.
func TestHealthService_ProbesAreIndependent(t *testing.T) {
	ctrl := gomock.NewController(t)
	checker := mock.NewMockConnectionChecker(ctrl)
	checker.EXPECT().CheckConnection(gomock.Any()).Return(errors.New("down")).Times(2)

	svc := NewHealthService(checker, config.Server{ReadinessTimeout: time.Second}, logger.Nop())
	ctx := context.Background()

	assert.Error(t, svc.Readiness(ctx))
	assert.NoError(t, svc.Liveness(ctx))
	assert.Error(t, svc.Readiness(ctx))
}
