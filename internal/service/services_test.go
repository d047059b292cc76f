package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/resume-gate/internal/config"
	"github.com/MKhiriev/resume-gate/internal/logger"
	"github.com/MKhiriev/resume-gate/internal/mock"
	"github.com/MKhiriev/resume-gate/internal/store"
)

func TestNewServices(t *testing.T) {
	ctrl := gomock.NewController(t)
	storages := &store.Storages{
		DownloadLogRepository: mock.NewMockDownloadLogRepository(ctrl),
		ConnectionChecker:     mock.NewMockConnectionChecker(ctrl),
	}

	services, err := NewServices(storages, mock.NewMockLinkIssuer(ctrl), config.StructuredConfig{
		App: config.App{Version: "1.2.3"},
	}, logger.Nop())

	require.NoError(t, err)
	assert.NotNil(t, services.DownloadService)
	assert.NotNil(t, services.HealthService)
	assert.NotNil(t, services.AuditService)
	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.AppInfoService)
}

func TestNewServices_NoVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	_, err := NewServices(&store.Storages{}, mock.NewMockLinkIssuer(ctrl), config.StructuredConfig{}, logger.Nop())

	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}
