package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/carpartcert/carcert-cli/internal/adapter"
	"github.com/carpartcert/carcert-cli/internal/logger"
	"github.com/carpartcert/carcert-cli/internal/mock"
	"github.com/carpartcert/carcert-cli/models"
)

func TestHealthService_Check(t *testing.T) {
	ctrl := gomock.NewController(t)
	prober := mock.NewMockHealthProber(ctrl)
	svc := NewHealthService(prober, logger.Nop())

	unhealthy := models.HealthReport{
		Status:       "Service Unavailable",
		FailedChecks: []models.HealthCheckFailure{{Component: "couchdb", Reason: "unreachable"}},
	}
	prober.EXPECT().Health(gomock.Any()).Return(unhealthy, nil)

	report, err := svc.Check(context.Background())
	require.NoError(t, err)
	assert.False(t, report.Healthy())
}

func TestHealthService_CheckError(t *testing.T) {
	ctrl := gomock.NewController(t)
	prober := mock.NewMockHealthProber(ctrl)
	svc := NewHealthService(prober, logger.Nop())

	prober.EXPECT().Health(gomock.Any()).Return(models.HealthReport{}, adapter.ErrHealthProbe)

	_, err := svc.Check(context.Background())
	assert.ErrorIs(t, err, adapter.ErrHealthProbe)
}
