package service

import (
	"context"

	"github.com/carpartcert/carcert-cli/internal/adapter"
	"github.com/carpartcert/carcert-cli/internal/logger"
	"github.com/carpartcert/carcert-cli/models"
)

type healthService struct {
	prober adapter.HealthProber
	logger *logger.Logger
}

func NewHealthService(prober adapter.HealthProber, logger *logger.Logger) HealthService {
	return &healthService{prober: prober, logger: logger}
}

func (s *healthService) Check(ctx context.Context) (models.HealthReport, error) {
	report, err := s.prober.Health(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "healthService.Check").Msg("error probing peer")
		return models.HealthReport{}, err
	}

	if !report.Healthy() {
		for _, failed := range report.FailedChecks {
			s.logger.Warn().
				Str("func", "healthService.Check").
				Str("component", failed.Component).
				Str("reason", failed.Reason).
				Msg("peer check failed")
		}
	}

	return report, nil
}
