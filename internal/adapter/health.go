package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/carpartcert/carcert-cli/internal/logger"
	"github.com/carpartcert/carcert-cli/internal/utils"
	"github.com/carpartcert/carcert-cli/models"
)

const (
	healthzPath          = "/healthz"
	defaultHealthTimeout = 10 * time.Second
)

type operationsHealthProber struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewOperationsHealthProber returns a [HealthProber] for the peer operations
// service at operationsURL. A scheme-less address is treated as http.
// timeout defaults to 10s when not positive.
func NewOperationsHealthProber(operationsURL string, timeout time.Duration, log *logger.Logger) (HealthProber, error) {
	baseURL, err := normalizeBaseURL(operationsURL)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid operations url: %w", ErrHealthProbe, err)
	}
	if timeout <= 0 {
		timeout = defaultHealthTimeout
	}

	return &operationsHealthProber{
		client: utils.NewHTTPClient(baseURL, timeout),
		logger: log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Health implements [HealthProber]. The operations service answers 200 when
// every registered checker passes and 503 with the failed checks otherwise;
// both bodies decode into [models.HealthReport].
func (p *operationsHealthProber) Health(ctx context.Context) (models.HealthReport, error) {
	resp, err := p.client.R().
		SetContext(ctx).
		Get(healthzPath)
	if err != nil {
		return models.HealthReport{}, fmt.Errorf("%w: %w", ErrHealthProbe, err)
	}

	switch resp.StatusCode() {
	case http.StatusOK, http.StatusServiceUnavailable:
	default:
		body := strings.TrimSpace(string(resp.Body()))
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return models.HealthReport{}, fmt.Errorf("%w: http %d: %s", ErrHealthProbe, resp.StatusCode(), body)
	}

	var report models.HealthReport
	if err = json.Unmarshal(resp.Body(), &report); err != nil {
		return models.HealthReport{}, fmt.Errorf("%w: decode health report: %w", ErrHealthProbe, err)
	}

	p.logger.Debug().
		Str("func", "operationsHealthProber.Health").
		Str("status", report.Status).
		Int("failed_checks", len(report.FailedChecks)).
		Msg("peer health probed")

	return report, nil
}
