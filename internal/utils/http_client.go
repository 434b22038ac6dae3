package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// userAgent identifies the client to peer operations endpoints.
const userAgent = "carcert-cli"

// HTTPClient is a wrapper around the resty.Client HTTP client, preconfigured
// for the JSON endpoints of Fabric operations services.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:9443", 5*time.Second)
//	resp, err := client.R().Get("/healthz")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient rooted at baseURL. A non-positive
// timeout leaves resty's default (no timeout) in place.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", userAgent)

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
