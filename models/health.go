package models

import "time"

// HealthStatusOK is the status a healthy Fabric operations service reports.
const HealthStatusOK = "OK"

// HealthCheckFailure is one failed component check.
type HealthCheckFailure struct {
	Component string `json:"component"`
	Reason    string `json:"reason"`
}

// HealthReport mirrors the body of the peer operations /healthz endpoint.
type HealthReport struct {
	Status       string               `json:"status"`
	Time         time.Time            `json:"time"`
	FailedChecks []HealthCheckFailure `json:"failed_checks,omitempty"`
}

// Healthy reports whether the peer declared itself OK.
func (r HealthReport) Healthy() bool {
	return r.Status == HealthStatusOK
}
