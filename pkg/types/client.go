package types

import (
	"context"
)

// AlertsClient defines the interface for National Weather Service alert lookups
type AlertsClient interface {
	// Fetch issues a single GET against url and classifies the outcome.
	Fetch(ctx context.Context, url string) FetchResult

	// ActiveAlerts returns the active alerts for a state or area code.
	// The code is used verbatim.
	ActiveAlerts(ctx context.Context, state string) AlertsResult
}

// Outcome classifies the result of an upstream request
type Outcome int

const (
	OutcomeOK Outcome = iota
	OutcomeHTTPError
	OutcomeTransportError
	OutcomeDecodeError
	OutcomeEmpty
)

var outcomeNames = map[Outcome]string{
	OutcomeOK:             "ok",
	OutcomeHTTPError:      "http_error",
	OutcomeTransportError: "transport_error",
	OutcomeDecodeError:    "decode_error",
	OutcomeEmpty:          "empty",
}

// String returns the outcome name
func (o Outcome) String() string {
	if name, ok := outcomeNames[o]; ok {
		return name
	}
	return "unknown"
}

// FetchResult represents the classified result of one upstream GET
type FetchResult struct {
	Outcome    Outcome
	StatusCode int
	Err        error
	Payload    []byte
}

// Value returns the JSON payload, or false for any failure.
// Callers cannot tell failure kinds apart through this view.
func (r FetchResult) Value() ([]byte, bool) {
	if r.Outcome != OutcomeOK {
		return nil, false
	}
	return r.Payload, true
}

// AlertsResult represents the result of an active alerts lookup
type AlertsResult struct {
	Outcome    Outcome
	StatusCode int
	Err        error
	Alerts     AlertCollection
}

// HasAlerts reports whether the lookup produced at least one alert
func (r AlertsResult) HasAlerts() bool {
	return r.Outcome == OutcomeOK && len(r.Alerts.Features) > 0
}
