package client

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/averycrespi/weather-mcp/internal/transport"
	"github.com/averycrespi/weather-mcp/pkg/types"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/sirupsen/logrus"
)

// AlertsActiveAreaPath is the NWS path for active alerts by state or marine area
const AlertsActiveAreaPath = "/alerts/active/area/"

var _ types.AlertsClient = &NWSClient{}

// NWSClient fetches alerts from the National Weather Service API.
// It holds no connections between calls: every Fetch builds and releases its own HTTP client.
type NWSClient struct {
	baseURL   string
	transport transport.Options
	logger    logrus.FieldLogger
}

// Option configures an NWSClient
type Option func(*NWSClient)

// WithRoundTripper sets the round tripper underneath the header transport
func WithRoundTripper(rt http.RoundTripper) Option {
	return func(c *NWSClient) {
		c.transport.Base = rt
	}
}

// NewNWSClient creates a new NWS API client
func NewNWSClient(config types.NWSConfig, logger logrus.FieldLogger, opts ...Option) *NWSClient {
	c := &NWSClient{
		baseURL: strings.TrimRight(config.BaseURL, "/"),
		transport: transport.Options{
			UserAgent: config.UserAgent,
			Timeout:   config.Timeout,
		},
		logger: logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch issues one GET against url and classifies the result.
// Any failure is logged once and reported through the outcome, never as a panic or retry.
func (c *NWSClient) Fetch(ctx context.Context, url string) types.FetchResult {
	log := c.logger.WithFields(logrus.Fields{
		"url":        url,
		"request_id": uuid.NewString(),
	})

	httpClient := transport.NewClient(c.transport)
	defer httpClient.HTTPClient.CloseIdleConnections()

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		log.WithError(err).Error("Failed to build NWS request")
		return types.FetchResult{Outcome: types.OutcomeTransportError, Err: err}
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		if resp != nil {
			resp.Body.Close()
		}
		log.WithError(err).Error("NWS request failed")
		return types.FetchResult{Outcome: types.OutcomeTransportError, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		log.WithField("status", resp.StatusCode).Error("NWS API returned an HTTP error")
		return types.FetchResult{Outcome: types.OutcomeHTTPError, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.WithError(err).Error("Failed to read NWS response body")
		return types.FetchResult{Outcome: types.OutcomeTransportError, StatusCode: resp.StatusCode, Err: err}
	}

	if !json.Valid(body) {
		log.WithField("status", resp.StatusCode).Error("NWS response is not valid JSON")
		return types.FetchResult{
			Outcome:    types.OutcomeDecodeError,
			StatusCode: resp.StatusCode,
			Err:        errInvalidJSON,
			Payload:    body,
		}
	}

	log.WithField("status", resp.StatusCode).Debug("Fetched NWS response")
	return types.FetchResult{Outcome: types.OutcomeOK, StatusCode: resp.StatusCode, Payload: body}
}

// ActiveAlerts looks up active alerts for state. The code is not normalized or validated.
func (c *NWSClient) ActiveAlerts(ctx context.Context, state string) types.AlertsResult {
	url := c.AlertsURL(state)

	fetched := c.Fetch(ctx, url)
	payload, ok := fetched.Value()
	if !ok {
		return types.AlertsResult{
			Outcome:    fetched.Outcome,
			StatusCode: fetched.StatusCode,
			Err:        fetched.Err,
		}
	}

	var collection types.AlertCollection
	if err := json.Unmarshal(payload, &collection); err != nil {
		c.logger.WithFields(logrus.Fields{"url": url, "error": err}).
			Error("NWS response is not an alert collection")
		return types.AlertsResult{
			Outcome:    types.OutcomeDecodeError,
			StatusCode: fetched.StatusCode,
			Err:        err,
		}
	}

	if len(collection.Features) == 0 {
		return types.AlertsResult{Outcome: types.OutcomeEmpty, StatusCode: fetched.StatusCode}
	}

	c.logger.WithFields(logrus.Fields{"url": url, "count": len(collection.Features)}).
		Debug("Decoded active alerts")
	return types.AlertsResult{
		Outcome:    types.OutcomeOK,
		StatusCode: fetched.StatusCode,
		Alerts:     collection,
	}
}

// AlertsURL returns the active alerts URL for state
func (c *NWSClient) AlertsURL(state string) string {
	return c.baseURL + AlertsActiveAreaPath + state
}
