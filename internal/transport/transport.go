package transport

import (
	"context"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

const (
	// AcceptGeoJSON is the media type requested from the NWS API.
	AcceptGeoJSON = "application/geo+json"
)

// Options configures the HTTP client built for a single upstream request
type Options struct {
	UserAgent string
	Timeout   time.Duration

	// Base is the underlying round tripper. When nil, each client gets
	// its own clone of http.DefaultTransport.
	Base http.RoundTripper
}

// NewClient creates a transient client that makes exactly one attempt per request.
// Callers release it with CloseIdleConnections on the embedded HTTPClient.
func NewClient(opts Options) *retryablehttp.Client {
	base := opts.Base
	if base == nil {
		base = http.DefaultTransport.(*http.Transport).Clone()
	}

	client := retryablehttp.NewClient()
	client.Logger = nil
	client.RetryMax = 0
	client.CheckRetry = noRetry
	client.ErrorHandler = retryablehttp.PassthroughErrorHandler
	client.HTTPClient = &http.Client{
		Transport: &HeaderTransport{
			Base:      base,
			UserAgent: opts.UserAgent,
		},
		Timeout: opts.Timeout,
	}
	return client
}

// noRetry never asks for another attempt; status handling is left to the caller
func noRetry(ctx context.Context, _ *http.Response, _ error) (bool, error) {
	return false, ctx.Err()
}

// HeaderTransport sets the fixed NWS headers on every outgoing request
type HeaderTransport struct {
	Base      http.RoundTripper
	UserAgent string
}

// RoundTrip implements http.RoundTripper
func (t *HeaderTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("User-Agent", t.UserAgent)
	req.Header.Set("Accept", AcceptGeoJSON)

	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(req)
}

// CloseIdleConnections releases idle connections held by the base transport
func (t *HeaderTransport) CloseIdleConnections() {
	type closeIdler interface {
		CloseIdleConnections()
	}
	if c, ok := t.Base.(closeIdler); ok {
		c.CloseIdleConnections()
	}
}
