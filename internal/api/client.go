// Package api implements the HTTP boundary to the pharmacy inventory
// service. It exposes a single read operation that fetches the full tablet
// collection; pagination, filtering, and sorting are not part of the wire
// contract.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/rxdesk/rxdesk/internal/logging"
	"github.com/rxdesk/rxdesk/internal/tablet"
)

// requestIDHeader carries a per-request correlation ID so server and client
// logs can be matched.
const requestIDHeader = "X-Request-ID"

// StatusError represents a non-2xx response from the inventory service.
type StatusError struct {
	Code   int
	Status string
}

// Error returns a message that includes the numeric status code.
func (e *StatusError) Error() string {
	return fmt.Sprintf("inventory service returned %d %s", e.Code, e.Status)
}

// Client talks to the inventory service.
type Client struct {
	// BaseURL is the full tablets collection endpoint.
	BaseURL string
	// HTTPClient performs the requests. Tests may override it to point at
	// an httptest server.
	HTTPClient *http.Client

	logger zerolog.Logger
}

// NewClient creates a Client for the given collection endpoint. The default
// transport enforces no timeout: a fetch waits until the transport resolves
// or the caller's context is cancelled.
func NewClient(baseURL string, logger zerolog.Logger) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 0},
		logger:     logging.ComponentLogger(logger, "api"),
	}
}

// collectionEnvelope is the wrapped response shape, kept for forward and
// backward compatibility with servers that nest the array under "records".
type collectionEnvelope struct {
	Records []tablet.Tablet `json:"records"`
}

// ListTablets fetches the full tablet collection. The response body may be a
// bare JSON array or an object wrapping the array under a "records" key;
// both decode identically. Transport failures, non-2xx statuses, and decode
// failures are all returned as errors; non-2xx statuses are a *StatusError.
func (c *Client) ListTablets(ctx context.Context) ([]tablet.Tablet, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building tablets request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	requestID := uuid.NewString()
	req.Header.Set(requestIDHeader, requestID)

	start := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.logger.Error().Ctx(ctx).
			Str("request_id", requestID).
			Err(err).
			Msg("tablets fetch failed")
		return nil, fmt.Errorf("fetching tablets: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		statusErr := &StatusError{Code: resp.StatusCode, Status: http.StatusText(resp.StatusCode)}
		c.logger.Error().Ctx(ctx).
			Str("request_id", requestID).
			Int("status", resp.StatusCode).
			Msg("tablets fetch returned non-success status")
		return nil, statusErr
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading tablets response: %w", err)
	}

	tablets, err := DecodeCollection(body)
	if err != nil {
		c.logger.Error().Ctx(ctx).
			Str("request_id", requestID).
			Err(err).
			Msg("tablets response body is not valid JSON")
		return nil, err
	}

	c.logger.Debug().Ctx(ctx).
		Str("request_id", requestID).
		Int("count", len(tablets)).
		Dur("elapsed", time.Since(start)).
		Msg("tablets fetched")

	return tablets, nil
}

// DecodeCollection accepts either a bare array or a {"records": [...]}
// envelope and returns the contained tablets.
func DecodeCollection(body []byte) ([]tablet.Tablet, error) {
	var bare []tablet.Tablet
	if err := json.Unmarshal(body, &bare); err == nil {
		return bare, nil
	}

	var wrapped collectionEnvelope
	if err := json.Unmarshal(body, &wrapped); err == nil && wrapped.Records != nil {
		return wrapped.Records, nil
	}

	return nil, errors.New("decoding tablets response: body is neither an array nor a records envelope")
}
