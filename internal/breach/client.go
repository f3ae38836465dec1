// Package breach talks to the remote breach-checking backend.
package breach

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/Goofygiraffe06/breachcheck/internal/logging"
	"github.com/Goofygiraffe06/breachcheck/internal/models"
	"github.com/Goofygiraffe06/breachcheck/internal/utils"
	"go.uber.org/zap"
)

// Client posts check requests to a single endpoint. It never retries.
type Client struct {
	endpoint string
	http     *http.Client
	log      *zap.Logger
}

// Option configures the Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option { return func(c *Client) { c.http = hc } }

// WithTimeout sets the overall request timeout. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http = &http.Client{Timeout: d} }
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(l *zap.Logger) Option { return func(c *Client) { c.log = l } }

// NewClient creates a client for the given endpoint.
func NewClient(endpoint string, opts ...Option) *Client {
	c := &Client{
		endpoint: endpoint,
		http:     &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = logging.GetLogger()
	}
	return c
}

// Endpoint returns the URL requests are posted to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Check posts req as JSON and decodes the reply. The body is decoded before
// the status code is inspected, so an error reply that is not JSON (or is
// JSON null) is reported as a TransportError rather than an APIError.
func (c *Client) Check(ctx context.Context, req models.CheckRequest) (models.CheckResponse, error) {
	if err := validateEndpoint(c.endpoint); err != nil {
		return models.CheckResponse{}, &TransportError{Op: "build request", Err: err}
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return models.CheckResponse{}, &TransportError{Op: "encode request", Err: err}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return models.CheckResponse{}, &TransportError{Op: "build request", Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		return models.CheckResponse{}, &TransportError{Op: "send request", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.CheckResponse{}, &TransportError{Op: "read response", Err: err}
	}

	decoded, err := decodeResponse(body)
	if err != nil {
		return models.CheckResponse{}, &TransportError{Op: "decode response", Err: err}
	}

	c.log.Debug("check response received",
		zap.String("phone", utils.HashPhone(req.Phone)),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decoded, &APIError{StatusCode: resp.StatusCode, Message: decoded.Message}
	}
	return decoded, nil
}

func validateEndpoint(endpoint string) error {
	if endpoint == "" {
		return ErrInvalidEndpoint
	}
	u, err := url.Parse(endpoint)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEndpoint, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: unsupported scheme %q", ErrInvalidEndpoint, u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: missing host", ErrInvalidEndpoint)
	}
	return nil
}
