// Package rest consumes the remote CRM API: one resource per entity
// collection, JSON bodies that may arrive bare or wrapped in a data
// envelope, and an optional bearer token on every request. Transport
// failures surface to the caller as *HTTPError; the package never
// retries or recovers them itself.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// HTTPError is a non-2xx response: status code, request URL, and the
// parsed error payload when the body carried one.
type HTTPError struct {
	Status  int
	URL     string
	Message string
	Payload json.RawMessage
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s: %d %s", e.URL, e.Status, e.Message)
}

// Client talks to one API base URL.
type Client struct {
	base  string
	token string
	hc    *http.Client
	log   zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithToken sets the bearer token attached to every request. An empty
// token means requests go out unauthenticated; they are still attempted.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.hc = hc }
}

// WithLogger sets the request logger.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// New builds a client for the given base URL (trailing slash tolerated).
func New(base string, opts ...Option) *Client {
	c := &Client{
		base: strings.TrimRight(base, "/"),
		hc:   &http.Client{Timeout: 10 * time.Second},
		log:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// do runs one request. A non-nil out receives the decoded response body,
// unwrapped from a {"data": ...} envelope when the server uses one.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	url := c.base + "/" + strings.TrimLeft(path, "/")

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	c.log.Debug().Str("method", method).Str("url", url).Msg("request")

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, url, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newHTTPError(resp, url, raw)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent || len(raw) == 0 {
		return nil
	}
	if err := decodeEnvelope(raw, out); err != nil {
		return fmt.Errorf("decoding response from %s: %w", url, err)
	}
	return nil
}

// newHTTPError extracts the most useful message the error body offers:
// a message/error field from a JSON payload, or the raw text.
func newHTTPError(resp *http.Response, url string, raw []byte) *HTTPError {
	e := &HTTPError{
		Status:  resp.StatusCode,
		URL:     url,
		Message: resp.Status,
	}
	if len(raw) == 0 {
		return e
	}
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if json.Unmarshal(raw, &payload) == nil {
		e.Payload = json.RawMessage(raw)
		switch {
		case payload.Message != "":
			e.Message = payload.Message
		case payload.Error != "":
			e.Message = payload.Error
		}
	} else {
		e.Message = strings.TrimSpace(string(raw))
	}
	return e
}

// decodeEnvelope accepts both response shapes the API is allowed to
// produce: a bare value, or the value wrapped as {"data": ...}.
func decodeEnvelope(raw []byte, out any) error {
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &env); err == nil && len(env.Data) > 0 {
		return json.Unmarshal(env.Data, out)
	}
	return json.Unmarshal(raw, out)
}

// Health is the health-check response.
type Health struct {
	OK bool   `json:"ok"`
	TS string `json:"ts"`
}

// Ping checks the API's health endpoint.
func (c *Client) Ping(ctx context.Context) (Health, error) {
	var h Health
	err := c.do(ctx, http.MethodGet, "/health", nil, &h)
	return h, err
}
