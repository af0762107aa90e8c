// Package massive is a thin REST client for the Massive.com market data
// API. Every endpoint method returns the raw JSON payload so callers can
// re-shape it without an intermediate decode.
package massive

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const DefaultBaseURL = "https://api.massive.com"

const defaultUserAgent = "massive-gateway/1.0"

// maxResponseBytes caps upstream payload reads (50k records of bars fit
// comfortably below this).
const maxResponseBytes = 64 << 20

type Client struct {
	baseURL   string
	apiKey    string
	userAgent string
	http      *http.Client
}

type Option func(*Client)

func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if strings.TrimSpace(baseURL) != "" {
			c.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if strings.TrimSpace(ua) != "" {
			c.userAgent = ua
		}
	}
}

func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL:   DefaultBaseURL,
		apiKey:    strings.TrimSpace(apiKey),
		userAgent: defaultUserAgent,
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// APIKeyConfigured reports whether the client holds a non-empty key.
func (c *Client) APIKeyConfigured() bool {
	return c.apiKey != ""
}

func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read response %s: %w", path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newStatusError(resp.StatusCode, body)
	}

	return body, nil
}

func newStatusError(statusCode int, body []byte) *StatusError {
	se := &StatusError{StatusCode: statusCode}

	var parsed struct {
		Status    string `json:"status"`
		Error     string `json:"error"`
		Message   string `json:"message"`
		RequestID string `json:"request_id"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil {
		se.Message = parsed.Error
		if se.Message == "" {
			se.Message = parsed.Message
		}
		se.RequestID = parsed.RequestID
	}
	if se.Message == "" {
		se.Message = http.StatusText(statusCode)
	}

	return se
}
