// Package api is the HTTP client for the remote commerce API. One method
// per operation the orchestration layer depends on; JSON in and out except
// Charge, where only the status code is meaningful.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const maxResponseBytes = 5 * 1024 * 1024

// Client talks to a commerce API rooted at a base URL.
type Client struct {
	base  string
	token string
	http  *http.Client
}

// New creates a client. token may be empty for anonymous storefronts.
func New(baseURL, token string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		base:  baseURL,
		token: token,
		http:  &http.Client{Timeout: timeout},
	}
}

// do executes one request and decodes a 2xx JSON body into out (when out
// is non-nil). The status code is always returned so callers can treat
// specific non-2xx statuses as first-class outcomes.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) (int, error) {
	u := c.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return 0, fmt.Errorf("create request %s %s: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return resp.StatusCode, fmt.Errorf("read %s %s: %w", method, path, err)
	}

	if out != nil && resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if err := json.Unmarshal(data, out); err != nil {
			return resp.StatusCode, fmt.Errorf("decode %s %s: %w", method, path, err)
		}
	}
	return resp.StatusCode, nil
}

// statusErr converts an unexpected status into an error.
func statusErr(status int, op string) error {
	return fmt.Errorf("%s: unexpected status %d", op, status)
}

func wantOK(status int, op string, err error) error {
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return statusErr(status, op)
	}
	return nil
}
