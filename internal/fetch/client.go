package fetch

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultUserAgent = "manga-novels-feed (+https://github.com/hanazuki/manga-novels-feed)"

// TransportError wraps any upstream call that did not yield a 2xx body:
// connection failures, timeouts, and non-success statuses alike. No retry
// happens at this layer.
type TransportError struct {
	URL    string
	Status int
	Err    error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.Status)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Client performs outbound HTTP against provider endpoints with a fixed
// identifying User-Agent on every call.
type Client struct {
	http      *http.Client
	userAgent string
}

// NewClient wires an HTTP client; a nil client gets a 20s timeout default
// and an empty userAgent falls back to the project's identifying header.
func NewClient(client *http.Client, userAgent string) *Client {
	if client == nil {
		client = &http.Client{Timeout: 20 * time.Second}
	}
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	return &Client{http: client, userAgent: userAgent}
}

// Get fetches url and returns the response body.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	return c.do(ctx, http.MethodGet, url, nil)
}

// Post sends a JSON body to url and returns the response body.
func (c *Client) Post(ctx context.Context, url string, body []byte) ([]byte, error) {
	return c.do(ctx, http.MethodPost, url, body)
}

func (c *Client) do(ctx context.Context, method, url string, body []byte) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, &TransportError{URL: url, Err: err}
	}
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &TransportError{URL: url, Status: resp.StatusCode}
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{URL: url, Err: err}
	}
	return payload, nil
}
