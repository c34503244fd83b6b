// Package fetch is the HTTP transport for the page scrapers: a GET that
// returns the body bytes and treats any non-200 status as an error carrying
// the status code and requested URL.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	UserAgent = "templepages/1.0 (github.com/pfrederiksen/templepages)"
	Timeout   = 30 * time.Second
)

// Client fetches a page body. Implementations other than HTTPClient exist
// only in tests.
type Client interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// StatusError is returned for any non-200 response.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code %d fetching %s", e.Code, e.URL)
}

// HTTPClient is the production transport.
type HTTPClient struct {
	client    *http.Client
	userAgent string
}

// NewHTTPClient creates a transport with the default timeout and user agent.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{
		client:    &http.Client{Timeout: Timeout},
		userAgent: UserAgent,
	}
}

// Get fetches url and returns the response body. Connection errors and
// non-200 statuses are the caller's signal to fall back to cached content.
func (c *HTTPClient) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{URL: url, Code: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading body: %w", err)
	}
	return body, nil
}
