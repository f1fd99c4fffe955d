package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"discountapi/internal/config"
)

// Package directory wraps the upstream member directory service. Each lookup
// issues exactly one outbound request; there is no retry and no caching, so
// failures always surface to the caller.

// NameFetcher resolves a directory ID to the member's display name.
type NameFetcher interface {
	// FetchName returns the display name recorded for the given directory ID.
	FetchName(ctx context.Context, id int64) (string, error)
}

// Client is an HTTP implementation of NameFetcher.
// It is safe for concurrent use by multiple goroutines.
type Client struct {
	baseURL string
	http    *http.Client
}

var _ NameFetcher = (*Client)(nil)

// NewClient constructs a directory client against the configured base URL.
// Outbound requests are traced via otelhttp.
func NewClient(cfg config.DirectoryConfig) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("directory base url is required")
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("invalid directory base url: %w", err)
	}

	timeout := time.Duration(cfg.TimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	return &Client{
		baseURL: cfg.BaseURL,
		http: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}, nil
}

// userPayload is the subset of the upstream response we care about.
type userPayload struct {
	Name string `json:"name"`
}

// FetchName issues GET {base}/users/{id} and extracts the name field.
func (c *Client) FetchName(ctx context.Context, id int64) (string, error) {
	u := fmt.Sprintf("%s/users/%d", c.baseURL, id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", fmt.Errorf("build directory request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("directory request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", fmt.Errorf("directory user %d: %w", id, ErrUserNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("directory returned status %d", resp.StatusCode)
	}

	var p userPayload
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return "", fmt.Errorf("decode directory response: %w", err)
	}
	if p.Name == "" {
		return "", fmt.Errorf("directory user %d has no name", id)
	}
	return p.Name, nil
}
