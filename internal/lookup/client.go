package lookup

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client fetches operation data from a remote lookup service.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a lookup client with a configurable timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// Operations fetches the raw operations payload for a specification.
func (c *Client) Operations(ctx context.Context, specID string) ([]byte, error) {
	return c.get(ctx, fmt.Sprintf("%s/specs/%s/operations", c.baseURL, url.PathEscape(specID)))
}

// Operation fetches one operation's document.
func (c *Client) Operation(ctx context.Context, specID, method, path string) ([]byte, error) {
	query := url.Values{}
	query.Set("method", method)
	query.Set("path", path)
	return c.get(ctx, fmt.Sprintf("%s/specs/%s/operation?%s", c.baseURL, url.PathEscape(specID), query.Encode()))
}

func (c *Client) get(ctx context.Context, u string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: %s returned %s", ErrUpstream, u, resp.Status)
	}
	return body, nil
}
