// Package runner executes assembled example requests so a caller can
// try an operation against a live server.
package runner

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fedefreue/developers-agent-toolkit/internal/request"
)

// maxBodyBytes caps how much of a response body is captured.
const maxBodyBytes = 1 << 20

// Result reports the outcome of one executed request.
type Result struct {
	StatusCode   int
	ResponseTime time.Duration
	Body         []byte
}

// Runner executes assembled requests with a configurable timeout.
type Runner struct {
	client *http.Client
}

// New creates a runner. A non-positive timeout falls back to 30s.
func New(timeout time.Duration) *Runner {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Runner{
		client: &http.Client{Timeout: timeout},
	}
}

// Do converts the request representation into an HTTP request and
// executes it.
func (r *Runner) Do(ctx context.Context, req *request.Request) (*Result, error) {
	var body io.Reader
	if req.HasBody {
		data, err := req.BodyJSON()
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", "developers-agent-toolkit/1.0")
	for _, header := range req.Headers {
		name, value, ok := strings.Cut(header, ": ")
		if !ok {
			continue
		}
		httpReq.Header.Set(name, value)
	}

	start := time.Now()
	resp, err := r.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	return &Result{
		StatusCode:   resp.StatusCode,
		ResponseTime: time.Since(start),
		Body:         data,
	}, nil
}
