// Package lookup provides the operation lookup collaborator: sources
// that return a specification's operation summaries and one operation's
// full document as raw JSON. A remote HTTP service and a local OpenAPI
// file are supported.
package lookup

import (
	"context"
	"errors"
)

// ErrUpstream is returned when fetching from the lookup service fails.
// The failure is fatal to the caller; no retry happens at this layer.
var ErrUpstream = errors.New("upstream lookup failure")

// Source resolves operation data for a specification identifier.
type Source interface {
	// Operations returns the raw payload listing a specification's
	// operations, either an object with an "operations" array or a
	// bare array.
	Operations(ctx context.Context, specID string) ([]byte, error)

	// Operation returns one operation's document as JSON, located by
	// HTTP method and path template.
	Operation(ctx context.Context, specID, method, path string) ([]byte, error)
}
