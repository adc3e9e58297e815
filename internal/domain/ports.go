package domain

import (
	"context"
	"net/url"
)

// Gateway is the single fallible boundary to the reservation backend. The
// boolean is false whenever the call did not yield a decodable JSON object:
// transport error, timeout, undecodable body, or a status outside {200, 201}.
// It never returns an error; every handler composes on this one failure
// branch.
type Gateway interface {
	Get(ctx context.Context, path string, query url.Values, headers map[string]string) (map[string]any, bool)
	Post(ctx context.Context, path string, body any, headers map[string]string) (map[string]any, bool)
}
