// internal/adapters/greenstay/client.go
package greenstay

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/Thanhthanh392003/LVTN-homestay/internal/adapters/observability"
)

// Client talks to the GreenStay reservation backend. Every call resolves to
// (payload, true) or (nil, false): transport errors, timeouts, undecodable
// bodies and non-2xx statuses all collapse into the false case, so handlers
// have exactly one failure branch to implement. Failures are logged for
// operability only.
type Client struct {
	base string
	hc   *http.Client
	rl   *rate.Limiter
}

func New(base string, timeout time.Duration, rps int) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if rps <= 0 {
		rps = 5
	}
	return &Client{
		base: strings.TrimRight(base, "/"),
		hc:   &http.Client{Timeout: timeout},
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
	}
}

func (c *Client) Get(ctx context.Context, path string, query url.Values, headers map[string]string) (map[string]any, bool) {
	u := c.url(path)
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("greenstay: build request failed")
		return nil, false
	}
	return c.do(req, path, headers)
}

func (c *Client) Post(ctx context.Context, path string, body any, headers map[string]string) (map[string]any, bool) {
	b, err := json.Marshal(body)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("greenstay: marshal body failed")
		return nil, false
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url(path), bytes.NewReader(b))
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("greenstay: build request failed")
		return nil, false
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, path, headers)
}

func (c *Client) url(path string) string {
	return c.base + "/" + strings.TrimLeft(path, "/")
}

func (c *Client) do(req *http.Request, endpoint string, headers map[string]string) (map[string]any, bool) {
	// client-side rate limiting
	if err := c.rl.Wait(req.Context()); err != nil {
		log.Warn().Err(err).Str("endpoint", endpoint).Msg("greenstay: limiter wait aborted")
		return nil, false
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "greenstay-bot/1.0")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal("greenstay", endpoint, 0, time.Since(start))
		log.Warn().Err(err).Str("endpoint", endpoint).Msg("greenstay: request failed")
		return nil, false
	}
	defer resp.Body.Close()
	observability.ObserveExternal("greenstay", endpoint, resp.StatusCode, time.Since(start))

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		var out map[string]any
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			log.Warn().Err(err).Str("endpoint", endpoint).Msg("greenstay: undecodable body")
			return nil, false
		}
		return out, true

	default:
		// drain a bounded amount so the connection can be reused
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		log.Warn().Int("status", resp.StatusCode).Str("endpoint", endpoint).Msg("greenstay: bad status")
		return nil, false
	}
}
