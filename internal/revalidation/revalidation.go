// Package revalidation pings deployed site frontends after a publish so
// they refetch the live content bundle. Strictly best effort: failures are
// logged and never fail the publish.
package revalidation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"log/slog"

	"github.com/kyctrust/kyctrust-manager/internal/broadcast"
)

type Config struct {
	// Endpoints are frontend base URLs exposing /api/revalidate.
	Endpoints        []string      `mapstructure:"endpoints"`
	RevalidateSecret string        `mapstructure:"revalidate_secret"`
	HTTPTimeout      time.Duration `mapstructure:"http_timeout"`
}

type Revalidator struct {
	c      *Config
	client *http.Client
}

func New(c *Config) *Revalidator {
	timeout := c.HTTPTimeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Revalidator{
		c:      c,
		client: &http.Client{Timeout: timeout},
	}
}

// RevalidateAll notifies every configured frontend about ev.
func (v *Revalidator) RevalidateAll(ctx context.Context, ev broadcast.Event) {
	for _, endpoint := range v.c.Endpoints {
		if err := v.revalidate(ctx, endpoint, ev); err != nil {
			slog.Default().ErrorContext(ctx, "revalidation failed",
				"endpoint", endpoint,
				"error", err,
			)
		}
	}
}

func (v *Revalidator) revalidate(ctx context.Context, endpoint string, ev broadcast.Event) error {
	u, err := url.Parse(endpoint)
	if err != nil {
		return fmt.Errorf("bad endpoint %q: %w", endpoint, err)
	}
	u.Path = "/api/revalidate"
	q := u.Query()
	q.Set("secret", v.c.RevalidateSecret)
	u.RawQuery = q.Encode()

	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to marshal revalidation event: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), bytes.NewBuffer(payload))
	if err != nil {
		return fmt.Errorf("failed to create POST request to %s: %w", endpoint, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := v.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to POST to %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body from %s: %w", endpoint, err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("revalidate failed for %s (status %d): %s", endpoint, resp.StatusCode, string(body))
	}

	slog.Default().InfoContext(ctx, "revalidated", "endpoint", endpoint, "event", ev.Id)
	return nil
}
