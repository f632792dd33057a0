// Package supabase is the adapter to the managed Supabase backend: GoTrue
// for token verification and PostgREST for table access. All persistence and
// token cryptography live on the Supabase side; this package only speaks the
// two HTTP APIs and maps their failures into the domain error taxonomy.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tradingdash/journal-api/internal/api/metrics"
)

const defaultTimeout = 10 * time.Second

// Client is the process-wide handle to the Supabase project, shared by the
// auth verifier and the table repositories. It is constructed once at startup
// and injected; there is no lazy re-creation.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// Config captures the settings required to reach a Supabase project.
type Config struct {
	URL     string
	AnonKey string
	Timeout time.Duration
}

// New validates the credentials and returns a ready Client. The timeout
// bounds every outbound call so a hung Supabase endpoint cannot hang requests
// indefinitely.
func New(cfg Config) (*Client, error) {
	if cfg.URL == "" || cfg.AnonKey == "" {
		return nil, errors.New("supabase: url and anon key are required")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.URL, "/"),
		apiKey:  cfg.AnonKey,
		http:    &http.Client{Timeout: timeout},
	}, nil
}

// apiError is a non-2xx response from PostgREST.
type apiError struct {
	Status int
	Body   string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("supabase: status %d: %s", e.Status, e.Body)
}

// rest performs a PostgREST request against /rest/v1/<table> and decodes the
// response into out when non-nil. Mutations ask for return=representation so
// affected rows come back and a zero-row result is detectable by the caller.
func (c *Client) rest(ctx context.Context, method, table string, query url.Values, body, out any) error {
	var payload io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("supabase: encode %s body: %w", table, err)
		}
		payload = bytes.NewReader(buf)
	}

	endpoint := c.baseURL + "/rest/v1/" + table
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, payload)
	if err != nil {
		return fmt.Errorf("supabase: build %s request: %w", table, err)
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if method != http.MethodGet {
		req.Header.Set("Prefer", "return=representation")
	}

	operation := strings.ToLower(method) + " " + table
	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.SupabaseRequestDuration.WithLabelValues("rest", operation).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.SupabaseErrorsTotal.WithLabelValues("rest").Inc()
		return fmt.Errorf("supabase: %s: %w", operation, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("supabase: read %s response: %w", table, err)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		metrics.SupabaseErrorsTotal.WithLabelValues("rest").Inc()
		return &apiError{Status: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("supabase: decode %s response: %w", table, err)
		}
	}
	return nil
}

// eq renders a PostgREST equality filter value.
func eq(value string) string {
	return "eq." + value
}
