package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Config holds connection settings for the hosted backend.
type Config struct {
	URL            string        `env:"SUPABASE_URL,required"`
	APIKey         string        `env:"SUPABASE_ANON_KEY,required"`
	RequestTimeout time.Duration `env:"SUPABASE_REQUEST_TIMEOUT" envDefault:"15s"`
}

// Client talks to the hosted backend's REST API. Safe for concurrent use.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.http = httpClient
		}
	}
}

// New creates a backend client from config.
func New(cfg Config, opts ...Option) (*Client, error) {
	if cfg.URL == "" || cfg.APIKey == "" {
		return nil, ErrInvalidConfig
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	c := &Client{
		baseURL: strings.TrimSuffix(cfg.URL, "/"),
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// From starts a query against the given table.
func (c *Client) From(table string) *Query {
	return newQuery(c, table)
}

// Insert adds a record to the given table. The backend assigns server-side
// columns (id, created_at); nothing is returned on success.
func (c *Client) Insert(ctx context.Context, table string, record any) error {
	body, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("supabase: encode record: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		fmt.Sprintf("%s/rest/v1/%s", c.baseURL, table), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("supabase: build request: %w", err)
	}
	c.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "return=minimal")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("supabase: insert into %s: %w", table, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeAPIError(resp)
	}
	return nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
}

// decodeAPIError reads the PostgREST error body {code,message,details,hint}.
// A body that does not parse still yields a usable APIError with the HTTP
// status.
func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Message:    http.StatusText(resp.StatusCode),
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err == nil && len(body) > 0 {
		var parsed struct {
			Code    string `json:"code"`
			Message string `json:"message"`
			Details string `json:"details"`
			Hint    string `json:"hint"`
		}
		if json.Unmarshal(body, &parsed) == nil {
			if parsed.Message != "" {
				apiErr.Message = parsed.Message
			}
			apiErr.Code = parsed.Code
			apiErr.Details = parsed.Details
			apiErr.Hint = parsed.Hint
		}
	}

	return apiErr
}
