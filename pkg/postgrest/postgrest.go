package postgrest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Client is a thin HTTP wrapper around a Supabase PostgREST endpoint.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// New creates a new PostgREST client. cfg.URL is the project URL; the REST
// path is appended automatically.
func New(cfg Config) (*Client, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("postgrest: URL is required")
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("postgrest: API key is required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.URL, "/") + RestPath,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

// Select runs GET /<table>?<query> and decodes the JSON array into out.
func (c *Client) Select(ctx context.Context, table string, q *Query, out any) error {
	return c.do(ctx, http.MethodGet, table, q, nil, nil, out)
}

// Insert runs POST /<table> with body (an object or array) and decodes the
// inserted rows into out when out is non-nil.
func (c *Client) Insert(ctx context.Context, table string, body any, opt InsertOptions, out any) error {
	var q *Query
	prefer := []string{c.returnPref(out)}
	if opt.OnConflict != "" {
		q = NewQuery()
		q.values.Set("on_conflict", opt.OnConflict)
	}
	if opt.IgnoreDuplicates {
		prefer = append(prefer, preferIgnoreDuplicates)
	}
	return c.do(ctx, http.MethodPost, table, q, body, prefer, out)
}

// Update runs PATCH /<table>?<query> with the given column values.
func (c *Client) Update(ctx context.Context, table string, q *Query, body any, out any) error {
	return c.do(ctx, http.MethodPatch, table, q, body, []string{c.returnPref(out)}, out)
}

// Delete runs DELETE /<table>?<query>.
func (c *Client) Delete(ctx context.Context, table string, q *Query) error {
	return c.do(ctx, http.MethodDelete, table, q, nil, nil, nil)
}

func (c *Client) returnPref(out any) string {
	if out == nil {
		return preferMinimal
	}
	return preferRepresentation
}

func (c *Client) do(ctx context.Context, method, table string, q *Query, body any, prefer []string, out any) error {
	url := fmt.Sprintf("%s/%s", c.baseURL, table)
	if enc := q.Encode(); enc != "" {
		url += "?" + enc
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal %s request: %w", table, err)
		}
		reader = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("failed to build %s request: %w", table, err)
	}
	httpReq.Header.Set(headerAPIKey, c.apiKey)
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if len(prefer) > 0 {
		httpReq.Header.Set(headerPrefer, strings.Join(prefer, ","))
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call postgrest %s %s: %w", method, table, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return &APIError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", table, err)
	}
	return nil
}
