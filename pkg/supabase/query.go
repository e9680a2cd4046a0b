package supabase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// Query builds a filtered, ordered range read against a single table.
// Not safe for concurrent use; build one per request.
type Query struct {
	client *Client
	table  string
	params url.Values

	hasRange bool
	from, to int
}

func newQuery(c *Client, table string) *Query {
	params := url.Values{}
	params.Set("select", "*")
	return &Query{
		client: c,
		table:  table,
		params: params,
	}
}

// Eq constrains the query to rows where column equals value.
func (q *Query) Eq(column, value string) *Query {
	q.params.Set(column, "eq."+value)
	return q
}

// OrderDesc orders results by column, newest first.
func (q *Query) OrderDesc(column string) *Query {
	q.params.Set("order", column+".desc")
	return q
}

// OrderAsc orders results by column ascending.
func (q *Query) OrderAsc(column string) *Query {
	q.params.Set("order", column+".asc")
	return q
}

// Range restricts results to the half-open item window [from, to]
// (inclusive indexes, PostgREST convention).
func (q *Query) Range(from, to int) *Query {
	q.hasRange = true
	q.from, q.to = from, to
	return q
}

// Get executes the query and decodes the result set into dest, which must
// be a pointer to a slice.
func (q *Query) Get(ctx context.Context, dest any) error {
	reqURL := fmt.Sprintf("%s/rest/v1/%s?%s", q.client.baseURL, q.table, q.params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("supabase: build request: %w", err)
	}
	q.client.setHeaders(req)
	if q.hasRange {
		req.Header.Set("Range-Unit", "items")
		req.Header.Set("Range", fmt.Sprintf("%d-%d", q.from, q.to))
	}

	resp, err := q.client.http.Do(req)
	if err != nil {
		return fmt.Errorf("supabase: query %s: %w", q.table, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeAPIError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("supabase: decode %s result: %w", q.table, err)
	}
	return nil
}
