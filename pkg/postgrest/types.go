package postgrest

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Config configures a Client.
type Config struct {
	URL     string
	APIKey  string
	Timeout time.Duration
}

// InsertOptions tunes an insert. OnConflict names the columns of the unique
// constraint; with IgnoreDuplicates set, conflicting rows are skipped.
type InsertOptions struct {
	OnConflict       string
	IgnoreDuplicates bool
}

// APIError is returned for any non-2xx response.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("postgrest API error %d: %s", e.StatusCode, e.Body)
}

// Query accumulates PostgREST query parameters.
type Query struct {
	values url.Values
}

// NewQuery returns an empty Query.
func NewQuery() *Query {
	return &Query{values: url.Values{}}
}

// Select restricts the returned columns.
func (q *Query) Select(columns string) *Query {
	q.values.Set("select", columns)
	return q
}

// Eq adds a column=eq.value filter.
func (q *Query) Eq(column, value string) *Query {
	q.values.Add(column, "eq."+value)
	return q
}

// Lt adds a column=lt.value filter.
func (q *Query) Lt(column, value string) *Query {
	q.values.Add(column, "lt."+value)
	return q
}

// In adds a column=in.(v1,v2) filter.
func (q *Query) In(column string, values []string) *Query {
	q.values.Add(column, "in.("+strings.Join(values, ",")+")")
	return q
}

// Order sorts by column, descending when desc is set.
func (q *Query) Order(column string, desc bool) *Query {
	dir := "asc"
	if desc {
		dir = "desc"
	}
	q.values.Set("order", column+"."+dir)
	return q
}

// Limit caps the number of returned rows.
func (q *Query) Limit(n int) *Query {
	q.values.Set("limit", fmt.Sprint(n))
	return q
}

// Encode renders the query string.
func (q *Query) Encode() string {
	if q == nil {
		return ""
	}
	return q.values.Encode()
}
