// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/playbymail/paleoparse/table"
)

// Client queries a remote search service over HTTP GET and folds its JSON
// response into a table.Table. It performs no parsing of its own — the
// service is assumed to return a JSON list of hits, each a map of fields.
type Client struct {
	baseURL string
	http    *http.Client
}

// Option configures a Client at construction time.
type Option func(*Client) error

// New builds a Client against baseURL, applying any options.
func New(baseURL string, options ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("search: missing base url")
	}
	c := &Client{baseURL: baseURL, http: &http.Client{Timeout: 10 * time.Second}}
	for _, opt := range options {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// WithHTTPClient overrides the underlying *http.Client, e.g. in tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		c.http = hc
		return nil
	}
}

// hit is one row of the search service's JSON response.
type hit struct {
	Fields map[string]string `json:"fields"`
}

type response struct {
	Hits []hit `json:"hits"`
}

// Query issues a search and folds the response into a Table. Every
// outbound request is stamped with a fresh opaque request id (returned
// alongside the table) for log correlation.
func Query(ctx context.Context, c *Client, q string) (requestID string, tbl *table.Table, err error) {
	requestID = uuid.NewString()

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return requestID, nil, fmt.Errorf("search: %w", err)
	}
	qs := u.Query()
	qs.Set("q", q)
	qs.Set("request_id", requestID)
	u.RawQuery = qs.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return requestID, nil, fmt.Errorf("search: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return requestID, nil, fmt.Errorf("search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return requestID, nil, fmt.Errorf("search: %s: status %d", q, resp.StatusCode)
	}

	var body response
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return requestID, nil, fmt.Errorf("search: decode: %w", err)
	}

	return requestID, fold(body, q), nil
}

// fold flattens hits into a Table: the sorted union of field names becomes
// the column list (JSON object key order is not preserved by
// encoding/json's map decoding, so a stable order has to be imposed here),
// each hit becomes one row, missing fields are null.
func fold(body response, query string) *table.Table {
	seen := map[string]bool{}
	for _, h := range body.Hits {
		for k := range h.Fields {
			seen[k] = true
		}
	}
	cols := make([]string, 0, len(seen))
	for k := range seen {
		cols = append(cols, k)
	}
	sort.Strings(cols)

	colSpecs := make([]table.ColumnSpec, len(cols))
	for i, name := range cols {
		colSpecs[i] = table.ColumnSpec{Name: name}
	}

	rows := make([]table.Row, len(body.Hits))
	for i, h := range body.Hits {
		row := table.NullRow(len(cols))
		for j, name := range cols {
			if v, ok := h.Fields[name]; ok {
				v := v
				row[j] = &v
			}
		}
		rows[i] = row
	}

	return &table.Table{
		Columns: colSpecs,
		Rows:    rows,
		Attrs:   map[string]string{"query": query},
	}
}
