package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

// pagina is the DRF-style envelope list endpoints return when ?limit= is set.
type pagina struct {
	Count    int             `json:"count"`
	Next     *string         `json:"next"`
	Previous *string         `json:"previous"`
	Results  json.RawMessage `json:"results"`
}

// FetchAll assembles a complete collection from a page-limited endpoint,
// following next links and concatenating results in server order. Endpoints
// that return a bare JSON array count as a single page.
//
// The walk stops with an error when a next pointer does not parse, when it
// fails to advance, or after c.MaxPages pages. If a request fails mid-walk
// the items gathered so far are returned alongside the error, so the caller
// can decide between partial data and nothing.
func FetchAll[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	var items []T

	next, err := c.resolve(trimSlashPrefix(path))
	if err != nil {
		return nil, err
	}

	maxPages := c.MaxPages
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}

	for page := 0; next != ""; page++ {
		if page >= maxPages {
			return items, fmt.Errorf("pagination exceeded %d pages at %s", maxPages, next)
		}

		body, err := c.get(ctx, next)
		if err != nil {
			return items, err
		}

		body = bytes.TrimSpace(body)
		if len(body) > 0 && body[0] == '[' {
			// Unpaginated endpoint: the whole collection in one array
			var batch []T
			if err := json.Unmarshal(body, &batch); err != nil {
				return items, fmt.Errorf("decoding %s: %w", next, err)
			}
			return append(items, batch...), nil
		}

		var pg pagina
		if err := json.Unmarshal(body, &pg); err != nil {
			return items, fmt.Errorf("decoding %s: %w", next, err)
		}
		if len(pg.Results) > 0 {
			var batch []T
			if err := json.Unmarshal(pg.Results, &batch); err != nil {
				return items, fmt.Errorf("decoding results of %s: %w", next, err)
			}
			items = append(items, batch...)
		}

		if pg.Next == nil || *pg.Next == "" {
			break
		}
		resolved, err := c.resolve(*pg.Next)
		if err != nil {
			return items, err
		}
		if _, err := url.ParseRequestURI(resolved); err != nil {
			return items, fmt.Errorf("malformed next pointer %q: %w", *pg.Next, err)
		}
		if resolved == next {
			return items, fmt.Errorf("next pointer %q does not advance", resolved)
		}
		next = resolved
	}

	return items, nil
}

func trimSlashPrefix(s string) string {
	for len(s) > 0 && s[0] == '/' {
		s = s[1:]
	}
	return s
}
