// Package client talks to the Badgers API the same way the web dashboard
// does: bearer token on every request, DRF-style pagination, and one
// wait-for-all round of fetches per dashboard load.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultMaxPages bounds the next-link walk so a malformed API cannot keep
// the fetcher looping forever.
const DefaultMaxPages = 50

// Client is an authenticated handle on the API. The token travels with the
// client explicitly; there is no package-level session state.
type Client struct {
	BaseURL  string // e.g. "http://127.0.0.1:8000/api"
	Token    string
	HTTP     *http.Client
	MaxPages int
}

func New(baseURL, token string) *Client {
	return &Client{
		BaseURL:  strings.TrimRight(baseURL, "/"),
		Token:    token,
		HTTP:     &http.Client{Timeout: 30 * time.Second},
		MaxPages: DefaultMaxPages,
	}
}

// resolve turns an API path or a server-given next link into a full URL.
func (c *Client) resolve(ref string) (string, error) {
	u, err := url.Parse(ref)
	if err != nil {
		return "", fmt.Errorf("bad url %q: %w", ref, err)
	}
	if u.IsAbs() {
		return u.String(), nil
	}
	base, err := url.Parse(c.BaseURL)
	if err != nil {
		return "", fmt.Errorf("bad base url %q: %w", c.BaseURL, err)
	}
	if strings.HasPrefix(ref, "/") {
		// Absolute path: keep only the host from the base
		u.Scheme = base.Scheme
		u.Host = base.Host
		return u.String(), nil
	}
	return c.BaseURL + "/" + ref, nil
}

// get performs one authorized GET and returns the raw body.
func (c *Client) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: %s", rawURL, resp.Status)
	}
	return body, nil
}

// GetJSON fetches path (relative to BaseURL) and decodes into out.
func (c *Client) GetJSON(ctx context.Context, path string, out interface{}) error {
	full, err := c.resolve(strings.TrimPrefix(path, "/"))
	if err != nil {
		return err
	}
	body, err := c.get(ctx, full)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, out)
}
