// Package jira is a small REST client for the issue tracker. The client
// is an explicitly constructed handle passed to each call site; there is
// no lazily initialized global.
package jira

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

// Client talks to one Jira site using API-token basic auth.
type Client struct {
	baseURL string
	email   string
	token   string
	http    *http.Client
}

// NewClient builds a client handle for the given site. baseURL is the
// tracker root (https://yoursite.atlassian.net); a trailing slash is
// tolerated.
func NewClient(baseURL, email, token string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		email:   email,
		token:   token,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// BrowseURL returns the human-facing URL for an issue key. The same
// derivation backs the markup converter's ticket-reference targets.
func (c *Client) BrowseURL(key string) string {
	return c.baseURL + "/browse/" + key
}

// BaseURL returns the tracker root the client was built with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// apiError is a non-2xx response from the tracker.
type apiError struct {
	status int
	body   string
}

func (e *apiError) Error() string {
	if e.body == "" {
		return fmt.Sprintf("tracker returned %d", e.status)
	}
	return fmt.Sprintf("tracker returned %d: %s", e.status, e.body)
}

// do sends one API request and decodes the response into out (which may
// be nil for calls whose response body is ignored).
func (c *Client) do(ctx context.Context, method, path string, payload, out interface{}) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.SetBasicAuth(c.email, c.token)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &apiError{status: resp.StatusCode, body: strings.TrimSpace(string(snippet))}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
