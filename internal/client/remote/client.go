// Package remote implements the HTTP clients for the two remote
// collaborators of the gallery subsystem: the document/identity backend
// (a REST JSON API) and, indirectly, the session credentials those calls
// carry. The blob store has its own adapter in the blobstore package.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"
)

const (
	projectHeader = "X-Project-Id"
	sessionHeader = "X-Session-Token"
)

// Client is a thin REST client. It is safe for concurrent use; the session
// token is the only mutable state and is guarded.
type Client struct {
	baseURL    string
	projectID  string
	databaseID string
	http       *http.Client

	mu    sync.RWMutex
	token string
}

func NewClient(baseURL, projectID, databaseID string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		projectID:  projectID,
		databaseID: databaseID,
		http:       &http.Client{Timeout: 30 * time.Second},
	}
}

// SetSession installs the session secret sent with subsequent requests.
func (c *Client) SetSession(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// ClearSession drops the session secret.
func (c *Client) ClearSession() {
	c.SetSession("")
}

func (c *Client) sessionToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// do performs a JSON request against path (relative to the base URL) and
// decodes a 2xx response body into out (when out is non-nil). Non-2xx
// statuses are mapped to the sentinel errors in internal/common.
func (c *Client) do(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.projectID != "" {
		req.Header.Set(projectHeader, c.projectID)
	}
	if token := c.sessionToken(); token != "" {
		req.Header.Set(sessionHeader, token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if err := statusToError(resp); err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
