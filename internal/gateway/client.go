package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// TokenSource supplies the bearer token attached to every request. The
// session context implements it.
type TokenSource interface {
	Token() string
}

// HTTPError is a non-2xx response from the remote API.
type HTTPError struct {
	Status int
	Body   string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("remote API returned %d: %s", e.Status, e.Body)
}

// NetworkError is a transport-level failure, including timeouts. Callers
// treat it the same as an unreachable server and fall back to local data.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string { return fmt.Sprintf("remote API unreachable: %v", e.Err) }
func (e *NetworkError) Unwrap() error { return e.Err }

// Client issues authenticated JSON calls against the admin API. It never
// substitutes fallback data; classifying and recovering from failures is
// the caller's job.
type Client struct {
	BaseURL    string
	Tokens     TokenSource
	HTTPClient *http.Client
}

func NewClient(baseURL string, tokens TokenSource, timeout time.Duration) *Client {
	return &Client{
		BaseURL: baseURL,
		Tokens:  tokens,
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Do sends one JSON request. A nil body sends no payload; a non-nil out
// receives the decoded response body.
func (c *Client) Do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request data: %w", err)
		}
		reader = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, out)
}

// DoRaw sends an opaque payload (encoded image uploads). No Content-Type
// header is set so the transport can negotiate it.
func (c *Client) DoRaw(ctx context.Context, method, path string, payload io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, payload)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	return c.send(req, out)
}

func (c *Client) send(req *http.Request, out any) error {
	if c.Tokens != nil {
		if token := c.Tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &HTTPError{Status: resp.StatusCode, Body: string(respBody)}
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
	}
	return nil
}

// RemoteStats is the summary payload from GET /admin/dashboard/stats.
// Fields the server leaves out stay zero and are replaced by local
// counts or fallbacks downstream.
type RemoteStats struct {
	TotalUsers  int     `json:"totalUsers"`
	TotalAdmins int     `json:"totalAdmins"`
	TotalOrders int     `json:"totalOrders"`
	Revenue     float64 `json:"revenue"`
}

func (c *Client) DashboardStats(ctx context.Context) (*RemoteStats, error) {
	var stats RemoteStats
	if err := c.Do(ctx, http.MethodGet, "/admin/dashboard/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// Activity is one entry of the remote recent-activity feed.
type Activity struct {
	ID      string    `json:"id"`
	Action  string    `json:"action"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

func (c *Client) RecentActivities(ctx context.Context) ([]Activity, error) {
	var activities []Activity
	if err := c.Do(ctx, http.MethodGet, "/admin/recent-activities", nil, &activities); err != nil {
		return nil, err
	}
	return activities, nil
}

func (c *Client) Search(ctx context.Context, query string) ([]map[string]any, error) {
	var results []map[string]any
	path := "/admin/search?q=" + url.QueryEscape(query)
	if err := c.Do(ctx, http.MethodGet, path, nil, &results); err != nil {
		return nil, err
	}
	return results, nil
}
