package botrelay

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	// AdminTokenHeader carries the shared bot secret on every API call.
	AdminTokenHeader = "X-Admin-Token"

	requestTimeout  = 10 * time.Second
	maxResponseSize = 1 << 20
)

// Response is the raw outcome of an API call.
type Response struct {
	StatusCode int
	Body       []byte
}

// OK reports whether the API accepted the call.
func (r *Response) OK() bool {
	return r.StatusCode < http.StatusBadRequest
}

// API is the subset of the Roomly API the relay needs.
type API interface {
	Post(ctx context.Context, path string, payload any) (*Response, error)
}

// Client calls the Roomly bot endpoints.
type Client struct {
	baseURL    string
	adminToken string
	http       *http.Client
}

// NewClient creates a Client. With verifySSL false the API certificate is
// not checked.
func NewClient(baseURL, adminToken string, verifySSL bool) *Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if !verifySSL {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		adminToken: adminToken,
		http:       &http.Client{Timeout: requestTimeout, Transport: transport},
	}
}

// Post sends payload as JSON to path. Non-2xx statuses are not errors.
func (c *Client) Post(ctx context.Context, path string, payload any) (*Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(AdminTokenHeader, c.adminToken)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("post %s: %w", path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("read %s response: %w", path, err)
	}
	return &Response{StatusCode: resp.StatusCode, Body: data}, nil
}

var _ API = (*Client)(nil)
