// Package nomadapi implements allocfs.Client over the scheduler's HTTP API.
package nomadapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/filetug/allocfs/pkg/allocfs"
)

const (
	tokenHeader  = "X-Nomad-Token"
	lsEndpoint   = "/v1/client/fs/ls/"
	catEndpoint  = "/v1/client/fs/cat/"
	maxErrorBody = 512
)

type ClientOption func(*Client)

func NewClient(addr url.URL, o ...ClientOption) *Client {
	c := &Client{
		Addr: addr,
	}
	for _, opt := range o {
		opt(c)
	}
	return c
}

func WithHttpClient(client *http.Client) ClientOption {
	return func(c *Client) {
		c.client = client
	}
}

func WithToken(token string) ClientOption {
	return func(c *Client) {
		c.token = token
	}
}

func WithNamespace(namespace string) ClientOption {
	return func(c *Client) {
		c.namespace = namespace
	}
}

var _ allocfs.Client = (*Client)(nil)

type Client struct {
	Addr      url.URL
	client    *http.Client
	token     string
	namespace string
}

// ListDirectory returns the entries of path inside the allocation directory.
func (c *Client) ListDirectory(ctx context.Context, allocID, path string) ([]allocfs.AllocFileInfo, error) {
	resp, err := c.get(ctx, lsEndpoint, allocID, path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	var entries []allocfs.AllocFileInfo
	if err = json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("failed to decode directory listing: %w", err)
	}
	return entries, nil
}

// ReadFileContent returns up to limit bytes of a file as text. The response
// body is closed once the limit is reached.
func (c *Client) ReadFileContent(ctx context.Context, allocID, path string, limit int64) (string, error) {
	resp, err := c.get(ctx, catEndpoint, allocID, path)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	var r io.Reader = resp.Body
	if limit > 0 {
		r = io.LimitReader(resp.Body, limit)
	}
	body, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}
	return string(body), nil
}

func (c *Client) get(ctx context.Context, endpoint, allocID, path string) (*http.Response, error) {
	if allocID == "" {
		return nil, allocfs.ErrNoAllocation
	}
	u := c.Addr
	base := strings.TrimSuffix(u.Path, "/")
	u.Path = base + endpoint + allocID
	u.RawPath = (&url.URL{Path: base}).EscapedPath() + endpoint + url.PathEscape(allocID)
	query := url.Values{}
	query.Set("path", path)
	if c.namespace != "" {
		query.Set("namespace", c.namespace)
	}
	u.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if c.token != "" {
		req.Header.Set(tokenHeader, c.token)
	}

	client := c.client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call %s: %w", endpoint, err)
	}
	if resp.StatusCode != http.StatusOK {
		defer func() {
			_ = resp.Body.Close()
		}()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}
	return resp, nil
}

// StatusError is returned for responses other than 200 OK.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("unexpected status code: %d", e.StatusCode)
	}
	return fmt.Sprintf("unexpected status code: %d: %s", e.StatusCode, e.Body)
}
