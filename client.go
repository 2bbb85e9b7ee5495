// Package slackmoji is a client for the undocumented Slack custom emoji
// administration API (emoji.adminList, emoji.getInfo, emoji.add,
// emoji.remove).
//
// Authentication uses two browser-extracted credentials: a session API token
// ("xoxc-...") appended to every form body, and a cookie token ("xoxd-...")
// sent as the "d" cookie. Acquiring them is out of scope for this package.
//
// Every operation is a single request/response round trip. There are no
// retries, no background work and no shared mutable state; a Client is safe
// for concurrent use.
package slackmoji

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/slackmoji/slackmoji/internal/api"
)

// Client issues authenticated requests against a single workspace's emoji
// API. Construct it with New; the configuration is immutable afterwards.
type Client struct {
	cfg     Config
	baseURL string
	http    *http.Client
}

// New constructs a Client for the workspace identified by cfg. Additional
// options can be provided via functional arguments.
func New(cfg Config, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Client{
		cfg:     cfg,
		baseURL: fmt.Sprintf("https://%s.slack.com/api", cfg.Workspace),
		http:    &http.Client{Timeout: 30 * time.Second},
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	// Wrap HTTP transport to automatically add the session cookie header.
	c.wrapTransportWithCookie()

	return c, nil
}

// BaseURL returns the derived API base URL, e.g.
// "https://acme.slack.com/api".
func (c *Client) BaseURL() string { return c.baseURL }

// wrapTransportWithCookie wraps the HTTP client's transport so every request
// carries the session cookie header required by the emoji endpoints.
func (c *Client) wrapTransportWithCookie() {
	baseTransport := c.http.Transport
	if baseTransport == nil {
		baseTransport = http.DefaultTransport
	}
	c.http.Transport = &cookieTransport{
		base:   baseTransport,
		cookie: c.cfg.Cookie,
	}
}

// cookieTransport wraps an http.RoundTripper to add the "d" session cookie
// header to every outgoing request.
type cookieTransport struct {
	base   http.RoundTripper
	cookie string
}

func (t *cookieTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to avoid modifying the original.
	cloned := req.Clone(req.Context())
	cloned.Header.Set("Cookie", fmt.Sprintf("d=%s;", t.cookie))
	return t.base.RoundTrip(cloned)
}

// --------------------------------------------------------------------
// Emoji operations - delegated to internal/api
// --------------------------------------------------------------------

// RemoveEmoji deletes the named custom emoji from the workspace.
func (c *Client) RemoveEmoji(ctx context.Context, name string) error {
	err := api.RemoveEmoji(ctx, c.http, c.baseURL, c.cfg.Token, name)
	observeRequest("emoji.remove", err)
	return err
}

// AddEmoji uploads the image content as a new custom emoji under name.
func (c *Client) AddEmoji(ctx context.Context, name string, image io.Reader) error {
	err := api.AddEmoji(ctx, c.http, c.baseURL, c.cfg.Token, name, image)
	observeRequest("emoji.add", err)
	return err
}

// AddEmojiAlias registers name as an alias for the existing emoji aliasFor.
func (c *Client) AddEmojiAlias(ctx context.Context, name, aliasFor string) error {
	err := api.AddEmojiAlias(ctx, c.http, c.baseURL, c.cfg.Token, name, aliasFor)
	observeRequest("emoji.add", err)
	return err
}

// GetEmojiInfo retrieves the record for a single emoji by name.
func (c *Client) GetEmojiInfo(ctx context.Context, name string) (*EmojiInfo, error) {
	info, err := api.GetEmojiInfo(ctx, c.http, c.baseURL, c.cfg.Token, name)
	observeRequest("emoji.getInfo", err)
	return info, err
}

// ListEmoji retrieves one page of the workspace emoji catalog. The zero
// value of ListEmojiRequest lists the first 100 emoji, newest first.
func (c *Client) ListEmoji(ctx context.Context, req ListEmojiRequest) (*ListEmojiResponse, error) {
	resp, err := api.ListEmoji(ctx, c.http, c.baseURL, c.cfg.Token, req)
	observeRequest("emoji.adminList", err)
	return resp, err
}
