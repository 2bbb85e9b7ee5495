package slackmoji

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file avoids cluttering
// client.go and makes it easy to discover all available knobs at a glance.

import (
	"fmt"
	"net/http"
	"time"
)

// Option configures a Client during construction in New.
//
// Options are applied before the cookie transport wrapper is installed, so
// transport-related options (like debug logging) will be placed underneath
// the cookie wrapper. Options must be deterministic and side-effect free.
type Option func(*Client) error

// WithHTTPTimeout bounds the wall-clock time of a whole round trip, from
// dialing through reading the response body. It exists as a backstop for
// callers that don't set context deadlines; a per-request deadline is the
// better tool when you have one. Must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithHTTPClient replaces the underlying http.Client. The cookie transport
// wrapper is still installed on top of the supplied client's transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("http client cannot be nil")
		}
		c.http = hc
		return nil
	}
}

// WithBaseURL overrides the base URL derived from the workspace name.
// Intended for tests and forward proxies; the path must point at the API
// root (the equivalent of "https://{workspace}.slack.com/api").
func WithBaseURL(u string) Option {
	return func(c *Client) error {
		if u == "" {
			return fmt.Errorf("base URL cannot be empty")
		}
		c.baseURL = u
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request/response is
// logged when enabled is true.
//
// The debug transport is installed beneath the cookie wrapper; logs are
// emitted before the request is forwarded to the next transport. Do not
// enable this option in production environments: the dumps include the
// credentials carried by every request.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			c.http.Transport = &debugTransport{base: c.http.Transport}
		}
		return nil
	}
}
