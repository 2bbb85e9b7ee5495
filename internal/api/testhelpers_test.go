package api

import (
	"fmt"
	"net/http"
)

// errRT is a RoundTripper that always fails, simulating a network-level
// transport error before any response is received.
type errRT struct{}

func (errRT) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, fmt.Errorf("dial tcp: connection refused")
}

func errClient() *http.Client { return &http.Client{Transport: errRT{}} }
