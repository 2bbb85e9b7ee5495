package slackmoji

import (
	"net/http"
	"net/http/httputil"
	"os"

	"github.com/rs/zerolog/log"
)

// debugTransport dumps each HTTP request and response for troubleshooting
// API communication problems (malformed multipart bodies, unexpected
// envelope shapes, authentication failures).
//
// Enable it with SLACKMOJI_DEBUG=true or DEBUG=true, or explicitly via
// WithDebugLogging. The dumps include both credentials, so keep this out of
// production logs.
type debugTransport struct{ base http.RoundTripper }

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	next := dt.base
	if next == nil {
		next = http.DefaultTransport
	}
	if !debugLoggingRequested() {
		return next.RoundTrip(req)
	}

	if dump, dumpErr := httputil.DumpRequestOut(req, true); dumpErr == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", string(dump)).Msg("HTTP request")
	}

	resp, err := next.RoundTrip(req)
	if err != nil {
		log.Error().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		return nil, err
	}

	if dump, dumpErr := httputil.DumpResponse(resp, true); dumpErr == nil {
		log.Debug().Int("status_code", resp.StatusCode).Str("url", req.URL.String()).Str("response_dump", string(dump)).Msg("HTTP response")
	}
	return resp, nil
}

// debugLoggingRequested checks if HTTP debug logging should be enabled.
// Both SLACKMOJI_DEBUG=true and the generic DEBUG=true are honoured.
func debugLoggingRequested() bool {
	return os.Getenv("SLACKMOJI_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
