// Package errors defines the two failure kinds surfaced by the emoji API
// client: errors the remote service reported in its response envelope, and
// failures of the HTTP exchange itself. No error is retried or downgraded;
// every failure is a final outcome returned to the caller.
package errors

import "fmt"

// RemoteError reports a failure the Slack service itself returned: either an
// explicit error string in the response envelope, or an ok=false envelope
// with no error string (in which case Message embeds the raw envelope).
type RemoteError struct {
	// Route is the endpoint path suffix, e.g. "emoji.add".
	Route string
	// Message is the error string from the envelope, or a synthetic message
	// embedding the serialized envelope when the service gave none.
	Message string
	// Raw holds the serialized envelope when Message is synthetic.
	Raw []byte
}

// Error returns the remote error string verbatim so callers can match on the
// service's own error codes ("emoji_not_found", "error_name_taken", ...).
func (e *RemoteError) Error() string { return e.Message }

// TransportError reports a failed HTTP exchange (non-2xx status). When the
// failure body carried a structured {error} field, RemoteMessage holds the
// extracted value alongside the original status failure.
type TransportError struct {
	Route         string
	StatusCode    int
	RemoteMessage string
	Err           error
}

// Error exposes both the original transport failure and the extracted remote
// message when one was present.
func (e *TransportError) Error() string {
	if e.RemoteMessage != "" {
		return fmt.Sprintf("%s: %v: %s", e.Route, e.Err, e.RemoteMessage)
	}
	return fmt.Sprintf("%s: %v", e.Route, e.Err)
}

// Unwrap returns the underlying status failure for error chain compatibility.
func (e *TransportError) Unwrap() error { return e.Err }
