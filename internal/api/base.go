package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	apierrors "github.com/slackmoji/slackmoji/internal/errors"
	"github.com/slackmoji/slackmoji/internal/types"
)

// HTTPClient interface for dependency injection by the root client.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// filePart describes a binary form part attached to a multipart request.
type filePart struct {
	field    string
	filename string
	r        io.Reader
}

// postForm implements the request protocol shared by every emoji endpoint:
// build a multipart form body from the ordered fields, append the API token
// as an additional field, POST it to {baseURL}/{route}, and unwrap the
// response envelope. On success it returns the raw response body so callers
// can decode the endpoint-specific payload.
//
// Failure normalization:
//   - envelope with a non-empty error string  -> *errors.RemoteError (verbatim)
//   - envelope with ok=false and no error     -> *errors.RemoteError embedding
//     the serialized envelope
//   - non-2xx status                          -> *errors.TransportError, with the
//     body's {error} field attached when one could be extracted
//   - network-level failure                   -> propagated unchanged
func postForm(ctx context.Context, httpClient HTTPClient, baseURL, token, route string, fields [][2]string, file *filePart) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for _, f := range fields {
		if err := mw.WriteField(f[0], f[1]); err != nil {
			return nil, err
		}
	}
	if err := mw.WriteField("token", token); err != nil {
		return nil, err
	}
	if file != nil {
		fw, err := mw.CreateFormFile(file.field, file.filename)
		if err != nil {
			return nil, err
		}
		if _, err := io.Copy(fw, file.r); err != nil {
			return nil, err
		}
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/%s", baseURL, route)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", mw.FormDataContentType())
	// Note: the session cookie header is added by the transport layer.

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		terr := &apierrors.TransportError{
			Route:      route,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
		var env types.Envelope
		if jsonErr := json.Unmarshal(body, &env); jsonErr == nil && env.Error != "" {
			terr.RemoteMessage = env.Error
		}
		return nil, terr
	}

	var env types.Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, err
	}
	if env.Error != "" {
		return nil, &apierrors.RemoteError{Route: route, Message: env.Error}
	}
	if !env.OK {
		// Malformed/undocumented response: no error string but not ok either.
		// Surface the raw envelope so the caller can see what came back.
		return nil, &apierrors.RemoteError{
			Route:   route,
			Message: fmt.Sprintf("emoji API request failed: %s", body),
			Raw:     body,
		}
	}
	return body, nil
}
