package fetch

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
)

// Transport performs the single network round trip on behalf of a builder.
// It receives the fully resolved URL, the final options record, and the raw
// entity body, and returns the response or an unmodified error. Implement
// it (usually as a TransportFunc) to mock the network in tests or to layer
// instrumentation.
type Transport interface {
	RoundTrip(ctx context.Context, url string, opts RequestOptions, body any) (*Response, error)
}

// TransportFunc adapts a function to the Transport interface.
type TransportFunc func(ctx context.Context, url string, opts RequestOptions, body any) (*Response, error)

// RoundTrip calls f.
func (f TransportFunc) RoundTrip(ctx context.Context, url string, opts RequestOptions, body any) (*Response, error) {
	return f(ctx, url, opts, body)
}

var defaultTransport Transport = &HTTPTransport{}

// HTTPTransport dispatches requests over net/http. The zero value uses
// http.DefaultClient.
type HTTPTransport struct {
	Client *http.Client
}

func (t *HTTPTransport) httpClient() *http.Client {
	if t.Client != nil {
		return t.Client
	}
	return http.DefaultClient
}

// RoundTrip serializes the body, assembles the http.Request from the
// options record, executes it once, and reads the full response body.
func (t *HTTPTransport) RoundTrip(ctx context.Context, url string, opts RequestOptions, body any) (*Response, error) {
	reader, err := bodyReader(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, opts.Method, url, reader)
	if err != nil {
		return nil, err
	}
	for k, v := range opts.Headers {
		req.Header.Set(k, v)
		if strings.EqualFold(k, "host") {
			req.Host = v
		}
	}
	if opts.Host != "" {
		req.Host = opts.Host
	}

	res, err := t.httpClient().Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}
	return NewResponse(res.StatusCode, res.Header, raw), nil
}

// bodyReader turns the entity body into an io.Reader. Strings and byte
// slices pass through untouched, readers are used as-is, and anything else
// is marshaled as JSON.
func bodyReader(body any) (io.Reader, error) {
	switch d := body.(type) {
	case nil:
		return nil, nil
	case string:
		return strings.NewReader(d), nil
	case []byte:
		return bytes.NewReader(d), nil
	case io.Reader:
		return d, nil
	default:
		bs, err := json.Marshal(d)
		if err != nil {
			return nil, err
		}
		return bytes.NewReader(bs), nil
	}
}
