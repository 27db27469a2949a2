package fetch

import (
	"context"
	"strings"
)

// Builder accumulates an HTTP request through chained calls and dispatches
// it on a terminal Run or RunJSON call. Method and path are fixed at
// construction; header sources, options and data accumulate through the
// chain. Each terminal call performs exactly one transport invocation, with
// no retries and no recovery; build a fresh builder per request.
type Builder struct {
	client  *Client
	method  string
	path    string
	sources []HeaderSource
	opts    RequestOptions
	data    any
}

// New is the low-level constructor behind the method factories. A nil
// client means the Default client. The variadic sources parameter accepts
// zero, one, or many header sources; they become the initial entries of the
// source sequence in the order given.
func New(c *Client, method, path string, opts RequestOptions, sources ...HeaderSource) *Builder {
	if c == nil {
		c = Default
	}
	return &Builder{
		client:  c,
		method:  method,
		path:    path,
		sources: sources,
		opts:    opts,
	}
}

// Header appends a header source to the builder. Each call is additive;
// sources are resolved at Run time and merged in insertion order, later
// sources overriding earlier ones per key. The source is not validated or
// invoked here.
func (b *Builder) Header(src HeaderSource) *Builder {
	b.sources = append(b.sources, src)
	return b
}

// Options replaces the options record wholesale. Repeated calls do not
// merge; the latest call wins.
func (b *Builder) Options(opts RequestOptions) *Builder {
	b.opts = opts
	return b
}

// Data sets the entity body. Only the most recent call's value survives.
// The body is serialized by the transport; see HTTPTransport for the
// supported payload kinds.
func (b *Builder) Data(payload any) *Builder {
	b.data = payload
	return b
}

// Run resolves the accumulated state and performs the single transport
// round trip:
//
//  1. The target URL is the path verbatim when it contains a scheme,
//     otherwise the client's base URL concatenated with the path.
//  2. All header sources resolve concurrently, then merge in insertion
//     order.
//  3. The options record overlays the computed method and headers; a
//     non-nil Headers in options discards the merged map entirely.
//
// Any header-source or transport error propagates unmodified.
func (b *Builder) Run(ctx context.Context) (*Response, error) {
	merged, err := resolveHeaders(ctx, b.sources)
	if err != nil {
		return nil, err
	}
	final := RequestOptions{Method: b.method, Headers: merged}.overlay(b.opts)
	return b.client.transport().RoundTrip(ctx, b.resolveURL(), final, b.data)
}

// RunJSON runs the request and decodes the response body as JSON into a
// map. The result starts from {"ok": ..., "status": ...} taken from the
// transport response, then the decoded body overlays it, so a body that
// itself carries "ok" or "status" keys wins. A body that fails to decode is
// an error; there is no raw-text fallback.
func (b *Builder) RunJSON(ctx context.Context) (map[string]any, error) {
	resp, err := b.Run(ctx)
	if err != nil {
		return nil, err
	}
	var body map[string]any
	if err := resp.JSON(&body); err != nil {
		return nil, err
	}
	result := map[string]any{
		"ok":     resp.Ok,
		"status": resp.Status,
	}
	for k, v := range body {
		result[k] = v
	}
	return result, nil
}

// resolveURL treats the path as a full URL when it contains an http:// or
// https:// scheme, case-insensitive, anywhere in the string. Otherwise it
// is joined to the client's base URL by plain concatenation; callers own
// the leading slash.
func (b *Builder) resolveURL() string {
	lower := strings.ToLower(b.path)
	if strings.Contains(lower, "http://") || strings.Contains(lower, "https://") {
		return b.path
	}
	return b.client.BaseURL + b.path
}
