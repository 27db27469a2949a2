package fetch

import (
	"context"
	"net/http"
)

// OptionsSource produces a RequestOptions record on demand, so curried
// calls can carry options that are generated lazily at dispatch time.
type OptionsSource func() RequestOptions

// StaticOptions wraps a fixed options record in an OptionsSource.
func StaticOptions(opts RequestOptions) OptionsSource {
	return func() RequestOptions { return opts }
}

// Curried is the function-composition variant of the builder: four stages
// fixing base URL, then path, then options, then body, producing a function
// that performs one transport call when applied to a context. A nil client
// means the Default client; a nil options source means no overrides; the
// method defaults to GET unless the options set one.
//
//	call := fetch.Curried(nil)("http://localhost:3000")("/test")(nil)(nil)
//	resp, err := call(ctx)
func Curried(c *Client) func(base string) func(path string) func(opts OptionsSource) func(body any) func(ctx context.Context) (*Response, error) {
	if c == nil {
		c = Default
	}
	return func(base string) func(path string) func(opts OptionsSource) func(body any) func(ctx context.Context) (*Response, error) {
		return func(path string) func(opts OptionsSource) func(body any) func(ctx context.Context) (*Response, error) {
			return func(opts OptionsSource) func(body any) func(ctx context.Context) (*Response, error) {
				return func(body any) func(ctx context.Context) (*Response, error) {
					return func(ctx context.Context) (*Response, error) {
						o := RequestOptions{}
						if opts != nil {
							o = opts()
						}
						if o.Method == "" {
							o.Method = http.MethodGet
						}
						return c.transport().RoundTrip(ctx, base+path, o, body)
					}
				}
			}
		}
	}
}
