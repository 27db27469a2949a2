package fetch

import "net/http"

// Client holds the process-level request state shared by builders: the base
// URL joined to relative paths and the transport that performs the round
// trip. BaseURL is read at Run time, not at construction time, so changing
// it before a terminal call affects that call's URL resolution. Mutating it
// while requests are in flight is the caller's hazard; the client does not
// synchronize it.
type Client struct {
	BaseURL   string
	Transport Transport
}

// Default is the process-wide client used by the package-level factories.
var Default = &Client{}

// SetBaseURL sets the base URL on the Default client.
func SetBaseURL(url string) {
	Default.BaseURL = url
}

// NewClient creates a client with the given base URL and the default
// net/http transport.
func NewClient(baseURL string) *Client {
	return &Client{BaseURL: baseURL}
}

func (c *Client) transport() Transport {
	if c.Transport != nil {
		return c.Transport
	}
	return defaultTransport
}

// NewRequest creates a builder with no default header sources, for verbs
// that carry no entity body.
func (c *Client) NewRequest(method, path string) *Builder {
	return New(c, method, path, RequestOptions{})
}

// NewJSONRequest creates a builder seeded with a Content-Type:
// application/json header source, for verbs that carry a JSON entity body.
// The seed is the first source, so later Header calls can override the key
// but not remove it.
func (c *Client) NewJSONRequest(method, path string) *Builder {
	return New(c, method, path, RequestOptions{}, Headers{"Content-Type": "application/json"})
}

// Get creates a GET builder.
func (c *Client) Get(path string) *Builder {
	return c.NewRequest(http.MethodGet, path)
}

// Delete creates a DELETE builder.
func (c *Client) Delete(path string) *Builder {
	return c.NewRequest(http.MethodDelete, path)
}

// Head creates a HEAD builder.
func (c *Client) Head(path string) *Builder {
	return c.NewRequest(http.MethodHead, path)
}

// Options creates an OPTIONS builder.
func (c *Client) Options(path string) *Builder {
	return c.NewRequest(http.MethodOptions, path)
}

// Post creates a POST builder with a JSON Content-Type seed.
func (c *Client) Post(path string) *Builder {
	return c.NewJSONRequest(http.MethodPost, path)
}

// Put creates a PUT builder with a JSON Content-Type seed.
func (c *Client) Put(path string) *Builder {
	return c.NewJSONRequest(http.MethodPut, path)
}

// Patch creates a PATCH builder with a JSON Content-Type seed.
func (c *Client) Patch(path string) *Builder {
	return c.NewJSONRequest(http.MethodPatch, path)
}

// Get creates a GET builder on the Default client.
func Get(path string) *Builder { return Default.Get(path) }

// Post creates a POST builder on the Default client.
func Post(path string) *Builder { return Default.Post(path) }

// Put creates a PUT builder on the Default client.
func Put(path string) *Builder { return Default.Put(path) }

// Patch creates a PATCH builder on the Default client.
func Patch(path string) *Builder { return Default.Patch(path) }

// Delete creates a DELETE builder on the Default client.
func Delete(path string) *Builder { return Default.Delete(path) }

// Head creates a HEAD builder on the Default client.
func Head(path string) *Builder { return Default.Head(path) }

// Options creates an OPTIONS builder on the Default client.
func Options(path string) *Builder { return Default.Options(path) }
