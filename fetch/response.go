package fetch

import (
	"encoding/json"
	"net/http"
)

// Response is the transport's reply, with the body fully read. The builder
// never inspects anything beyond Ok and Status; the rest is a convenience
// for callers.
type Response struct {
	Ok         bool
	Status     int
	StatusText string
	Header     http.Header

	body []byte
}

// NewResponse builds a Response from a status code, headers, and a raw
// body. Ok follows the 2xx convention.
func NewResponse(status int, header http.Header, body []byte) *Response {
	return &Response{
		Ok:         status >= 200 && status < 300,
		Status:     status,
		StatusText: http.StatusText(status),
		Header:     header,
		body:       body,
	}
}

// Body returns the raw response body.
func (r *Response) Body() []byte {
	return r.body
}

// String returns the response body as a string.
func (r *Response) String() string {
	return string(r.body)
}

// JSON unmarshals the response body into v.
func (r *Response) JSON(v any) error {
	return json.Unmarshal(r.body, v)
}

// GetHeader returns the value of the named response header.
func (r *Response) GetHeader(key string) string {
	return r.Header.Get(key)
}
