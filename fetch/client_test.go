package fetch

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackageLevelFactoriesUseDefault(t *testing.T) {
	saved := *Default
	defer func() { *Default = saved }()

	rt := &recordingTransport{}
	Default.Transport = rt
	SetBaseURL("http://localhost:4000")

	_, err := Get("/ping").Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:4000/ping", rt.url)
	assert.Equal(t, http.MethodGet, rt.opts.Method)

	_, err = Post("/items").Data(map[string]string{"a": "b"}).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:4000/items", rt.url)
	assert.Equal(t, http.MethodPost, rt.opts.Method)
	assert.Equal(t, "application/json", rt.opts.Headers["Content-Type"])

	verbs := []struct {
		build  func(path string) *Builder
		method string
	}{
		{Put, http.MethodPut},
		{Patch, http.MethodPatch},
		{Delete, http.MethodDelete},
		{Head, http.MethodHead},
		{Options, http.MethodOptions},
	}
	for _, v := range verbs {
		_, err = v.build("/ping").Run(context.Background())
		require.NoError(t, err)
		assert.Equal(t, v.method, rt.opts.Method)
		assert.Equal(t, "http://localhost:4000/ping", rt.url)
	}
}

func TestSetBaseURLAffectsExistingBuilders(t *testing.T) {
	saved := *Default
	defer func() { *Default = saved }()

	rt := &recordingTransport{}
	Default.Transport = rt
	SetBaseURL("http://first.example.com")

	b := Get("/resource")
	SetBaseURL("http://second.example.com")

	_, err := b.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "http://second.example.com/resource", rt.url)
}

func TestClientFactoryMethods(t *testing.T) {
	tests := []struct {
		name           string
		build          func(c *Client) *Builder
		expectedMethod string
	}{
		{"Get", func(c *Client) *Builder { return c.Get("/x") }, http.MethodGet},
		{"Post", func(c *Client) *Builder { return c.Post("/x") }, http.MethodPost},
		{"Put", func(c *Client) *Builder { return c.Put("/x") }, http.MethodPut},
		{"Patch", func(c *Client) *Builder { return c.Patch("/x") }, http.MethodPatch},
		{"Delete", func(c *Client) *Builder { return c.Delete("/x") }, http.MethodDelete},
		{"Head", func(c *Client) *Builder { return c.Head("/x") }, http.MethodHead},
		{"Options", func(c *Client) *Builder { return c.Options("/x") }, http.MethodOptions},
		{"NewRequest custom verb", func(c *Client) *Builder { return c.NewRequest("TRACE", "/x") }, "TRACE"},
		{"NewJSONRequest custom verb", func(c *Client) *Builder { return c.NewJSONRequest("REPORT", "/x") }, "REPORT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt := &recordingTransport{}
			_, err := tt.build(newTestClient(rt)).Run(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.expectedMethod, rt.opts.Method)
		})
	}
}
