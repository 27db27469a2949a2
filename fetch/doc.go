// Package fetch provides a chainable HTTP request builder that accumulates
// call parameters through method chaining and defers the network round trip
// until a terminal Run or RunJSON call.
//
// This package is designed for programmatic use and provides:
//   - Method factories (Get, Post, Put, Patch, Delete, Head, Options)
//   - Deferred header sources, resolved concurrently at dispatch time
//   - A process-wide base URL read at resolution time, not construction time
//   - A pluggable transport collaborator for testing and instrumentation
//
// Basic Usage:
//
//	fetch.SetBaseURL("https://api.example.com")
//
//	resp, err := fetch.Get("/users").
//	    Header(fetch.Headers{"Accept": "application/json"}).
//	    Run(context.Background())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("Status: %d\n", resp.Status)
//
// Deferred Header Example:
//
//	result, err := fetch.Post("/login").
//	    Header(fetch.HeaderFunc(func(ctx context.Context) (map[string]string, error) {
//	        token, err := tokenStore.Fresh(ctx)
//	        if err != nil {
//	            return nil, err
//	        }
//	        return map[string]string{"Authorization": "Bearer " + token}, nil
//	    })).
//	    Data(credentials).
//	    RunJSON(context.Background())
//
// A builder is consumed by exactly one terminal call; build a new one per
// request.
package fetch
