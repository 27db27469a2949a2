package fetch

import (
	"context"
	"sync"
)

// HeaderSource supplies request headers at resolution time. A source is either
// a static map (Headers) or a deferred function (HeaderFunc); both resolve to
// a plain key-value map before the request is assembled.
type HeaderSource interface {
	ResolveHeaders(ctx context.Context) (map[string]string, error)
}

// Headers is a static header source.
type Headers map[string]string

// ResolveHeaders returns the map as-is.
func (h Headers) ResolveHeaders(context.Context) (map[string]string, error) {
	return h, nil
}

// HeaderFunc is a deferred header source, evaluated once per terminal call.
// Sources that need I/O (token refresh, vault lookups) block only their own
// goroutine; the resolver fans out all sources before waiting on any.
type HeaderFunc func(ctx context.Context) (map[string]string, error)

// ResolveHeaders invokes the function.
func (f HeaderFunc) ResolveHeaders(ctx context.Context) (map[string]string, error) {
	return f(ctx)
}

// resolveHeaders resolves every source concurrently, waits for all of them,
// then folds the results left-to-right in insertion order so that later
// sources override earlier ones per key. A single source error fails the
// whole resolution.
func resolveHeaders(ctx context.Context, sources []HeaderSource) (map[string]string, error) {
	resolved := make([]map[string]string, len(sources))
	errs := make([]error, len(sources))

	var wg sync.WaitGroup
	for i, src := range sources {
		i, src := i, src
		wg.Add(1)
		go func() {
			defer wg.Done()
			resolved[i], errs[i] = src.ResolveHeaders(ctx)
		}()
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	merged := make(map[string]string)
	for _, h := range resolved {
		for k, v := range h {
			merged[k] = v
		}
	}
	return merged, nil
}
