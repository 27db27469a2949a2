package config

import (
	"fmt"
	"strings"
)

// Validate checks a collection for the mistakes that would otherwise only
// surface when a request is executed. The core builder itself performs no
// validation; this exists so collection authors get errors at load time.
func Validate(c *Collection) error {
	if len(c.Requests) == 0 {
		return fmt.Errorf("collection defines no requests")
	}

	var errs []string
	for name, req := range c.Requests {
		if strings.TrimSpace(req.Method) == "" {
			errs = append(errs, fmt.Sprintf("request %q: method is required", name))
		}
		if req.Path == "" {
			errs = append(errs, fmt.Sprintf("request %q: path is required", name))
		}
		for extractName, path := range req.Extract {
			if path == "" {
				errs = append(errs, fmt.Sprintf("request %q: extract %q has an empty path", name, extractName))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}
