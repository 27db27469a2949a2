// Package output renders requests, responses, and latency summaries for
// the sfetch CLI.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Enkel-Digital/simpler-fetch/fetch"
	"github.com/Enkel-Digital/simpler-fetch/internal/metrics"
)

// Formatter renders terminal output for requests and responses.
type Formatter struct {
	Verbose bool
	scheme  *ColorScheme
}

// NewFormatter creates a formatter. With noColor the output is plain text.
func NewFormatter(verbose, noColor bool) *Formatter {
	scheme := DefaultColorScheme()
	if noColor {
		scheme = NoColorScheme()
	}
	return &Formatter{Verbose: verbose, scheme: scheme}
}

// FormatRequest renders the outgoing request line, plus headers and body in
// verbose mode. Headers shown here are the static ones known before
// dispatch; deferred header sources resolve inside the builder and are not
// previewed.
func (f *Formatter) FormatRequest(method, url string, headers map[string]string, body any) string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "▶ %s %s\n", f.scheme.Method.Sprint(method), f.scheme.URL.Sprint(url))

	if f.Verbose && len(headers) > 0 {
		keys := make([]string, 0, len(headers))
		for k := range headers {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&buf, "  %s: %s\n", f.scheme.HeaderKey.Sprint(k), headers[k])
		}
	}

	if f.Verbose && body != nil {
		buf.WriteString("  ")
		buf.WriteString(formatBody(body))
		buf.WriteString("\n")
	}

	return buf.String()
}

// FormatResponse renders the status line and the body, pretty-printing
// JSON. Response headers appear in verbose mode.
func (f *Formatter) FormatResponse(resp *fetch.Response) string {
	var buf strings.Builder

	statusLine := fmt.Sprintf("%d %s", resp.Status, resp.StatusText)
	fmt.Fprintf(&buf, "◀ %s\n", f.scheme.statusColor(resp.Status).Sprint(statusLine))

	if f.Verbose {
		keys := make([]string, 0, len(resp.Header))
		for k := range resp.Header {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&buf, "  %s: %s\n", f.scheme.HeaderKey.Sprint(k), strings.Join(resp.Header[k], ", "))
		}
	}

	if body := resp.Body(); len(body) > 0 {
		buf.WriteString(prettyJSON(body))
		buf.WriteString("\n")
	}

	return buf.String()
}

// FormatExtracts renders the values pulled out of a response body.
func (f *Formatter) FormatExtracts(values map[string]string) string {
	var buf strings.Builder
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&buf, "%s = %s\n", f.scheme.Highlight.Sprint(k), values[k])
	}
	return buf.String()
}

// FormatSchemaResult renders a schema validation verdict.
func (f *Formatter) FormatSchemaResult(valid bool, details []string) string {
	if valid {
		return f.scheme.Success.Sprint("✓ schema valid") + "\n"
	}
	var buf strings.Builder
	buf.WriteString(f.scheme.Error.Sprint("✗ schema invalid") + "\n")
	for _, d := range details {
		fmt.Fprintf(&buf, "  %s\n", d)
	}
	return buf.String()
}

// FormatSummary renders a latency summary from repeat mode.
func (f *Formatter) FormatSummary(s metrics.Summary) string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "%s\n", f.scheme.Highlight.Sprint("Latency"))
	fmt.Fprintf(&buf, "  requests: %d  failures: %d\n", s.Count, s.Failures)
	fmt.Fprintf(&buf, "  min: %v  p50: %v  p95: %v  p99: %v  max: %v\n",
		s.Min.Round(10*time.Microsecond), s.P50.Round(10*time.Microsecond),
		s.P95.Round(10*time.Microsecond), s.P99.Round(10*time.Microsecond),
		s.Max.Round(10*time.Microsecond))
	return buf.String()
}

// prettyJSON indents a JSON body; non-JSON bodies come back untouched.
func prettyJSON(body []byte) string {
	var out bytes.Buffer
	if err := json.Indent(&out, body, "", "  "); err != nil {
		return string(body)
	}
	return out.String()
}

func formatBody(body any) string {
	switch b := body.(type) {
	case string:
		return b
	case []byte:
		return string(b)
	default:
		bs, err := json.Marshal(b)
		if err != nil {
			return fmt.Sprintf("%v", b)
		}
		return string(bs)
	}
}
