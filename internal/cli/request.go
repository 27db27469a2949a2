package cli

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Enkel-Digital/simpler-fetch/fetch"
	"github.com/Enkel-Digital/simpler-fetch/internal/metrics"
	"github.com/Enkel-Digital/simpler-fetch/internal/output"
	"github.com/Enkel-Digital/simpler-fetch/pkg/jsonpath"
	"github.com/Enkel-Digital/simpler-fetch/pkg/jsonschema"
)

// runSpec is one request as the CLI sees it, after flags or a collection
// entry have been parsed.
type runSpec struct {
	method  string
	target  string
	baseURL string
	headers map[string]string
	body    any
	extract map[string]string
	schema  string
	repeat  int
}

// addRequestFlags registers the flags shared by every verb command.
func addRequestFlags(cmd *cobra.Command) {
	cmd.Flags().StringArrayP("header", "H", []string{}, "HTTP headers to include (can be used multiple times)")
	cmd.Flags().String("base-url", "", "Base URL joined to relative paths")
	cmd.Flags().StringArray("extract", []string{}, "gjson path to extract from the response body (can be used multiple times)")
	cmd.Flags().String("schema", "", "JSON Schema file to validate the response body against")
	cmd.Flags().Int("repeat", 1, "Issue the request N times and report latency percentiles")
	cmd.Flags().BoolP("verbose", "v", false, "Enable verbose output")
	cmd.Flags().Bool("no-color", false, "Disable colored output")
}

// runVerb assembles a runSpec from a verb command's flags and executes it.
func runVerb(cmd *cobra.Command, method, target string, body any) error {
	headers, _ := cmd.Flags().GetStringArray("header")
	baseURL, _ := cmd.Flags().GetString("base-url")
	extractPaths, _ := cmd.Flags().GetStringArray("extract")
	schema, _ := cmd.Flags().GetString("schema")
	repeat, _ := cmd.Flags().GetInt("repeat")

	extract := make(map[string]string, len(extractPaths))
	for _, p := range extractPaths {
		extract[p] = p
	}

	return execute(cmd, runSpec{
		method:  method,
		target:  target,
		baseURL: baseURL,
		headers: parseHeaderFlags(headers),
		body:    body,
		extract: extract,
		schema:  schema,
		repeat:  repeat,
	})
}

// execute performs a runSpec: one round trip, or N of them in repeat mode,
// followed by extraction and schema validation of the (last) response.
// Builders are single-shot, so repeat mode builds a fresh one per attempt.
func execute(cmd *cobra.Command, spec runSpec) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	noColor, _ := cmd.Flags().GetBool("no-color")
	out := cmd.OutOrStdout()
	if !noColor && !isTerminalWriter(out) {
		noColor = true
	}
	formatter := output.NewFormatter(verbose, noColor)

	client := fetch.NewClient(spec.baseURL)
	build := func() *fetch.Builder {
		var b *fetch.Builder
		switch spec.method {
		case http.MethodPost, http.MethodPut, http.MethodPatch:
			b = client.NewJSONRequest(spec.method, spec.target)
		default:
			b = client.NewRequest(spec.method, spec.target)
		}
		if len(spec.headers) > 0 {
			b.Header(fetch.Headers(spec.headers))
		}
		if spec.body != nil {
			b.Data(spec.body)
		}
		return b
	}

	fmt.Fprint(out, formatter.FormatRequest(spec.method, displayURL(spec.baseURL, spec.target), spec.headers, spec.body))

	var resp *fetch.Response
	var recorder *metrics.Recorder
	attempts := spec.repeat
	if attempts < 1 {
		attempts = 1
	}
	if attempts > 1 {
		recorder = metrics.NewRecorder()
	}

	for i := 0; i < attempts; i++ {
		start := time.Now()
		r, err := build().Run(cmd.Context())
		if err != nil {
			return err
		}
		if recorder != nil {
			recorder.Record(time.Since(start), r.Ok)
		}
		resp = r
	}

	fmt.Fprint(out, formatter.FormatResponse(resp))

	if len(spec.extract) > 0 {
		values, err := jsonpath.ExtractAll(resp.Body(), spec.extract)
		fmt.Fprint(out, formatter.FormatExtracts(values))
		if err != nil {
			return err
		}
	}

	if spec.schema != "" {
		valid, details, err := jsonschema.ValidateFile(resp.Body(), spec.schema)
		if err != nil {
			return err
		}
		fmt.Fprint(out, formatter.FormatSchemaResult(valid, details))
		if !valid {
			return fmt.Errorf("response failed schema validation")
		}
	}

	if recorder != nil {
		fmt.Fprint(out, formatter.FormatSummary(recorder.Summary()))
	}
	return nil
}

// isTerminalWriter reports whether the command's output writer is a
// terminal. Redirected writers (buffers, pipes set via SetOut) get plain
// output.
func isTerminalWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && output.IsTerminal(f)
}

// parseHeaderFlags turns repeated "Key: Value" flags into a header map.
// Entries without a colon are ignored.
func parseHeaderFlags(raw []string) map[string]string {
	headers := make(map[string]string)
	for _, h := range raw {
		parts := strings.SplitN(h, ":", 2)
		if len(parts) == 2 {
			headers[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
		}
	}
	return headers
}

// displayURL mirrors the builder's URL policy for output purposes: a target
// containing a scheme is shown verbatim, anything else concatenates with
// the base URL.
func displayURL(base, target string) string {
	lower := strings.ToLower(target)
	if strings.Contains(lower, "http://") || strings.Contains(lower, "https://") {
		return target
	}
	return base + target
}
