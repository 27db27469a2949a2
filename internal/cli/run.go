package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Enkel-Digital/simpler-fetch/internal/config"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run FILE [request...]",
		Short: "Execute named requests from a YAML collection file",
		Long: `Run executes requests defined in a collection file. With no request
names, every request in the collection runs in name order. Collection-level
headers apply to every request; request-level headers win on collision.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			collection, err := config.Load(args[0])
			if err != nil {
				return err
			}

			baseURL := collection.BaseURL
			if override, _ := cmd.Flags().GetString("base-url"); override != "" {
				baseURL = override
			}

			names := args[1:]
			if len(names) == 0 {
				for name := range collection.Requests {
					names = append(names, name)
				}
				sort.Strings(names)
			}

			out := cmd.OutOrStdout()
			for i, name := range names {
				req, ok := collection.Requests[name]
				if !ok {
					return fmt.Errorf("request %q not found in %s", name, args[0])
				}

				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintf(out, "── %s ──\n", name)

				headers := make(map[string]string, len(collection.Headers)+len(req.Headers))
				for k, v := range collection.Headers {
					headers[k] = v
				}
				for k, v := range req.Headers {
					headers[k] = v
				}

				err := execute(cmd, runSpec{
					method:  strings.ToUpper(req.Method),
					target:  req.Path,
					baseURL: baseURL,
					headers: headers,
					body:    req.Body,
					extract: req.Extract,
					schema:  req.Schema,
				})
				if err != nil {
					return fmt.Errorf("request %q: %w", name, err)
				}
			}
			return nil
		},
	}

	cmd.Flags().String("base-url", "", "Override the collection's base URL")
	cmd.Flags().BoolP("verbose", "v", false, "Enable verbose output")
	cmd.Flags().Bool("no-color", false, "Disable colored output")
	return cmd
}
