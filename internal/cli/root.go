// Package cli implements the sfetch command tree.
package cli

import (
	"github.com/spf13/cobra"
)

var version = "0.1.0"

// NewRootCmd builds the base command and its subcommands. A fresh tree per
// invocation keeps flag state from leaking between runs.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "sfetch",
		Short:   "A terminal client for the simpler-fetch request builder",
		Version: version,
		Long: `sfetch is a small terminal HTTP client built on the simpler-fetch
request builder. It issues one-off requests, executes named requests from
YAML collection files, extracts values from JSON responses, and validates
response bodies against JSON Schemas.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	root.AddCommand(newGetCmd())
	root.AddCommand(newPostCmd())
	root.AddCommand(newPutCmd())
	root.AddCommand(newDeleteCmd())
	root.AddCommand(newRunCmd())
	return root
}

// Execute runs the root command. Called once from main.
func Execute() error {
	return NewRootCmd().Execute()
}
