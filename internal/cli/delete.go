package cli

import (
	"net/http"

	"github.com/spf13/cobra"
)

func newDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "delete URL",
		Aliases: []string{"del"},
		Short:   "Make a DELETE request to the specified URL",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerb(cmd, http.MethodDelete, args[0], nil)
		},
	}
	addRequestFlags(cmd)
	return cmd
}
