package cli

import (
	"net/http"

	"github.com/spf13/cobra"
)

func newPostCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "post URL",
		Short: "Make a POST request to the specified URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, _ := cmd.Flags().GetString("data")
			var body any
			if data != "" {
				body = data
			}
			return runVerb(cmd, http.MethodPost, args[0], body)
		},
	}
	addRequestFlags(cmd)
	cmd.Flags().StringP("data", "d", "", "Data to send in the request body")
	return cmd
}
