package commands

import (
	"fmt"
	"io"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/dbisys/dbis-client/auth"
)

// callCmd issues an authenticated request through the session core, which
// handles the one refresh-and-retry cycle on token expiry.
func callCmd() *cobra.Command {
	var method, data string

	cmd := &cobra.Command{
		Use:   "call <url>",
		Short: "Issue an authenticated request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := auth.Request{
				Method: method,
				URL:    args[0],
			}
			if data != "" {
				req.Body = []byte(data)
			}

			resp, err := svc.Do(cmd.Context(), req)
			if err != nil {
				return err
			}
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			if err != nil {
				return err
			}
			fmt.Println(resp.Status)
			fmt.Println(string(body))
			return nil
		},
	}

	cmd.Flags().StringVarP(&method, "method", "X", http.MethodGet, "HTTP method")
	cmd.Flags().StringVarP(&data, "data", "d", "", "request body")

	return cmd
}
