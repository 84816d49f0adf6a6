package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := sessions.Load()
			if err != nil {
				return err
			}
			if !sess.Active() {
				fmt.Println("No active session.")
				return nil
			}
			printUserInfo(sess)
			return nil
		},
	}
}
