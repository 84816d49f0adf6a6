package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func loginCmd() *cobra.Command {
	var username, password, company string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to the DBIS backend (falls back to offline mode)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := svc.Login(cmd.Context(), username, password, company); err != nil {
				return fmt.Errorf("login failed: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "password")
	cmd.Flags().StringVarP(&company, "company", "c", "breeze", "company")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
