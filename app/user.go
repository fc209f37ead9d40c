package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MediaVault-Admin/MediaVault-Admin/internal/auth"
	"github.com/MediaVault-Admin/MediaVault-Admin/internal/daemon"
)

func init() { //nolint: gochecknoinits
	for _, c := range []*cobra.Command{createAdminCmd, resetPasswordCmd} {
		c.Flags().StringVar(&userEmail, "email", "", "Account email")
		c.Flags().StringVar(&userPassword, "password", "", "New password")
		_ = c.MarkFlagRequired("email")
		_ = c.MarkFlagRequired("password")
	}

	createAdminCmd.Flags().StringVar(&userFirstName, "first-name", "", "First name")
	createAdminCmd.Flags().StringVar(&userLastName, "last-name", "", "Last name")

	userCmd.AddCommand(createAdminCmd, resetPasswordCmd)
	rootCmd.AddCommand(userCmd)
}

var (
	userEmail     string
	userPassword  string
	userFirstName string
	userLastName  string

	userCmd = &cobra.Command{
		Use:   "user",
		Short: "Manage accounts",
	}

	createAdminCmd = &cobra.Command{
		Use:   "create-admin",
		Short: "Create an admin account, or promote the account using the email",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := daemon.OpenDB(&cfg)
			if err != nil {
				return err
			}

			u, err := auth.NewLocalProvider(db).CreateAdmin(userEmail, userPassword, userFirstName, userLastName)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "admin %s ready (id %s)\n", u.Email, u.ID)

			return err
		},
	}

	resetPasswordCmd = &cobra.Command{
		Use:   "reset-password",
		Short: "Set a new password and clear the rotation flag",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := daemon.OpenDB(&cfg)
			if err != nil {
				return err
			}

			if err = auth.NewLocalProvider(db).ResetPassword(userEmail, userPassword); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "password of %s reset\n", userEmail)

			return err
		},
	}
)
