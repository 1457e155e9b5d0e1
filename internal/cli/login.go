package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/restmode/restmode/internal/config"
	"github.com/restmode/restmode/internal/constants"
	"github.com/restmode/restmode/internal/dashboard"
)

func newLoginCmd() *cobra.Command {
	var email string

	loginCmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to the " + constants.AppName + " dashboard",
		Long: `Log in to the dashboard and store the session token.

The password is read from the terminal without echo. Once logged in, the
tray's Open Dashboard entry and remote settings sync become available.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), constants.HTTPTimeout*2)
			defer cancel()

			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			client, err := dashboard.NewClient(&cfg.Dashboard, logger)
			if err != nil {
				return err
			}

			if email == "" {
				fmt.Fprint(cmd.OutOrStdout(), "Email: ")
				reader := bufio.NewReader(cmd.InOrStdin())
				line, err := reader.ReadString('\n')
				if err != nil {
					return fmt.Errorf("failed to read email: %w", err)
				}
				email = strings.TrimSpace(line)
			}
			if email == "" {
				return fmt.Errorf("email is required")
			}

			fmt.Fprint(cmd.OutOrStdout(), "Password: ")
			password, err := term.ReadPassword(int(os.Stdin.Fd()))
			fmt.Fprintln(cmd.OutOrStdout())
			if err != nil {
				return fmt.Errorf("failed to read password: %w", err)
			}

			session, err := client.Login(ctx, email, string(password))
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", session.User.Email)
			return nil
		},
	}

	loginCmd.Flags().StringVar(&email, "email", "", "Dashboard account email")
	return loginCmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the stored dashboard session",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			client, err := dashboard.NewClient(&cfg.Dashboard, logger)
			if err != nil {
				return err
			}
			if err := client.Logout(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}
