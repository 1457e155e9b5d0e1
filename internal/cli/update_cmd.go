package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/restmode/restmode/internal/config"
	"github.com/restmode/restmode/internal/constants"
	"github.com/restmode/restmode/internal/update"
	"github.com/restmode/restmode/internal/version"
)

func newUpdateCmd() *cobra.Command {
	updateCmd := &cobra.Command{
		Use:   "update",
		Short: "Check for and download updates",
	}

	var download bool
	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Check whether a newer release is available",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), constants.HTTPTimeout*2)
			defer cancel()

			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			updater := update.NewUpdater(cfg.Dashboard.APIURL, cfg.Update.Channel, nil, logger)

			release, err := updater.Check(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if release == nil {
				fmt.Fprintf(out, "%s %s is up to date\n", constants.AppName, version.Version)
				return nil
			}
			fmt.Fprintf(out, "Update available: %s (running %s)\n", release.Version, version.Version)
			if release.Notes != "" {
				fmt.Fprintln(out, release.Notes)
			}

			if !download {
				fmt.Fprintln(out, "Run with --download to fetch the installer")
				return nil
			}
			path, err := updater.Download(cmd.Context(), release)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Downloaded to %s\n", path)
			return nil
		},
	}
	checkCmd.Flags().BoolVar(&download, "download", false, "Download the release if one is available")

	updateCmd.AddCommand(checkCmd)
	return updateCmd
}
