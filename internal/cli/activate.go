package cli

import (
	fyneapp "fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"

	"github.com/restmode/restmode/internal/config"
	"github.com/restmode/restmode/internal/constants"
	"github.com/restmode/restmode/internal/logging"
	"github.com/restmode/restmode/internal/overlay"
	"github.com/restmode/restmode/internal/theme"
)

func newActivateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "activate",
		Short: "Show the overlay immediately",
		Long: `Show the full-screen overlay right away, without waiting for the idle
threshold. Any key or mouse input dismisses it and exits.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}

			fyneApp := fyneapp.NewWithID(constants.AppID)
			fyneApp.Settings().SetTheme(&theme.AppTheme{})

			store := config.NewStore(cfg)
			guiLogger := logging.NewLogger("gui")
			ov := overlay.New(fyneApp, store, nil, fyneApp.Quit, guiLogger)

			fyneApp.Lifecycle().SetOnStarted(ov.Show)
			fyneApp.Run()
			return nil
		},
	}
}
