package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/restmode/restmode/internal/config"
)

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and edit the restmode.conf file",
	}
	configCmd.AddCommand(newConfigShowCmd())
	configCmd.AddCommand(newConfigSetCmd())
	configCmd.AddCommand(newConfigResetCmd())
	configCmd.AddCommand(newConfigPathCmd())
	return configCmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "[activation]\n")
			fmt.Fprintf(out, "enabled = %t\n", cfg.Activation.Enabled)
			fmt.Fprintf(out, "delay_minutes = %d\n", cfg.Activation.DelayMinutes)
			fmt.Fprintf(out, "check_interval_seconds = %d\n\n", cfg.Activation.CheckIntervalSeconds)
			fmt.Fprintf(out, "[display]\n")
			fmt.Fprintf(out, "theme = %s\n", cfg.Display.Theme)
			fmt.Fprintf(out, "time_format = %s\n", cfg.Display.TimeFormat)
			fmt.Fprintf(out, "date_format = %s\n", cfg.Display.DateFormat)
			fmt.Fprintf(out, "font_size = %d\n", cfg.Display.FontSize)
			fmt.Fprintf(out, "opacity = %.2f\n", cfg.Display.Opacity)
			fmt.Fprintf(out, "show_seconds = %t\n", cfg.Display.ShowSeconds)
			fmt.Fprintf(out, "show_date = %t\n", cfg.Display.ShowDate)
			fmt.Fprintf(out, "show_weather = %t\n", cfg.Display.ShowWeather)
			fmt.Fprintf(out, "show_todo = %t\n", cfg.Display.ShowTodo)
			fmt.Fprintf(out, "low_power_mode = %t\n\n", cfg.Display.LowPowerMode)
			fmt.Fprintf(out, "[system]\n")
			fmt.Fprintf(out, "startup_enabled = %t\n", cfg.System.StartupEnabled)
			fmt.Fprintf(out, "tray_enabled = %t\n", cfg.System.TrayEnabled)
			fmt.Fprintf(out, "turn_off_screen_delay_minutes = %d\n", cfg.System.TurnOffScreenDelayMinutes)
			fmt.Fprintf(out, "notifications_enabled = %t\n\n", cfg.System.NotificationsEnabled)
			fmt.Fprintf(out, "[weather]\n")
			fmt.Fprintf(out, "location = %s\n", cfg.Weather.Location)
			fmt.Fprintf(out, "units = %s\n\n", cfg.Weather.Units)
			fmt.Fprintf(out, "[dashboard]\n")
			fmt.Fprintf(out, "enabled = %t\n", cfg.Dashboard.Enabled)
			fmt.Fprintf(out, "api_url = %s\n", cfg.Dashboard.APIURL)
			fmt.Fprintf(out, "sync_settings = %t\n\n", cfg.Dashboard.SyncSettings)
			fmt.Fprintf(out, "[update]\n")
			fmt.Fprintf(out, "auto_check = %t\n", cfg.Update.AutoCheck)
			fmt.Fprintf(out, "channel = %s\n\n", cfg.Update.Channel)
			fmt.Fprintf(out, "[todo]\n")
			fmt.Fprintf(out, "items = %s\n", strings.Join(cfg.Todo.Items, ","))
			return nil
		},
	}
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <section.key> <value>",
		Short: "Set a configuration value",
		Long: `Set a configuration value and save the file.

Examples:
  restmode config set activation.delay_minutes 10
  restmode config set display.theme blue
  restmode config set weather.location "Oslo"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			if err := setConfigValue(cfg, args[0], args[1]); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if err := config.Save(cfg, cfgFile); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", args[0], args[1])
			return nil
		},
	}
}

func newConfigResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Reset the configuration to defaults",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Save(config.New(), cfgFile); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Configuration reset to defaults")
			return nil
		},
	}
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := cfgFile
			if path == "" {
				var err error
				path, err = config.DefaultPath()
				if err != nil {
					return err
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

// setConfigValue applies one "section.key value" assignment.
func setConfigValue(cfg *config.Config, key, value string) error {
	parseBool := func() (bool, error) {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return false, fmt.Errorf("%s expects true or false, got %q", key, value)
		}
		return b, nil
	}
	parseInt := func() (int, error) {
		n, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("%s expects a number, got %q", key, value)
		}
		return n, nil
	}

	var err error
	switch key {
	case "activation.enabled":
		cfg.Activation.Enabled, err = parseBool()
	case "activation.delay_minutes":
		cfg.Activation.DelayMinutes, err = parseInt()
	case "activation.check_interval_seconds":
		cfg.Activation.CheckIntervalSeconds, err = parseInt()
	case "display.theme":
		cfg.Display.Theme = value
	case "display.time_format":
		cfg.Display.TimeFormat = value
	case "display.date_format":
		cfg.Display.DateFormat = value
	case "display.font_size":
		cfg.Display.FontSize, err = parseInt()
	case "display.opacity":
		cfg.Display.Opacity, err = strconv.ParseFloat(value, 64)
		if err != nil {
			err = fmt.Errorf("%s expects a number, got %q", key, value)
		}
	case "display.show_seconds":
		cfg.Display.ShowSeconds, err = parseBool()
	case "display.show_date":
		cfg.Display.ShowDate, err = parseBool()
	case "display.show_weather":
		cfg.Display.ShowWeather, err = parseBool()
	case "display.show_todo":
		cfg.Display.ShowTodo, err = parseBool()
	case "display.low_power_mode":
		cfg.Display.LowPowerMode, err = parseBool()
	case "display.multi_monitor":
		cfg.Display.MultiMonitor, err = parseBool()
	case "system.startup_enabled":
		cfg.System.StartupEnabled, err = parseBool()
	case "system.tray_enabled":
		cfg.System.TrayEnabled, err = parseBool()
	case "system.turn_off_screen_delay_minutes":
		cfg.System.TurnOffScreenDelayMinutes, err = parseInt()
	case "system.notifications_enabled":
		cfg.System.NotificationsEnabled, err = parseBool()
	case "weather.location":
		cfg.Weather.Location = value
	case "weather.units":
		cfg.Weather.Units = value
	case "weather.api_key":
		cfg.Weather.APIKey = value
	case "dashboard.enabled":
		cfg.Dashboard.Enabled, err = parseBool()
	case "dashboard.api_url":
		cfg.Dashboard.APIURL = value
	case "dashboard.sync_settings":
		cfg.Dashboard.SyncSettings, err = parseBool()
	case "update.auto_check":
		cfg.Update.AutoCheck, err = parseBool()
	case "update.channel":
		cfg.Update.Channel = value
	case "todo.items":
		cfg.Todo.Items = splitItems(value)
	default:
		return fmt.Errorf("unknown configuration key %q", key)
	}
	return err
}

// splitItems parses a comma-separated item list, dropping empty entries.
func splitItems(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}
