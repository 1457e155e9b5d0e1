// Restmode - idle-activated rest screen with tray, settings, and dashboard
// integration.
//
// - No args + display available → tray mode
// - CLI subcommands/flags → CLI mode
// - No display → CLI mode
package main

import (
	"fmt"
	"os"
	"runtime"
	"slices"
	"strings"

	"github.com/restmode/restmode/internal/app"
	"github.com/restmode/restmode/internal/cli"
)

func main() {
	if isCLIMode() {
		if err := cli.Execute(); err != nil {
			os.Exit(1)
		}
		return
	}

	if err := app.Run(configPathFromArgs()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// isCLIMode determines whether to run in CLI mode based on arguments and
// environment.
//
// CLI mode when:
// - CLI subcommands are present (config, login, activate, ...)
// - CLI flags are present (--help, --version, -h)
// - No display available (DISPLAY/WAYLAND_DISPLAY not set on Linux)
//
// Tray mode when:
// - No arguments (or only tray flags) and a display is available
func isCLIMode() bool {
	cliPatterns := []string{
		// Subcommands
		"activate", "config", "login", "logout", "update", "completion",
		// Flags
		"--help", "-h", "--version",
	}

	trayOnlyFlags := []string{"--minimized", "--config", "-c", "--verbose", "-v", "--debug"}

	for _, arg := range os.Args[1:] {
		if slices.Contains(cliPatterns, arg) {
			return true
		}
	}

	if runtime.GOOS == "linux" {
		if os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "" {
			return true // No display, default to CLI
		}
	}

	// Unknown flags go to the CLI so typos show help rather than silently
	// opening the tray. Bare values are left alone; they are arguments to a
	// preceding tray flag (e.g. -c path).
	for _, arg := range os.Args[1:] {
		if !strings.HasPrefix(arg, "-") {
			continue
		}
		known := false
		for _, flag := range trayOnlyFlags {
			if arg == flag || strings.HasPrefix(arg, flag+"=") {
				known = true
				break
			}
		}
		if !known {
			return true
		}
	}

	return false
}

// configPathFromArgs extracts --config/-c for tray mode, where cobra does not
// run.
func configPathFromArgs() string {
	args := os.Args[1:]
	for i, arg := range args {
		switch {
		case arg == "--config" || arg == "-c":
			if i+1 < len(args) {
				return args[i+1]
			}
		case strings.HasPrefix(arg, "--config="):
			return strings.TrimPrefix(arg, "--config=")
		}
	}
	return ""
}
