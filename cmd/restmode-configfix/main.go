// Restmode Configfix - repairs a restmode.conf damaged by hand edits or
// older releases.
//
// Loads the config (missing keys get defaults), clamps out-of-range values,
// and rewrites the file in the current format.
//
// Usage:
//
//	restmode-configfix [path]
package main

import (
	"fmt"
	"os"

	"github.com/restmode/restmode/internal/config"
	"github.com/restmode/restmode/internal/logging"
)

func main() {
	logger := logging.NewDefaultCLILogger()

	path := ""
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			logger.Error().Err(err).Msg("Failed to determine config path")
			os.Exit(1)
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("Config unreadable, rewriting with defaults")
		cfg = config.New()
	}

	if err := cfg.Validate(); err != nil {
		logger.Warn().Err(err).Msg("Out-of-range values found, clamping")
		cfg.Clamp()
	}

	if err := config.Save(cfg, path); err != nil {
		logger.Error().Err(err).Str("path", path).Msg("Failed to write repaired config")
		os.Exit(1)
	}

	fmt.Printf("Repaired %s\n", path)
}
