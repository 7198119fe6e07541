package cmd

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/ternsecure/docsite/internal/config"
)

// loadConfig loads and validates the config, applying any explicitly set
// flags from flags on top of the file and the environment.
func loadConfig(flags *pflag.FlagSet) (*config.Config, error) {
	cfg, err := config.LoadWithFlags(cfgFile, flags)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `docsite init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}
