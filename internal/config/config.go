package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
	yamlv3 "gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up when --config is not given.
const DefaultPath = ".docsite.yml"

// flagKeys maps CLI flag names onto config keys. Only these flags override
// the file and the environment.
var flagKeys = map[string]string{
	"content-dir": "content_dir",
	"output-dir":  "output_dir",
	"port":        "server.port",
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (DOCSITE_*).
func Load(path string) (*Config, error) {
	return LoadWithFlags(path, nil)
}

// LoadWithFlags is Load plus explicitly set command-line flags, which take
// precedence over both the file and the environment.
func LoadWithFlags(path string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: DOCSITE_TITLE -> title,
	// DOCSITE_SERVER__PORT -> server.port.
	if err := k.Load(env.Provider("DOCSITE_", ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, "DOCSITE_"))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			key, ok := flagKeys[f.Name]
			if !ok || !f.Changed {
				return "", nil
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("loading flag overrides: %w", err)
		}
	}

	// Configured lists replace the defaults instead of merging into them
	// element by element.
	if k.Exists("tabs") {
		cfg.Tabs = nil
	}
	if k.Exists("navigation") {
		cfg.Navigation = nil
	}
	if k.Exists("include") {
		cfg.Include = nil
	}
	if k.Exists("exclude") {
		cfg.Exclude = nil
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
// Navigation content itself is not validated: a malformed item still
// renders, with a "#" link.
func (c *Config) Validate() error {
	if c.Title == "" {
		return fmt.Errorf("title is required")
	}
	if c.ContentDir == "" {
		return fmt.Errorf("content_dir is required")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}

	seen := make(map[string]bool)
	for i, tab := range c.Tabs {
		if tab.SDK == "" {
			return fmt.Errorf("tabs[%d] (%q): sdk is required", i, tab.Title)
		}
		if tab.URL == "" && len(tab.URLs) == 0 {
			return fmt.Errorf("tabs[%d] (%q): url is required", i, tab.Title)
		}
		if strings.Contains(tab.SDK, "$") {
			return fmt.Errorf("tabs[%d] (%q): sdk %q must not contain '$'", i, tab.Title, tab.SDK)
		}
		if seen[tab.SDK] {
			return fmt.Errorf("tabs[%d]: duplicate sdk %q", i, tab.SDK)
		}
		seen[tab.SDK] = true
	}

	for i, sec := range c.Navigation {
		if sec.Title == "" {
			return fmt.Errorf("navigation[%d]: title is required", i)
		}
	}
	return nil
}
