package config

import "github.com/ternsecure/docsite/internal/navigation"

// Config is the top-level docsite configuration, corresponding to .docsite.yml.
type Config struct {
	Title      string               `yaml:"title" koanf:"title"`
	BaseURL    string               `yaml:"base_url" koanf:"base_url"`
	ContentDir string               `yaml:"content_dir" koanf:"content_dir"`
	OutputDir  string               `yaml:"output_dir" koanf:"output_dir"`
	Include    []string             `yaml:"include" koanf:"include"`
	Exclude    []string             `yaml:"exclude" koanf:"exclude"`
	Server     ServerConfig         `yaml:"server" koanf:"server"`
	Tabs       []navigation.Tab     `yaml:"tabs" koanf:"tabs"`
	Navigation []navigation.Section `yaml:"navigation" koanf:"navigation"`
}

// ServerConfig holds dev server settings.
type ServerConfig struct {
	Port            int  `yaml:"port" koanf:"port"`
	AllowAllOrigins bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}
