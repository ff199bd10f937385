package config

import "github.com/Amor-Self-learning/docview/internal/registry"

// DefaultFile is the conventional config file name.
const DefaultFile = ".docview.yml"

// Config is the top-level docview configuration, corresponding to .docview.yml.
type Config struct {
	Title             string             `yaml:"title" koanf:"title"`
	DocsDir           string             `yaml:"docs_dir" koanf:"docs_dir"`
	DataDir           string             `yaml:"data_dir" koanf:"data_dir"`
	Home              string             `yaml:"home" koanf:"home"`
	Port              int                `yaml:"port" koanf:"port"`
	SidebarBreakpoint int                `yaml:"sidebar_breakpoint" koanf:"sidebar_breakpoint"`
	DefaultTheme      string             `yaml:"default_theme" koanf:"default_theme"`
	Sections          []registry.Section `yaml:"sections" koanf:"sections"`
}

// DefaultConfig returns the configuration defaults. The section list is
// empty; `docview init` seeds it from the docs directory.
func DefaultConfig() *Config {
	return &Config{
		Title:             "Documentation",
		DocsDir:           ".",
		DataDir:           ".docview",
		Home:              "README.md",
		Port:              8080,
		SidebarBreakpoint: 900,
		DefaultTheme:      "light",
	}
}

// Registry builds the immutable section registry from the configured list.
func (c *Config) Registry() *registry.Registry {
	return registry.New(c.Sections)
}
