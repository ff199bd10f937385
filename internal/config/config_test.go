package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Amor-Self-learning/docview/internal/registry"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Title != "Documentation" {
		t.Errorf("title = %q", cfg.Title)
	}
	if cfg.Port != 8080 {
		t.Errorf("port = %d", cfg.Port)
	}
	if cfg.Home != "README.md" {
		t.Errorf("home = %q", cfg.Home)
	}
	if cfg.DefaultTheme != "light" {
		t.Errorf("default_theme = %q", cfg.DefaultTheme)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	raw := `title: JS Handbook
docs_dir: docs
port: 9000
sections:
  - id: es
    title: ECMAScript
    root: es
    files:
      - 01-intro.md
`
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Title != "JS Handbook" {
		t.Errorf("title = %q", cfg.Title)
	}
	if cfg.Port != 9000 {
		t.Errorf("port = %d", cfg.Port)
	}
	// Unset keys keep their defaults.
	if cfg.Home != "README.md" {
		t.Errorf("home = %q", cfg.Home)
	}
	if len(cfg.Sections) != 1 || cfg.Sections[0].ID != "es" {
		t.Fatalf("sections = %+v", cfg.Sections)
	}
	if len(cfg.Sections[0].Files) != 1 || cfg.Sections[0].Files[0] != "01-intro.md" {
		t.Errorf("files = %v", cfg.Sections[0].Files)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("DOCVIEW_TITLE", "From Env")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Title != "From Env" {
		t.Errorf("title = %q, want env override", cfg.Title)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)

	cfg := DefaultConfig()
	cfg.Title = "Round Trip"
	cfg.Port = 3000
	cfg.DefaultTheme = "dark"
	cfg.Sections = []registry.Section{
		{ID: "a", Title: "Alpha", Root: "a", Files: []string{"1.md", "2.md"}},
	}
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Title != "Round Trip" || got.Port != 3000 || got.DefaultTheme != "dark" {
		t.Errorf("loaded = %+v", got)
	}
	if len(got.Sections) != 1 || got.Sections[0].ID != "a" || len(got.Sections[0].Files) != 2 {
		t.Errorf("sections = %+v", got.Sections)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		c := DefaultConfig()
		c.Sections = []registry.Section{{ID: "a", Title: "Alpha", Root: "a"}}
		return c
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"no title", func(c *Config) { c.Title = "" }, true},
		{"no docs dir", func(c *Config) { c.DocsDir = "" }, true},
		{"no home", func(c *Config) { c.Home = "" }, true},
		{"port zero", func(c *Config) { c.Port = 0 }, true},
		{"port too high", func(c *Config) { c.Port = 70000 }, true},
		{"negative breakpoint", func(c *Config) { c.SidebarBreakpoint = -1 }, true},
		{"bad theme", func(c *Config) { c.DefaultTheme = "sepia" }, true},
		{"duplicate section", func(c *Config) {
			c.Sections = append(c.Sections, registry.Section{ID: "a", Title: "Again"})
		}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := c.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
