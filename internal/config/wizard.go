package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/manifoldco/promptui"

	"github.com/Amor-Self-learning/docview/internal/registry"
)

// RunWizard runs an interactive configuration wizard: it asks for the basic
// settings, discovers sections from the docs directory, and saves the result
// to .docview.yml.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to docview! Let's configure your documentation site.")
	fmt.Println()

	cfg := DefaultConfig()

	// Default title from the working directory name.
	defaultTitle := "Documentation"
	if wd, err := os.Getwd(); err == nil && filepath.Base(wd) != "." {
		defaultTitle = filepath.Base(wd)
	}

	titlePrompt := promptui.Prompt{
		Label:   "Site title",
		Default: defaultTitle,
	}
	title, err := titlePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("title: %w", err)
	}
	cfg.Title = title

	docsPrompt := promptui.Prompt{
		Label:   "Docs directory",
		Default: ".",
	}
	docsDir, err := docsPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("docs dir: %w", err)
	}
	cfg.DocsDir = docsDir

	portPrompt := promptui.Prompt{
		Label:   "Server port",
		Default: strconv.Itoa(cfg.Port),
		Validate: func(s string) error {
			p, err := strconv.Atoi(s)
			if err != nil || p < 1 || p > 65535 {
				return fmt.Errorf("enter a port between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	themePrompt := promptui.Select{
		Label: "Default theme",
		Items: []string{"light", "dark"},
	}
	_, theme, err := themePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("theme: %w", err)
	}
	cfg.DefaultTheme = theme

	// Discover sections from the docs directory.
	sections, err := registry.Discover(docsDir, registry.DefaultInclude)
	if err != nil {
		return nil, fmt.Errorf("discovering sections: %w", err)
	}
	if len(sections) == 0 {
		fmt.Println("\nNo section directories with markdown files found; add sections to .docview.yml by hand.")
	} else {
		fmt.Printf("\nDiscovered %d sections:\n", len(sections))
		for _, s := range sections {
			fmt.Printf("  %-24s %d files\n", s.ID, len(s.Files))
		}
		fmt.Println("File order within each section follows the discovered sort; edit .docview.yml to change the reading order.")
	}
	cfg.Sections = sections

	if err := cfg.Save(DefaultFile); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", DefaultFile)
	return cfg, nil
}
