// Package shell composes the viewer: it owns theme, sidebar, and filter
// state, wires the router, navigation renderer, loader, and markdown
// pipeline together, and serves the result over HTTP and WebSocket.
package shell

import (
	"fmt"
	"html"
	"log"
	"sync"

	"github.com/Amor-Self-learning/docview/internal/config"
	"github.com/Amor-Self-learning/docview/internal/content"
	"github.com/Amor-Self-learning/docview/internal/markdown"
	"github.com/Amor-Self-learning/docview/internal/prefs"
	"github.com/Amor-Self-learning/docview/internal/registry"
	"github.com/Amor-Self-learning/docview/internal/router"
)

// App is the explicitly constructed application context passed to every
// component. There are no package-level singletons; multiple independent
// instances coexist under test.
type App struct {
	Config   *config.Config
	Registry *registry.Registry
	Pipeline *markdown.Pipeline
	Fetcher  content.Fetcher
	Prefs    *prefs.Store

	LightCSS string
	DarkCSS  string

	mu       sync.Mutex
	theme    string
	themeSet bool
}

// NewApp wires the application context from configuration. The theme
// preference is read once here; afterwards it changes only through
// ToggleTheme.
func NewApp(cfg *config.Config, store *prefs.Store) (*App, error) {
	reg := cfg.Registry()
	if err := reg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid registry: %w", err)
	}

	lightCSS, err := markdown.HighlightCSS("github")
	if err != nil {
		return nil, err
	}
	darkCSS, err := markdown.HighlightCSS("github-dark")
	if err != nil {
		return nil, err
	}

	a := &App{
		Config:   cfg,
		Registry: reg,
		Pipeline: markdown.NewPipeline(),
		Fetcher:  &content.FileFetcher{Dir: cfg.DocsDir},
		Prefs:    store,
		LightCSS: lightCSS,
		DarkCSS:  darkCSS,
	}

	if store != nil {
		mode, ok, err := store.Theme()
		if err != nil {
			return nil, err
		}
		a.theme, a.themeSet = mode, ok
	}
	return a, nil
}

// Theme resolves the effective theme mode. A persisted preference wins;
// otherwise the client's OS light/dark hint applies, then the configured
// default.
func (a *App) Theme(osHint string) string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.themeLocked(osHint)
}

func (a *App) themeLocked(osHint string) string {
	if a.themeSet {
		return a.theme
	}
	if osHint == prefs.ThemeLight || osHint == prefs.ThemeDark {
		return osHint
	}
	return a.Config.DefaultTheme
}

// ToggleTheme flips the effective theme and persists the result, so a fresh
// load restores it without consulting the OS signal again.
func (a *App) ToggleTheme(osHint string) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	mode := prefs.ThemeDark
	if a.themeLocked(osHint) == prefs.ThemeDark {
		mode = prefs.ThemeLight
	}
	if a.Prefs != nil {
		if err := a.Prefs.SetTheme(mode); err != nil {
			return "", err
		}
	}
	a.theme, a.themeSet = mode, true
	return mode, nil
}

// RecordVisit stores an applied navigation. Failures are logged, never
// surfaced: history is a convenience, not a correctness concern.
func (a *App) RecordVisit(fragment string) {
	if a.Prefs == nil {
		return
	}
	if err := a.Prefs.RecordVisit(fragment); err != nil {
		log.Printf("shell: recording visit: %v", err)
	}
}

// RecentHTML renders the recently-viewed list appended to the home
// document. Fragments that no longer resolve are skipped.
func (a *App) RecentHTML(n int) string {
	if a.Prefs == nil {
		return ""
	}
	visits, err := a.Prefs.Recent(n)
	if err != nil {
		log.Printf("shell: listing visits: %v", err)
		return ""
	}

	var items string
	for _, v := range visits {
		st := router.ParseState(v.Fragment, a.Registry)
		if st.Mode != router.ModeSection {
			continue
		}
		sec, ok := a.Registry.Lookup(st.SectionID)
		if !ok {
			continue
		}
		label := sec.Title
		if st.File != "" {
			label += " / " + st.File
		}
		items += fmt.Sprintf(`<li><a href="%s">%s</a></li>`,
			html.EscapeString(router.Serialize(st)), html.EscapeString(label))
	}
	if items == "" {
		return ""
	}
	return `<div class="recent"><h2>Recently viewed</h2><ul>` + items + `</ul></div>`
}
