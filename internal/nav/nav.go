// Package nav renders the filterable sidebar link tree. Rendering is a pure
// function of (registry, state, filter): identical inputs produce identical
// HTML, which keeps the sidebar deterministic and testable.
package nav

import (
	"fmt"
	"html"
	"net/url"
	"strings"

	"github.com/Amor-Self-learning/docview/internal/registry"
	"github.com/Amor-Self-learning/docview/internal/router"
)

// Renderer builds sidebar HTML for a fixed registry.
type Renderer struct {
	reg *registry.Registry
}

// NewRenderer creates a Renderer over the given registry.
func NewRenderer(reg *registry.Registry) *Renderer {
	return &Renderer{reg: reg}
}

// Render produces the sidebar for the current state. The filter narrows the
// visible entries case-insensitively; it never changes the state. Exactly
// one link is marked active, or zero when the active entry is filtered out.
func (r *Renderer) Render(state router.State, filter string) string {
	var b strings.Builder
	homeActive := ""
	if state.Mode == router.ModeHome {
		homeActive = ` class="active"`
	}
	fmt.Fprintf(&b, `<ul class="nav-top"><li class="nav-home"><a href="#"%s>Home</a></li></ul>`+"\n", homeActive)

	switch state.Mode {
	case router.ModeSection:
		if sec, ok := r.reg.Lookup(state.SectionID); ok {
			r.renderSection(&b, sec, state, filter)
			return b.String()
		}
		// Unresolvable state never reaches here via ParseState; fall back
		// to the home list all the same.
		fallthrough
	default:
		r.renderHome(&b, filter)
	}
	return b.String()
}

// renderHome writes one entry per section whose title contains the filter.
func (r *Renderer) renderHome(b *strings.Builder, filter string) {
	b.WriteString("<ul class=\"nav-sections\">\n")
	for _, sec := range r.reg.Sections() {
		if !matches(sec.Title, filter) {
			continue
		}
		fmt.Fprintf(b, `<li class="nav-section"><a href="#%s">%s</a></li>`+"\n",
			sec.ID, html.EscapeString(sec.Title))
	}
	b.WriteString("</ul>\n")
}

// renderSection writes one entry per matching file of the active section.
// An empty file list yields a single non-navigable placeholder entry.
func (r *Renderer) renderSection(b *strings.Builder, sec *registry.Section, state router.State, filter string) {
	fmt.Fprintf(b, `<div class="nav-section-title">%s</div>`+"\n", html.EscapeString(sec.Title))
	b.WriteString("<ul class=\"nav-files\">\n")
	if len(sec.Files) == 0 {
		b.WriteString(`<li class="nav-placeholder">Coming soon</li>` + "\n")
		b.WriteString("</ul>\n")
		return
	}
	for _, f := range sec.Files {
		name := displayName(f)
		if !matches(name, filter) {
			continue
		}
		active := ""
		if f == state.File {
			active = ` class="active"`
		}
		fmt.Fprintf(b, `<li class="nav-file"><a href="#%s/%s"%s>%s</a></li>`+"\n",
			sec.ID, url.PathEscape(f), active, html.EscapeString(name))
	}
	b.WriteString("</ul>\n")
}

// matches is the case-insensitive substring test used for filtering. The
// empty filter matches everything.
func matches(title, filter string) bool {
	if filter == "" {
		return true
	}
	return strings.Contains(strings.ToLower(title), strings.ToLower(filter))
}

// displayName strips the .md extension for sidebar display.
func displayName(file string) string {
	return strings.TrimSuffix(file, ".md")
}
