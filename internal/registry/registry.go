package registry

import (
	"fmt"
	"strings"
)

// Section is one top-level grouping of documentation files sharing a common
// root path. The order of Files defines the sidebar order; it is never sorted.
type Section struct {
	ID    string   `yaml:"id" koanf:"id"`
	Title string   `yaml:"title" koanf:"title"`
	Root  string   `yaml:"root" koanf:"root"`
	Files []string `yaml:"files" koanf:"files"`
}

// DefaultFile returns the first file of the section, or "" if the section
// has no files.
func (s *Section) DefaultFile() string {
	if len(s.Files) == 0 {
		return ""
	}
	return s.Files[0]
}

// HasFile reports whether name is one of the section's files.
func (s *Section) HasFile(name string) bool {
	for _, f := range s.Files {
		if f == name {
			return true
		}
	}
	return false
}

// Registry is the read-only catalog of documentation sections. It is built
// once at startup and never mutated afterwards.
type Registry struct {
	sections []Section
	byID     map[string]int
}

// New builds a Registry from an ordered section list. The input slice is
// copied; later mutations of the argument do not affect the registry.
func New(sections []Section) *Registry {
	r := &Registry{
		sections: append([]Section(nil), sections...),
		byID:     make(map[string]int, len(sections)),
	}
	for i, s := range r.sections {
		if _, dup := r.byID[s.ID]; !dup {
			r.byID[s.ID] = i
		}
	}
	return r
}

// Sections returns the sections in registry order.
func (r *Registry) Sections() []Section {
	return r.sections
}

// Lookup finds a section by id. A missing id is a normal outcome, not an
// error.
func (r *Registry) Lookup(id string) (*Section, bool) {
	i, ok := r.byID[id]
	if !ok {
		return nil, false
	}
	return &r.sections[i], true
}

// Len returns the number of sections.
func (r *Registry) Len() int { return len(r.sections) }

// Validate checks the registry invariants: every section has a non-empty,
// unique, URL-safe id and a title.
func (r *Registry) Validate() error {
	seen := make(map[string]bool, len(r.sections))
	for _, s := range r.sections {
		if s.ID == "" {
			return fmt.Errorf("section %q has an empty id", s.Title)
		}
		if !urlSafe(s.ID) {
			return fmt.Errorf("section id %q contains characters outside [a-z0-9._-]", s.ID)
		}
		if seen[s.ID] {
			return fmt.Errorf("duplicate section id %q", s.ID)
		}
		seen[s.ID] = true
		if s.Title == "" {
			return fmt.Errorf("section %q has an empty title", s.ID)
		}
	}
	return nil
}

// urlSafe reports whether the id can appear verbatim in an address fragment.
func urlSafe(id string) bool {
	for _, c := range id {
		switch {
		case c >= 'a' && c <= 'z':
		case c >= '0' && c <= '9':
		case c == '-' || c == '_' || c == '.':
		default:
			return false
		}
	}
	return true
}

// SlugID converts an arbitrary directory or title name into a URL-safe
// section id.
func SlugID(name string) string {
	var b strings.Builder
	for _, c := range strings.ToLower(name) {
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9', c == '.', c == '_':
			b.WriteRune(c)
		case c == ' ', c == '-':
			b.WriteByte('-')
		}
	}
	return strings.Trim(b.String(), "-")
}
