// Package router derives navigation state from the address fragment. The
// fragment grammar is:
//
//	#                          home
//	#<sectionId>               section, first file
//	#<sectionId>/<enc-file>    section, specific file (percent-encoded)
//
// State is always recomputed from the fragment; unknown ids and files are
// recovered locally and never surface as errors.
package router

import (
	"net/url"
	"strings"

	"github.com/Amor-Self-learning/docview/internal/registry"
)

// Mode tags the navigation state variant.
type Mode int

const (
	ModeHome Mode = iota
	ModeSection
)

func (m Mode) String() string {
	if m == ModeSection {
		return "section"
	}
	return "home"
}

// State is the parsed navigation state. In ModeSection, SectionID always
// resolves to a known section; File is one of its files, or "" when the
// section has no files.
type State struct {
	Mode      Mode
	SectionID string
	File      string
}

// Home is the zero navigation state.
var Home = State{Mode: ModeHome}

// ParseState maps an address fragment to a State. Unknown section ids fall
// back to home; a missing or unknown file component falls back to the
// section's first file. Parsing is pure: the same fragment always yields the
// same state.
func ParseState(fragment string, reg *registry.Registry) State {
	frag := strings.TrimPrefix(fragment, "#")
	if frag == "" {
		return Home
	}

	idPart, filePart, _ := strings.Cut(frag, "/")
	sec, ok := reg.Lookup(decodeComponent(idPart))
	if !ok {
		return Home
	}

	file := decodeComponent(filePart)
	if !sec.HasFile(file) {
		file = sec.DefaultFile()
	}
	return State{Mode: ModeSection, SectionID: sec.ID, File: file}
}

// Serialize is the inverse of ParseState for every reachable state:
// ParseState(Serialize(s), reg) == s.
func Serialize(s State) string {
	if s.Mode == ModeHome {
		return "#"
	}
	if s.File == "" {
		return "#" + s.SectionID
	}
	return "#" + s.SectionID + "/" + url.PathEscape(s.File)
}

// decodeComponent percent-decodes a fragment component. Malformed encoding
// falls back to the raw string rather than failing.
func decodeComponent(s string) string {
	dec, err := url.PathUnescape(s)
	if err != nil {
		return s
	}
	return dec
}
