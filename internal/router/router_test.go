package router

import (
	"testing"

	"github.com/Amor-Self-learning/docview/internal/registry"
)

func testRegistry() *registry.Registry {
	return registry.New([]registry.Section{
		{ID: "a", Title: "Alpha", Root: "a", Files: []string{"1.md", "2.md"}},
		{ID: "empty", Title: "Empty", Root: "empty"},
		{ID: "enc", Title: "Encoded", Root: "enc", Files: []string{"with space.md"}},
	})
}

func TestParseState(t *testing.T) {
	reg := testRegistry()

	tests := []struct {
		fragment string
		want     State
	}{
		{"", Home},
		{"#", Home},
		{"#a", State{Mode: ModeSection, SectionID: "a", File: "1.md"}},
		{"#a/2.md", State{Mode: ModeSection, SectionID: "a", File: "2.md"}},
		{"#a/nope.md", State{Mode: ModeSection, SectionID: "a", File: "1.md"}},
		{"#missing", Home},
		{"#missing/1.md", Home},
		{"#empty", State{Mode: ModeSection, SectionID: "empty"}},
		{"#enc/with%20space.md", State{Mode: ModeSection, SectionID: "enc", File: "with space.md"}},
		// Malformed percent-encoding falls back to the raw string, which
		// is not a known file, so files[0] substitutes.
		{"#a/bad%zz.md", State{Mode: ModeSection, SectionID: "a", File: "1.md"}},
	}
	for _, tt := range tests {
		if got := ParseState(tt.fragment, reg); got != tt.want {
			t.Errorf("ParseState(%q) = %+v, want %+v", tt.fragment, got, tt.want)
		}
	}
}

func TestParseStateIdempotent(t *testing.T) {
	reg := testRegistry()
	for _, frag := range []string{"", "#a", "#a/2.md", "#missing", "#empty"} {
		first := ParseState(frag, reg)
		second := ParseState(frag, reg)
		if first != second {
			t.Errorf("ParseState(%q) not idempotent: %+v then %+v", frag, first, second)
		}
	}
}

func TestSerializeRoundTrip(t *testing.T) {
	reg := testRegistry()

	// Every reachable state round-trips.
	states := []State{
		Home,
		{Mode: ModeSection, SectionID: "a", File: "1.md"},
		{Mode: ModeSection, SectionID: "a", File: "2.md"},
		{Mode: ModeSection, SectionID: "empty"},
		{Mode: ModeSection, SectionID: "enc", File: "with space.md"},
	}
	for _, s := range states {
		if got := ParseState(Serialize(s), reg); got != s {
			t.Errorf("round trip %+v via %q = %+v", s, Serialize(s), got)
		}
	}
}

func TestDispatcherPublishes(t *testing.T) {
	reg := testRegistry()
	d := NewDispatcher(reg)

	var seen []State
	d.Subscribe(func(s State) { seen = append(seen, s) })

	d.SetFragment("#a/2.md")
	d.Navigate("a", "1.md")
	d.Navigate("", "")

	want := []State{
		{Mode: ModeSection, SectionID: "a", File: "2.md"},
		{Mode: ModeSection, SectionID: "a", File: "1.md"},
		Home,
	}
	if len(seen) != len(want) {
		t.Fatalf("publishes = %d, want %d", len(seen), len(want))
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("publish %d = %+v, want %+v", i, seen[i], want[i])
		}
	}
	if d.Current() != Home {
		t.Errorf("Current = %+v, want home", d.Current())
	}
	if d.Fragment() != "#" {
		t.Errorf("Fragment = %q, want #", d.Fragment())
	}
}

func TestDispatcherHandlerOrder(t *testing.T) {
	d := NewDispatcher(testRegistry())
	var order []int
	d.Subscribe(func(State) { order = append(order, 1) })
	d.Subscribe(func(State) { order = append(order, 2) })

	d.SetFragment("#a")
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("handler order = %v, want [1 2]", order)
	}
}

func TestNavigateEncodesFile(t *testing.T) {
	d := NewDispatcher(testRegistry())
	d.Navigate("enc", "with space.md")
	if d.Fragment() != "#enc/with%20space.md" {
		t.Errorf("fragment = %q", d.Fragment())
	}
	if d.Current().File != "with space.md" {
		t.Errorf("file = %q", d.Current().File)
	}
}
