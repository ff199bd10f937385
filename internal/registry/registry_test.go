package registry

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLookup(t *testing.T) {
	reg := New([]Section{
		{ID: "a", Title: "Alpha", Root: "a", Files: []string{"1.md", "2.md"}},
		{ID: "b", Title: "Beta", Root: "b"},
	})

	sec, ok := reg.Lookup("a")
	if !ok {
		t.Fatal("Lookup(a) not found")
	}
	if sec.Title != "Alpha" {
		t.Errorf("title = %q, want Alpha", sec.Title)
	}
	if sec.DefaultFile() != "1.md" {
		t.Errorf("DefaultFile = %q, want 1.md", sec.DefaultFile())
	}
	if !sec.HasFile("2.md") {
		t.Error("HasFile(2.md) = false")
	}
	if sec.HasFile("3.md") {
		t.Error("HasFile(3.md) = true")
	}

	// Absence is a normal outcome, not an error.
	if _, ok := reg.Lookup("missing"); ok {
		t.Error("Lookup(missing) found")
	}

	b, _ := reg.Lookup("b")
	if b.DefaultFile() != "" {
		t.Errorf("empty section DefaultFile = %q, want empty", b.DefaultFile())
	}
}

func TestSectionsOrderPreserved(t *testing.T) {
	// Registry order is nav order; it must never be sorted.
	reg := New([]Section{
		{ID: "z", Title: "Z"},
		{ID: "a", Title: "A"},
		{ID: "m", Title: "M"},
	})
	got := reg.Sections()
	want := []string{"z", "a", "m"}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("sections[%d] = %q, want %q", i, got[i].ID, id)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		sections []Section
		wantErr  bool
	}{
		{"valid", []Section{{ID: "a", Title: "A"}, {ID: "b-2", Title: "B"}}, false},
		{"duplicate id", []Section{{ID: "a", Title: "A"}, {ID: "a", Title: "B"}}, true},
		{"empty id", []Section{{ID: "", Title: "A"}}, true},
		{"unsafe id", []Section{{ID: "A B", Title: "A"}}, true},
		{"empty title", []Section{{ID: "a", Title: ""}}, true},
		{"empty registry", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.sections).Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSlugID(t *testing.T) {
	tests := []struct{ input, want string }{
		{"Browser APIs", "browser-apis"},
		{"01_dom", "01_dom"},
		{"ECMAScript!", "ecmascript"},
		{"-edge-", "edge"},
	}
	for _, tt := range tests {
		if got := SlugID(tt.input); got != tt.want {
			t.Errorf("SlugID(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	mustWrite(t, dir, "README.md")
	mustWrite(t, dir, "ecmascript/01-intro.md")
	mustWrite(t, dir, "ecmascript/02-types.md")
	mustWrite(t, dir, "browser-apis/dom.md")
	mustWrite(t, dir, "browser-apis/notes.txt")
	mustWrite(t, dir, "node_modules/skip/me.md")

	sections, err := Discover(dir, nil)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(sections) != 2 {
		t.Fatalf("sections = %d, want 2", len(sections))
	}

	// Sorted by directory name: browser-apis before ecmascript.
	if sections[0].ID != "browser-apis" {
		t.Errorf("first id = %q, want browser-apis", sections[0].ID)
	}
	if sections[0].Title != "Browser Apis" {
		t.Errorf("first title = %q", sections[0].Title)
	}
	if len(sections[0].Files) != 1 || sections[0].Files[0] != "dom.md" {
		t.Errorf("browser-apis files = %v", sections[0].Files)
	}

	es := sections[1]
	if es.Root != "ecmascript" {
		t.Errorf("root = %q, want ecmascript", es.Root)
	}
	if len(es.Files) != 2 || es.Files[0] != "01-intro.md" || es.Files[1] != "02-types.md" {
		t.Errorf("ecmascript files = %v", es.Files)
	}
}

func TestVerifyFiles(t *testing.T) {
	dir := t.TempDir()
	mustWrite(t, dir, "a/1.md")

	reg := New([]Section{{ID: "a", Title: "A", Root: "a", Files: []string{"1.md", "2.md"}}})
	errs := VerifyFiles(dir, reg)
	if len(errs) != 1 {
		t.Fatalf("errors = %d, want 1: %v", len(errs), errs)
	}
}

func mustWrite(t *testing.T, dir, rel string) {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("# "+rel+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
}
