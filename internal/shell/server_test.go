package shell

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	srv, err := NewServer(newTestApp(t, nil))
	if err != nil {
		t.Fatal(err)
	}
	return srv
}

func doGet(t *testing.T, srv *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHealthz(t *testing.T) {
	rec := doGet(t, newTestServer(t), "/healthz")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestIndexFirstPaint(t *testing.T) {
	rec := doGet(t, newTestServer(t), "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Handbook") {
		t.Error("configured title missing")
	}
	if !strings.Contains(body, `data-theme="light"`) {
		t.Error("theme attribute missing")
	}
	// Home navigation is pre-rendered server-side.
	if !strings.Contains(body, `href="#es"`) {
		t.Error("home nav not pre-rendered")
	}
}

func TestAssets(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		path        string
		contentType string
		marker      string
	}{
		{"/assets/app.css", "text/css", ".sidebar"},
		{"/assets/app.js", "application/javascript", "WebSocket"},
		{"/assets/chroma-light.css", "text/css", ".chroma"},
		{"/assets/chroma-dark.css", "text/css", ".chroma"},
	}
	for _, tt := range tests {
		rec := doGet(t, srv, tt.path)
		if rec.Code != http.StatusOK {
			t.Errorf("%s status = %d", tt.path, rec.Code)
			continue
		}
		if got := rec.Header().Get("Content-Type"); got != tt.contentType {
			t.Errorf("%s content-type = %q", tt.path, got)
		}
		if !strings.Contains(rec.Body.String(), tt.marker) {
			t.Errorf("%s body missing %q", tt.path, tt.marker)
		}
	}
}

func TestAPINav(t *testing.T) {
	rec := doGet(t, newTestServer(t), "/api/nav?fragment=%23es")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp struct {
		HTML     string `json:"html"`
		Fragment string `json:"fragment"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(resp.HTML, "01-intro") {
		t.Errorf("nav html = %q", resp.HTML)
	}
	// The canonical fragment names the substituted default file.
	if resp.Fragment != "#es/01-intro.md" {
		t.Errorf("fragment = %q", resp.Fragment)
	}
}

func TestAPIDoc(t *testing.T) {
	rec := doGet(t, newTestServer(t), "/api/doc?fragment=%23es%2F02-types.md")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp struct {
		HTML  string `json:"html"`
		Error bool   `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Error {
		t.Fatal("doc response flagged as error")
	}
	if !strings.Contains(resp.HTML, "Types") {
		t.Errorf("doc html = %q", resp.HTML)
	}
}

func TestAPIDocUnknownSectionServesHome(t *testing.T) {
	rec := doGet(t, newTestServer(t), "/api/doc?fragment=%23nope")
	var resp struct {
		HTML     string `json:"html"`
		Fragment string `json:"fragment"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Fragment != "#" {
		t.Errorf("fragment = %q, want home", resp.Fragment)
	}
	if !strings.Contains(resp.HTML, "Welcome") {
		t.Errorf("doc html = %q", resp.HTML)
	}
}

func TestAPIDocEmptySectionPlaceholder(t *testing.T) {
	rec := doGet(t, newTestServer(t), "/api/doc?fragment=%23soon")
	var resp struct {
		HTML string `json:"html"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(resp.HTML, "Coming Later") {
		t.Errorf("placeholder = %q", resp.HTML)
	}
}
