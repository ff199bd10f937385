// Package content retrieves markdown documents for the current navigation
// state. Loads are asynchronous; correctness under overlapping navigations
// rests on a per-request generation counter: a completed load whose
// generation is no longer current is stale and must be discarded, so the
// displayed content always belongs to the latest navigation.
package content

import (
	"context"
	"fmt"
	"html"
	"path"
	"sync/atomic"

	"github.com/Amor-Self-learning/docview/internal/registry"
	"github.com/Amor-Self-learning/docview/internal/router"
)

// Result is the outcome of one load. Gen identifies the navigation that
// started it; State is the originating navigation state, re-checked by the
// consumer before the result touches shared UI state.
type Result struct {
	Gen      uint64
	State    router.State
	Path     string
	Markdown []byte
	Err      error
}

// Loader starts document loads and hands their results back on a channel.
// Start may be called from one goroutine only; results are delivered from
// fetch goroutines and consumed by the same event loop that calls Start.
type Loader struct {
	fetcher Fetcher
	reg     *registry.Registry
	home    string
	gen     atomic.Uint64
	results chan Result
}

// NewLoader creates a Loader. home is the document path rendered at the
// home state.
func NewLoader(fetcher Fetcher, reg *registry.Registry, home string) *Loader {
	return &Loader{
		fetcher: fetcher,
		reg:     reg,
		home:    home,
		results: make(chan Result, 4),
	}
}

// Results delivers load completions, possibly out of navigation order.
// Consumers must drop results for which Stale reports true.
func (l *Loader) Results() <-chan Result { return l.results }

// ResolvePath maps a navigation state to a document path. The second return
// is false when the state has nothing to load (a section with no files).
func (l *Loader) ResolvePath(st router.State) (string, bool) {
	if st.Mode == router.ModeHome {
		return l.home, true
	}
	sec, ok := l.reg.Lookup(st.SectionID)
	if !ok || st.File == "" {
		return "", false
	}
	return path.Join(sec.Root, st.File), true
}

// Start begins an asynchronous load for the given state and returns its
// generation. It returns false without loading when the state resolves to
// no document.
func (l *Loader) Start(ctx context.Context, st router.State) (uint64, bool) {
	p, ok := l.ResolvePath(st)
	if !ok {
		return 0, false
	}
	gen := l.gen.Add(1)
	go func() {
		data, err := l.fetcher.Fetch(ctx, p)
		select {
		case l.results <- Result{Gen: gen, State: st, Path: p, Markdown: data, Err: err}:
		case <-ctx.Done():
		}
	}()
	return gen, true
}

// Stale reports whether a result belongs to a superseded navigation.
// Last navigation wins: only the result matching the current generation may
// be applied.
func (l *Loader) Stale(r Result) bool {
	return r.Gen != l.gen.Load()
}

// ErrorPanel renders the inline, non-fatal panel shown when a load fails.
// It names the failed path and gives a remediation hint; navigation remains
// usable around it.
func ErrorPanel(docPath string) string {
	return fmt.Sprintf(
		`<div class="load-error"><h2>Document could not be loaded</h2>`+
			`<p>Failed to load <code>%s</code>.</p>`+
			`<p class="hint">Check that the file exists under the docs directory and that the registry entry in <code>.docview.yml</code> matches its path.</p></div>`,
		html.EscapeString(docPath))
}

// PlaceholderPanel renders the document body for a section that has no
// files yet.
func PlaceholderPanel(title string) string {
	return fmt.Sprintf(
		`<div class="placeholder"><h2>%s</h2><p>This section has no documents yet. Check back soon.</p></div>`,
		html.EscapeString(title))
}
