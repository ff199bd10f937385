package shell

import (
	"context"

	"github.com/Amor-Self-learning/docview/internal/content"
	"github.com/Amor-Self-learning/docview/internal/nav"
	"github.com/Amor-Self-learning/docview/internal/router"
)

// Event is a client-originated occurrence: a fragment change, a filter
// keystroke, or a theme toggle.
type Event struct {
	Type     string `json:"type"` // "navigate" | "filter" | "theme"
	Fragment string `json:"fragment,omitempty"`
	Filter   string `json:"filter,omitempty"`
	OSTheme  string `json:"os_theme,omitempty"`
}

// Update is a server-rendered reaction pushed back to the client.
type Update struct {
	Type     string `json:"type"` // "nav" | "loading" | "doc" | "theme"
	HTML     string `json:"html,omitempty"`
	Fragment string `json:"fragment,omitempty"`
	Theme    string `json:"theme,omitempty"`
	Error    bool   `json:"error,omitempty"`
}

// Session is the per-connection state machine. One goroutine (Run)
// multiplexes client events and load completions, so all state transitions
// are sequential: navigation and filtering stay synchronous while loads
// suspend, and a completed load is applied only if its navigation is still
// current.
type Session struct {
	app        *App
	dispatcher *router.Dispatcher
	renderer   *nav.Renderer
	loader     *content.Loader
	send       func(Update)
	events     chan Event

	ctx     context.Context
	filter  string
	osTheme string
}

// NewSession creates a session delivering updates through send. send is
// only ever called from the Run goroutine.
func NewSession(app *App, send func(Update)) *Session {
	s := &Session{
		app:        app,
		dispatcher: router.NewDispatcher(app.Registry),
		renderer:   nav.NewRenderer(app.Registry),
		loader:     content.NewLoader(app.Fetcher, app.Registry, app.Config.Home),
		send:       send,
		events:     make(chan Event, 16),
	}
	s.dispatcher.Subscribe(s.onNavigate)
	return s
}

// Events is the inbound queue fed by the connection's read loop.
func (s *Session) Events() chan<- Event { return s.events }

// Run drives the session until ctx is cancelled or the event channel
// closes.
func (s *Session) Run(ctx context.Context) {
	s.ctx = ctx
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-s.events:
			if !ok {
				return
			}
			s.handle(ev)
		case res := <-s.loader.Results():
			s.applyLoad(res)
		}
	}
}

func (s *Session) handle(ev Event) {
	if ev.OSTheme != "" {
		s.osTheme = ev.OSTheme
	}
	switch ev.Type {
	case "navigate":
		s.dispatcher.SetFragment(ev.Fragment)
	case "filter":
		// Filtering re-renders navigation only: no load, no route change.
		s.filter = ev.Filter
		s.sendNav()
	case "theme":
		mode, err := s.app.ToggleTheme(s.osTheme)
		if err == nil {
			s.send(Update{Type: "theme", Theme: mode})
		}
	}
}

// onNavigate runs on every fragment change published by the dispatcher.
func (s *Session) onNavigate(state router.State) {
	s.sendNav()

	_, ok := s.loader.Start(s.ctx, state)
	if !ok {
		// A section with no files renders an explicit placeholder instead
		// of loading anything.
		title := ""
		if sec, found := s.app.Registry.Lookup(state.SectionID); found {
			title = sec.Title
		}
		s.send(Update{Type: "doc", HTML: content.PlaceholderPanel(title), Fragment: s.dispatcher.Fragment()})
		return
	}
	s.send(Update{Type: "loading", Fragment: s.dispatcher.Fragment()})
}

// applyLoad applies a load completion to the content area. Stale results
// are dropped silently: the loader's generation check plus the state
// comparison guarantee the displayed content always matches the current
// navigation, regardless of completion order.
func (s *Session) applyLoad(res content.Result) {
	if s.loader.Stale(res) {
		return
	}
	if res.State != s.dispatcher.Current() {
		return
	}

	if res.Err != nil {
		s.send(Update{Type: "doc", HTML: content.ErrorPanel(res.Path), Fragment: s.dispatcher.Fragment(), Error: true})
		return
	}

	html, err := s.app.Pipeline.Render(res.Markdown)
	if err != nil {
		s.send(Update{Type: "doc", HTML: content.ErrorPanel(res.Path), Fragment: s.dispatcher.Fragment(), Error: true})
		return
	}
	if res.State.Mode == router.ModeHome {
		html += s.app.RecentHTML(8)
	} else {
		s.app.RecordVisit(s.dispatcher.Fragment())
	}
	s.send(Update{Type: "doc", HTML: html, Fragment: s.dispatcher.Fragment()})
}

func (s *Session) sendNav() {
	s.send(Update{
		Type:     "nav",
		HTML:     s.renderer.Render(s.dispatcher.Current(), s.filter),
		Fragment: s.dispatcher.Fragment(),
	})
}
