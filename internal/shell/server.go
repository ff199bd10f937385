package shell

import (
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/gorilla/websocket"

	"github.com/Amor-Self-learning/docview/internal/content"
	"github.com/Amor-Self-learning/docview/internal/router"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Server exposes the viewer over HTTP: the page shell, static assets, the
// WebSocket session endpoint, and stateless JSON fallbacks.
type Server struct {
	app        *App
	router     chi.Router
	tmpl       *template.Template
	httpServer *http.Server
}

// NewServer builds the HTTP server around an App.
func NewServer(app *App) (*Server, error) {
	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}
	s := &Server{app: app, tmpl: tmpl}
	s.router = s.buildRouter()
	return s, nil
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	// The WebSocket endpoint is long-lived and must stay outside the
	// request timeout.
	r.Get("/ws", s.handleWS)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(60 * time.Second))

		r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"status":"ok"}`))
		})

		r.Get("/", s.handleIndex)
		r.Get("/api/nav", s.handleNav)
		r.Get("/api/doc", s.handleDoc)

		r.Get("/assets/app.css", asset("text/css", cssContent))
		r.Get("/assets/app.js", asset("application/javascript", jsContent))
		r.Get("/assets/chroma-light.css", asset("text/css", s.app.LightCSS))
		r.Get("/assets/chroma-dark.css", asset("text/css", s.app.DarkCSS))
	})

	return r
}

func asset(contentType, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Write([]byte(body))
	}
}

// pageData feeds the page template for the first paint.
type pageData struct {
	Title      string
	Theme      string
	Breakpoint int
	NavHTML    template.HTML
}

// handleIndex serves the shell page with the home navigation pre-rendered;
// the client script takes over from the address fragment.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	sess := NewSession(s.app, func(Update) {})
	data := pageData{
		Title:      s.app.Config.Title,
		Theme:      s.app.Theme(""),
		Breakpoint: s.app.Config.SidebarBreakpoint,
		NavHTML:    template.HTML(sess.renderer.Render(router.Home, "")),
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.Execute(w, data); err != nil {
		log.Printf("shell: rendering index: %v", err)
	}
}

// handleWS upgrades the connection and runs a session event loop for it.
// The read loop feeds client events; all writes happen from the session
// goroutine.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("shell: websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	var wmu sync.Mutex
	sess := NewSession(s.app, func(u Update) {
		wmu.Lock()
		defer wmu.Unlock()
		if err := conn.WriteJSON(u); err != nil {
			cancel()
		}
	})
	go sess.Run(ctx)

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("shell: websocket read: %v", err)
			}
			return
		}
		var ev Event
		if err := json.Unmarshal(msg, &ev); err != nil {
			continue
		}
		select {
		case sess.Events() <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// handleNav renders the sidebar for a fragment and filter, stateless.
func (s *Server) handleNav(w http.ResponseWriter, r *http.Request) {
	fragment := r.URL.Query().Get("fragment")
	filter := r.URL.Query().Get("filter")
	sess := NewSession(s.app, func(Update) {})
	state := router.ParseState(fragment, s.app.Registry)

	writeJSON(w, map[string]any{
		"html":     sess.renderer.Render(state, filter),
		"fragment": router.Serialize(state),
	})
}

// handleDoc loads and renders the document for a fragment, synchronously.
// This is the non-WebSocket fallback; staleness does not apply because the
// client correlates request and response itself.
func (s *Server) handleDoc(w http.ResponseWriter, r *http.Request) {
	fragment := r.URL.Query().Get("fragment")
	state := router.ParseState(fragment, s.app.Registry)

	loader := content.NewLoader(s.app.Fetcher, s.app.Registry, s.app.Config.Home)
	path, ok := loader.ResolvePath(state)
	if !ok {
		title := ""
		if sec, found := s.app.Registry.Lookup(state.SectionID); found {
			title = sec.Title
		}
		writeJSON(w, map[string]any{"html": content.PlaceholderPanel(title), "fragment": router.Serialize(state)})
		return
	}

	data, err := s.app.Fetcher.Fetch(r.Context(), path)
	if err != nil {
		writeJSON(w, map[string]any{"html": content.ErrorPanel(path), "fragment": router.Serialize(state), "error": true})
		return
	}
	html, err := s.app.Pipeline.Render(data)
	if err != nil {
		writeJSON(w, map[string]any{"html": content.ErrorPanel(path), "fragment": router.Serialize(state), "error": true})
		return
	}
	if state.Mode == router.ModeHome {
		html += s.app.RecentHTML(8)
	}
	writeJSON(w, map[string]any{"html": html, "fragment": router.Serialize(state)})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("shell: encoding response: %v", err)
	}
}

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.app.Config.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	log.Printf("docview listening on %s", addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

// Router returns the chi router, useful for tests.
func (s *Server) Router() chi.Router { return s.router }
