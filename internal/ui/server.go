// Package ui serves the campusdash web dashboard.
// It embeds the static HTML at compile time so the binary has no external
// file dependencies.
package ui

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/http"
	"os/exec"
	"runtime"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/kemilad/campusdash/internal/content"
	"github.com/kemilad/campusdash/internal/logging"
	"github.com/kemilad/campusdash/internal/nav"
)

//go:embed static/index.html
var staticFiles embed.FS

// NavState is the JSON payload returned by /api/nav.
type NavState struct {
	Active       nav.Destination `json:"active"`
	Destinations []Destination   `json:"destinations"`
}

// Destination describes one sidebar entry for the browser.
type Destination struct {
	ID    nav.Destination `json:"id"`
	Label string          `json:"label"`
	Icon  string          `json:"icon"`
}

// DashboardState is the JSON payload returned by /api/dashboard.
type DashboardState struct {
	content.Dashboard
	Active nav.Destination `json:"active"`
}

// ChangeEvent is pushed to websocket clients after every selection.
type ChangeEvent struct {
	From nav.Destination `json:"from"`
	To   nav.Destination `json:"to"`
}

type errorBody struct {
	Error string `json:"error"`
}

// Server owns one selector shared by every browser tab. Handlers run
// concurrently, so all selector access goes through mu.
type Server struct {
	data content.Dashboard
	log  *logrus.Entry

	mu       sync.Mutex
	selector *nav.Selector
	hub      *hub
}

// NewServer returns a server with Home active.
func NewServer(data content.Dashboard) *Server {
	s := &Server{
		data:     data,
		log:      logging.NewLogger("web"),
		selector: nav.NewSelector(),
		hub:      newHub(),
	}
	s.selector.Subscribe(func(c nav.Change) {
		s.log.WithFields(logrus.Fields{"from": c.From, "to": c.To}).Info("navigation selected")
		s.hub.broadcast(ChangeEvent(c))
	})
	return s
}

// Handler returns the routes served by the dashboard.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// ── Static assets ──────────────────────────────────────────────────────
	staticFS, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}
	mux.Handle("GET /", http.FileServer(http.FS(staticFS)))

	// ── API endpoints ──────────────────────────────────────────────────────
	mux.HandleFunc("GET /api/dashboard", s.handleDashboard)
	mux.HandleFunc("GET /api/nav", s.handleNav)
	mux.HandleFunc("POST /api/nav/{destination}", s.handleSelect)
	mux.HandleFunc("GET /ws", s.handleWS)
	return mux
}

// Active returns the current selection.
func (s *Server) Active() nav.Destination {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selector.Active()
}

// Select changes the selection and notifies connected browsers.
func (s *Server) Select(d nav.Destination) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selector.Select(d)
}

func (s *Server) navState() NavState {
	st := NavState{Active: s.Active()}
	for _, d := range nav.Destinations() {
		st.Destinations = append(st.Destinations, Destination{ID: d, Label: d.Label(), Icon: d.Icon()})
	}
	return st
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, DashboardState{Dashboard: s.data, Active: s.Active()})
}

func (s *Server) handleNav(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.navState())
}

func (s *Server) handleSelect(w http.ResponseWriter, r *http.Request) {
	d, err := nav.ParseDestination(r.PathValue("destination"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorBody{Error: err.Error()})
		return
	}
	s.Select(d)
	writeJSON(w, http.StatusOK, s.navState())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ─────────────────────────────────────────────────────────────────────────────
// Serving
// ─────────────────────────────────────────────────────────────────────────────

// Options controls Serve.
type Options struct {
	Addr        string
	OpenBrowser bool
	// Ready, if set, receives the resolved URL once the listener is bound.
	Ready func(url string)
}

// Serve runs the dashboard until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, opts Options) error {
	ln, err := net.Listen("tcp", opts.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", opts.Addr, err)
	}

	srv := &http.Server{
		Handler:     s.Handler(),
		ReadTimeout: 10 * time.Second,
	}

	url := "http://" + ln.Addr().String()
	s.log.WithField("url", url).Info("dashboard listening")
	if opts.Ready != nil {
		opts.Ready(url)
	}
	if opts.OpenBrowser {
		go openBrowser(url)
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.hub.closeAll()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.log.WithError(err).Warn("shutdown")
		}
	}()

	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Browser launcher
// ─────────────────────────────────────────────────────────────────────────────

func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	default: // Linux / BSD
		cmd = exec.Command("xdg-open", url)
	}
	_ = cmd.Start()
}
