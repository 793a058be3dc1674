// Package server provides the HTTP server for the shouzhi gesture recognition system.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ayusman/shouzhi/internal/capture"
	"github.com/ayusman/shouzhi/internal/detector"
	"github.com/ayusman/shouzhi/internal/gesture"
	"github.com/ayusman/shouzhi/internal/server/api"
	"github.com/ayusman/shouzhi/internal/store"
)

// Controller pauses and resumes the recognition pipeline.
type Controller interface {
	SetEnabled(enabled bool)
	IsEnabled() bool
}

// Config holds the server configuration.
type Config struct {
	StaticDir  string
	Store      *store.Store
	Camera     capture.Camera
	Detector   detector.Detector
	Cell       *gesture.Cell
	Controller Controller
}

// Server represents the HTTP server for the shouzhi application.
type Server struct {
	config Config
	mux    *http.ServeMux
	start  time.Time
}

// New creates a new Server with the given configuration.
func New(config Config) *Server {
	s := &Server{
		config: config,
		mux:    http.NewServeMux(),
		start:  time.Now(),
	}
	s.setupRoutes()
	return s
}

// setupRoutes configures all HTTP routes for the server.
func (s *Server) setupRoutes() {
	s.mux.HandleFunc("/api/health", s.handleHealth)
	s.mux.HandleFunc("/api/gestures/help", s.handleHelp)

	if s.config.Cell != nil {
		s.mux.HandleFunc("/api/gesture", s.handleGesture)
	}

	if s.config.Controller != nil {
		s.mux.HandleFunc("/api/control", s.handleControl)
	}

	if s.config.Store != nil {
		eventsHandler := api.NewEventsHandler(s.config.Store)
		s.mux.Handle("/api/events", eventsHandler)

		settingsHandler := api.NewSettingsHandler(s.config.Store)
		s.mux.Handle("/api/settings", settingsHandler)
		s.mux.Handle("/api/settings/", settingsHandler)

		actionsHandler := api.NewActionsHandler(s.config.Store)
		s.mux.Handle("/api/actions", actionsHandler)
		s.mux.Handle("/api/actions/", actionsHandler)
	}

	// Register camera stream endpoint if Camera is configured
	if s.config.Camera != nil {
		streamHandler := NewStreamHandler(s.config.Camera)
		s.mux.Handle("/api/stream", streamHandler)
	}

	// Register landmarks WebSocket endpoint if Camera and Detector are configured
	if s.config.Camera != nil && s.config.Detector != nil {
		landmarksHandler := NewLandmarksHandler(s.config.Detector, s.config.Camera, s.config.Cell)
		s.mux.Handle("/api/landmarks", landmarksHandler)
	}

	// Serve static files if StaticDir is configured
	if s.config.StaticDir != "" {
		fs := http.FileServer(http.Dir(s.config.StaticDir))
		s.mux.Handle("/", fs)
	}
}

// ServeHTTP implements the http.Handler interface.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// handleHealth handles GET requests to /api/health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	uptime := time.Since(s.start)

	response := map[string]interface{}{
		"status": "ok",
		"uptime": uptime.String(),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// handleGesture handles GET requests to /api/gesture and returns the
// latest stable recognition snapshot.
func (s *Server) handleGesture(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	snap := s.config.Cell.Get()

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(snap); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// handleHelp handles GET requests to /api/gestures/help and returns
// the finger patterns for the supported digits.
func (s *Server) handleHelp(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	type helpEntry struct {
		Number      int    `json:"number"`
		Label       string `json:"label"`
		Description string `json:"description"`
	}

	entries := make([]helpEntry, 0, gesture.DigitCount)
	for n := 0; n < gesture.DigitCount; n++ {
		entries = append(entries, helpEntry{
			Number:      n,
			Label:       gesture.Label(n),
			Description: gesture.Description(n),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]interface{}{"gestures": entries}); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// handleControl pauses and resumes recognition. GET returns the current
// state, POST with {"enabled": bool} changes it.
func (s *Server) handleControl(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		// fall through to response below
	case http.MethodPost:
		var req struct {
			Enabled *bool `json:"enabled"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Enabled == nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		s.config.Controller.SetEnabled(*req.Enabled)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]bool{"enabled": s.config.Controller.IsEnabled()}); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// ListenAndServe starts the HTTP server on the given address.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s)
}
