package api

import (
	"net/http"
	"strconv"

	"github.com/ayusman/shouzhi/internal/store"
)

// EventsHandler handles HTTP requests for recognition event history.
type EventsHandler struct {
	store *store.Store
}

// NewEventsHandler creates a new EventsHandler with the given store.
func NewEventsHandler(s *store.Store) *EventsHandler {
	return &EventsHandler{store: s}
}

// ServeHTTP implements the http.Handler interface.
func (h *EventsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodDelete:
		h.clear(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

type eventResponse struct {
	ID         string `json:"id"`
	Number     int    `json:"number"`
	Name       string `json:"name"`
	Confidence int    `json:"confidence"`
	DetectedAt string `json:"detected_at"`
}

type listEventsResponse struct {
	Events []eventResponse `json:"events"`
	Total  int             `json:"total"`
}

// list handles GET /api/events and returns recent recognition events,
// newest first. The optional ?limit= parameter caps the result.
func (h *EventsHandler) list(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = n
	}

	events, err := h.store.Events().ListRecent(limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list events")
		return
	}

	total, err := h.store.Events().Count()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to count events")
		return
	}

	response := listEventsResponse{
		Events: make([]eventResponse, 0, len(events)),
		Total:  total,
	}
	for _, e := range events {
		response.Events = append(response.Events, eventResponse{
			ID:         e.ID,
			Number:     e.Number,
			Name:       e.Name,
			Confidence: e.Confidence,
			DetectedAt: e.DetectedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}

	writeJSON(w, http.StatusOK, response)
}

// clear handles DELETE /api/events and removes all stored events.
func (h *EventsHandler) clear(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Events().Clear(); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to clear events")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
