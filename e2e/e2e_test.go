package e2e

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ayusman/shouzhi/internal/gesture"
	"github.com/ayusman/shouzhi/internal/server"
	"github.com/ayusman/shouzhi/internal/store"
	"github.com/google/uuid"
)

// pipelineStub stands in for the running app behind /api/control.
type pipelineStub struct {
	enabled bool
}

func (p *pipelineStub) SetEnabled(enabled bool) { p.enabled = enabled }
func (p *pipelineStub) IsEnabled() bool         { return p.enabled }

func TestE2E_CompleteWorkflow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test")
	}

	tmpDir := t.TempDir()

	s, err := store.New(filepath.Join(tmpDir, "data.db"))
	if err != nil {
		t.Fatalf("store.New() error = %v", err)
	}
	defer s.Close()

	cell := gesture.NewCell()
	ctrl := &pipelineStub{enabled: true}

	srv := server.New(server.Config{
		Store:      s,
		Cell:       cell,
		Controller: ctrl,
	})
	ts := httptest.NewServer(srv)
	defer ts.Close()

	client := ts.Client()

	t.Run("InitialGestureIsNoHand", func(t *testing.T) {
		resp, err := client.Get(ts.URL + "/api/gesture")
		if err != nil {
			t.Fatalf("get gesture error = %v", err)
		}
		defer resp.Body.Close()

		var snap gesture.Snapshot
		if err := json.NewDecoder(resp.Body).Decode(&snap); err != nil {
			t.Fatalf("decode error = %v", err)
		}
		if snap.Name != gesture.StatusNoHand {
			t.Errorf("initial snapshot = %+v", snap)
		}
	})

	t.Run("RecognitionFlowsThroughFilterToAPI", func(t *testing.T) {
		// Feed the filter a held two-hand result, the way the pipeline does.
		filter := gesture.NewFilter(gesture.DefaultStableFrames)
		obs := []gesture.HandObservation{
			{Gesture: gesture.Gesture{ID: 2, Label: "二"}, WristX: 100},
			{Gesture: gesture.Gesture{ID: 3, Label: "三"}, WristX: 500},
		}

		var snap gesture.Snapshot
		for i := 0; i < gesture.DefaultStableFrames; i++ {
			snap = filter.Observe(gesture.Compose(obs))
		}
		cell.Set(snap)

		resp, err := client.Get(ts.URL + "/api/gesture")
		if err != nil {
			t.Fatalf("get gesture error = %v", err)
		}
		defer resp.Body.Close()

		var got gesture.Snapshot
		if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
			t.Fatalf("decode error = %v", err)
		}
		if got.Number != 23 || got.Name != "23" || got.Confidence != 100 {
			t.Errorf("snapshot = %+v, want confirmed 23", got)
		}
	})

	t.Run("ConfirmedEventAppearsInHistory", func(t *testing.T) {
		err := s.Events().Insert(&store.Event{
			ID:         uuid.New().String(),
			Number:     23,
			Name:       "23",
			Confidence: 100,
			DetectedAt: time.Now(),
		})
		if err != nil {
			t.Fatalf("insert event error = %v", err)
		}

		resp, err := client.Get(ts.URL + "/api/events")
		if err != nil {
			t.Fatalf("get events error = %v", err)
		}
		defer resp.Body.Close()

		var response struct {
			Events []struct {
				Number int    `json:"number"`
				Name   string `json:"name"`
			} `json:"events"`
			Total int `json:"total"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
			t.Fatalf("decode error = %v", err)
		}
		if response.Total != 1 || response.Events[0].Number != 23 {
			t.Errorf("events = %+v", response)
		}
	})

	t.Run("BindActionAndListIt", func(t *testing.T) {
		resp, err := client.Post(
			ts.URL+"/api/actions",
			"application/json",
			strings.NewReader(`{"number": 23, "command": "echo twenty-three"}`),
		)
		if err != nil {
			t.Fatalf("create action error = %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusCreated)
		}

		bindings, err := s.Actions().ListForNumber(23)
		if err != nil {
			t.Fatalf("ListForNumber() error = %v", err)
		}
		if len(bindings) != 1 || bindings[0].Command != "echo twenty-three" {
			t.Errorf("bindings = %+v", bindings)
		}
	})

	t.Run("PauseViaControlEndpoint", func(t *testing.T) {
		resp, err := client.Post(
			ts.URL+"/api/control",
			"application/json",
			strings.NewReader(`{"enabled": false}`),
		)
		if err != nil {
			t.Fatalf("control error = %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
		}
		if ctrl.IsEnabled() {
			t.Error("expected pipeline to be paused")
		}
	})

	t.Run("HelpListsDigits", func(t *testing.T) {
		resp, err := client.Get(ts.URL + "/api/gestures/help")
		if err != nil {
			t.Fatalf("get help error = %v", err)
		}
		defer resp.Body.Close()

		var response struct {
			Gestures []struct {
				Number int    `json:"number"`
				Label  string `json:"label"`
			} `json:"gestures"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
			t.Fatalf("decode error = %v", err)
		}
		if len(response.Gestures) != gesture.DigitCount {
			t.Errorf("help entries = %d, want %d", len(response.Gestures), gesture.DigitCount)
		}
	})
}
