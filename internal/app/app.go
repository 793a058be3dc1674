// Package app wires the capture, detection and classification stages into
// the running recognition pipeline.
package app

import (
	"log"
	"sync"

	"github.com/ayusman/shouzhi/internal/action"
	"github.com/ayusman/shouzhi/internal/capture"
	"github.com/ayusman/shouzhi/internal/config"
	"github.com/ayusman/shouzhi/internal/detector"
	"github.com/ayusman/shouzhi/internal/gesture"
	"github.com/ayusman/shouzhi/internal/publish"
	"github.com/ayusman/shouzhi/internal/store"
)

// Pipeline timing constants.
const (
	// IdleFPS is the frame rate while the scene is static.
	IdleFPS = 5
	// ActiveFPS is the frame rate while motion is present.
	ActiveFPS = 15
	// IdleTimeoutMs is how long after the last motion the pipeline drops
	// back to the idle rate.
	IdleTimeoutMs = 2000
)

// actionTimeoutMs bounds each bound command's run time.
const actionTimeoutMs = 5000

// App orchestrates the recognition pipeline: camera frames in, stable
// gesture snapshots out.
type App struct {
	config    config.Config
	camera    capture.Camera
	motion    *capture.MotionGate
	detector  detector.Detector
	extractor gesture.Extractor
	filter    *gesture.Filter
	cell      *gesture.Cell
	store     *store.Store
	publisher *publish.Publisher
	executor  *action.Executor

	// OnConfirmed is invoked each time a new result confirms. Optional.
	OnConfirmed func(gesture.Snapshot)

	enabled bool
	mu      sync.RWMutex
	stopCh  chan struct{}
}

// New creates an App from the given configuration. The MediaPipe detector
// is used when its service script is available, otherwise the mock
// detector keeps the rest of the system runnable.
func New(cfg config.Config, st *store.Store) *App {
	a := &App{
		config: cfg,
		camera: capture.NewCamera(capture.Options{
			DeviceID: cfg.Camera.ID,
			Width:    cfg.Camera.Width,
			Height:   cfg.Camera.Height,
			FPS:      cfg.Camera.FPS,
		}),
		motion:    capture.NewMotionGate(cfg.Pipeline.MotionThreshold),
		extractor: gesture.NewExtractor(cfg.Pipeline.Method),
		filter:    gesture.NewFilter(cfg.Pipeline.StableFrames),
		cell:      gesture.NewCell(),
		store:     st,
		executor:  action.NewExecutor(actionTimeoutMs),
		enabled:   true,
	}

	detCfg := detector.Config{
		MaxHands:        cfg.Detector.MaxHands,
		MinConfidence:   cfg.Detector.MinConfidence,
		MinTrackingConf: cfg.Detector.MinTracking,
	}
	if mp, err := detector.NewMediaPipeDetector(detCfg); err == nil {
		a.detector = mp
		log.Println("Using MediaPipe hand detection")
	} else {
		log.Printf("MediaPipe not available (%v), using mock detector", err)
		a.detector = detector.NewMockDetector()
	}

	if cfg.MQTT.Enabled {
		pub, err := publish.New(cfg.MQTT.Broker, cfg.MQTT.Topic, cfg.MQTT.ClientID)
		if err != nil {
			log.Printf("MQTT publisher disabled: %v", err)
		} else {
			a.publisher = pub
		}
	}

	return a
}

// SetEnabled pauses or resumes recognition. While paused the published
// snapshot reads as paused; filter state is left alone so a brief pause
// does not restart an in-progress confirmation.
func (a *App) SetEnabled(enabled bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.enabled == enabled {
		return
	}
	a.enabled = enabled
	if !enabled {
		a.cell.Set(gesture.Snapshot{Number: gesture.NoNumber, Name: gesture.StatusPaused})
	}
}

// IsEnabled reports whether recognition is currently running.
func (a *App) IsEnabled() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.enabled
}

// SetDetector replaces the hand detector implementation.
func (a *App) SetDetector(d detector.Detector) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.detector = d
}

// Start opens the camera and begins the pipeline loop.
func (a *App) Start() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopCh != nil {
		return nil
	}

	if err := a.camera.Open(); err != nil {
		return err
	}

	if a.config.Pipeline.MotionGate {
		a.camera.SetFPS(IdleFPS)
	}

	a.stopCh = make(chan struct{})
	go a.runPipeline(a.stopCh)

	log.Println("Recognition pipeline started")
	return nil
}

// Stop halts the pipeline and releases resources.
func (a *App) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopCh != nil {
		close(a.stopCh)
		a.stopCh = nil
	}

	if err := a.camera.Close(); err != nil {
		log.Printf("Error closing camera: %v", err)
	}

	a.motion.Close()

	if a.detector != nil {
		if err := a.detector.Close(); err != nil {
			log.Printf("Error closing detector: %v", err)
		}
	}

	if a.publisher != nil {
		a.publisher.Close()
	}

	log.Println("Recognition pipeline stopped")
}

// Camera returns the camera instance.
func (a *App) Camera() capture.Camera {
	return a.camera
}

// Cell returns the snapshot cell read by the presentation layer.
func (a *App) Cell() *gesture.Cell {
	return a.cell
}

// Detector returns the hand detector.
func (a *App) Detector() detector.Detector {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.detector
}
