package app

import (
	"log"
	"time"

	"github.com/google/uuid"
	"gocv.io/x/gocv"

	"github.com/ayusman/shouzhi/internal/gesture"
	"github.com/ayusman/shouzhi/internal/store"
)

// runPipeline is the main loop: read a frame, detect hands, extract
// finger states, classify, compose across hands and run the stability
// filter. The resulting snapshot is published every iteration.
//
// The motion gate only changes the frame rate. Detection itself always
// runs, because a hand held perfectly still produces no motion while it
// is exactly the thing the stability filter needs consecutive frames of.
func (a *App) runPipeline(stopCh chan struct{}) {
	activeMode := !a.config.Pipeline.MotionGate
	lastMotionTime := time.Now()

	fps := ActiveFPS
	if a.config.Pipeline.MotionGate {
		fps = IdleFPS
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	// The previously confirmed (number, name) pair, used to fire
	// confirmation side effects exactly once per held gesture.
	confirmedNum := gesture.NoNumber
	confirmedName := ""

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			if !a.IsEnabled() {
				continue
			}

			frame, err := a.camera.ReadFrame()
			if err != nil {
				log.Printf("Error reading frame: %v", err)
				continue
			}

			// Selfie view: mirror so the user's left appears on the left.
			if a.config.Camera.Mirror {
				gocv.Flip(*frame, frame, 1)
			}

			if a.config.Pipeline.MotionGate {
				moved, _ := a.motion.Changed(frame)
				if moved {
					lastMotionTime = time.Now()
					if !activeMode {
						activeMode = true
						a.camera.SetFPS(ActiveFPS)
						ticker.Reset(time.Second / time.Duration(ActiveFPS))
					}
				} else if activeMode && time.Since(lastMotionTime) > IdleTimeoutMs*time.Millisecond {
					activeMode = false
					a.camera.SetFPS(IdleFPS)
					ticker.Reset(time.Second / time.Duration(IdleFPS))
				}
			}

			hands, err := a.Detector().Detect(frame)
			frame.Close()
			if err != nil {
				log.Printf("Error detecting hands: %v", err)
				continue
			}

			obs := make([]gesture.HandObservation, 0, len(hands))
			for i := range hands {
				// A hand that cannot be read still counts as a present
				// hand, as the unrecognized gesture. Dropping it would
				// reset the filter as if nothing were in frame.
				g := gesture.Unknown()
				if states, ok := a.extractor.States(&hands[i]); ok {
					g = gesture.Classify(states)
				}
				obs = append(obs, gesture.HandObservation{
					Gesture: g,
					WristX:  hands[i].WristX(),
				})
			}

			snap := a.filter.Observe(gesture.Compose(obs))
			a.cell.Set(snap)

			if snap.Number == gesture.NoNumber {
				// Transient state. Forget the last confirmation so the
				// same gesture can fire again after the hand drops.
				confirmedNum, confirmedName = gesture.NoNumber, ""
				continue
			}

			if snap.Number == confirmedNum && snap.Name == confirmedName {
				continue
			}
			confirmedNum, confirmedName = snap.Number, snap.Name

			a.onConfirmed(snap)
		}
	}
}

// onConfirmed runs the side effects of a newly confirmed result: event
// history, MQTT publication, bound commands and the optional callback.
func (a *App) onConfirmed(snap gesture.Snapshot) {
	log.Printf("Confirmed gesture: %s (number %d)", snap.Name, snap.Number)

	if a.store != nil {
		err := a.store.Events().Insert(&store.Event{
			ID:         uuid.New().String(),
			Number:     snap.Number,
			Name:       snap.Name,
			Confidence: snap.Confidence,
		})
		if err != nil {
			log.Printf("Failed to record event: %v", err)
		}
	}

	if a.publisher != nil {
		if err := a.publisher.Publish(snap); err != nil {
			log.Printf("Failed to publish result: %v", err)
		}
	}

	if a.store != nil {
		bindings, err := a.store.Actions().ListForNumber(snap.Number)
		if err != nil {
			log.Printf("Failed to load action bindings: %v", err)
		} else {
			for _, b := range bindings {
				go func(cmd string) {
					if _, err := a.executor.Run(cmd, snap.Number, snap.Name); err != nil {
						log.Printf("Action failed: %v", err)
					}
				}(b.Command)
			}
		}
	}

	if a.OnConfirmed != nil {
		a.OnConfirmed(snap)
	}
}
