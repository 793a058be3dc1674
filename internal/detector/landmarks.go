// Package detector provides hand detection interfaces and types for gesture recognition.
package detector

import "math"

// Hand landmark indices following MediaPipe convention.
// See: https://developers.google.com/mediapipe/solutions/vision/hand_landmarker
const (
	Wrist        = 0
	ThumbCMC     = 1
	ThumbMCP     = 2
	ThumbIP      = 3
	ThumbTip     = 4
	IndexMCP     = 5
	IndexPIP     = 6
	IndexDIP     = 7
	IndexTip     = 8
	MiddleMCP    = 9
	MiddlePIP    = 10
	MiddleDIP    = 11
	MiddleTip    = 12
	RingMCP      = 13
	RingPIP      = 14
	RingDIP      = 15
	RingTip      = 16
	PinkyMCP     = 17
	PinkyPIP     = 18
	PinkyDIP     = 19
	PinkyTip     = 20
	NumLandmarks = 21
)

// Point is a single hand keypoint in pixel coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Hand represents one detected hand as an ordered list of landmarks in
// pixel space. A well-formed hand carries exactly NumLandmarks points;
// consumers must treat any other count as "no usable hand" rather than
// index into it.
type Hand struct {
	Points     []Point `json:"points"`
	Handedness string  `json:"handedness"` // "Left" or "Right" per the detector
	Score      float64 `json:"score"`

	// ImageWidth is the pixel width of the frame the landmarks were
	// detected in, kept for mirroring and overlay math.
	ImageWidth int `json:"image_width"`
}

// Complete reports whether the hand carries all 21 landmarks.
func (h *Hand) Complete() bool {
	return h != nil && len(h.Points) == NumLandmarks
}

// WristX returns the x-coordinate of the wrist landmark, used for
// left-to-right ordering of simultaneously detected hands.
func (h *Hand) WristX() float64 {
	if !h.Complete() {
		return 0
	}
	return h.Points[Wrist].X
}

// IsLeft determines handedness geometrically: in the mirrored camera view
// the wrist of a left hand sits to the right of the middle-finger base.
// The detector's own handedness label is ignored here so classification
// never depends on two sources of truth.
func (h *Hand) IsLeft() bool {
	if !h.Complete() {
		return false
	}
	return h.Points[Wrist].X > h.Points[MiddleMCP].X
}

// PalmWidth returns the horizontal distance between the index and pinky
// finger bases. It scales with the hand's distance from the camera and is
// used to derive relative thresholds.
func (h *Hand) PalmWidth() float64 {
	if !h.Complete() {
		return 0
	}
	return math.Abs(h.Points[IndexMCP].X - h.Points[PinkyMCP].X)
}
