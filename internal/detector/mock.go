package detector

import (
	"gocv.io/x/gocv"
)

// MockDetector is a test implementation of the Detector interface.
// It allows tests to control the detection results.
type MockDetector struct {
	hands []Hand
	err   error
}

// NewMockDetector creates a new MockDetector instance.
func NewMockDetector() *MockDetector {
	return &MockDetector{}
}

// SetHands sets the hands that will be returned by Detect.
func (m *MockDetector) SetHands(hands []Hand) {
	m.hands = hands
}

// SetError sets the error that will be returned by Detect.
func (m *MockDetector) SetError(err error) {
	m.err = err
}

// Detect returns the pre-configured hands or error.
func (m *MockDetector) Detect(frame *gocv.Mat) ([]Hand, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.hands, nil
}

// Close is a no-op for the mock detector.
func (m *MockDetector) Close() error {
	return nil
}

// Synthetic hand geometry in a 640x480 frame, right hand, palm toward the
// camera under the usual mirrored view. The wrist sits at (300, 400) and
// each finger has one "extended" and one "curled" pose; the curled poses
// keep their joint ordering broken so the strict extension rules reject
// them, and the extended poses clear every rule with margin.
const synthImageWidth = 640

var synthWrist = Point{X: 300, Y: 400}

// Finger pose tables, indexed base-to-tip (CMC/MCP, two mid joints, tip).
var (
	thumbExtended = [4]Point{{330, 380}, {360, 360}, {390, 345}, {420, 335}}
	thumbCurled   = [4]Point{{330, 380}, {350, 360}, {355, 350}, {352, 345}}

	indexExtended = [4]Point{{260, 300}, {255, 250}, {252, 210}, {250, 170}}
	indexCurled   = [4]Point{{260, 300}, {258, 270}, {256, 295}, {255, 320}}

	middleExtended = [4]Point{{310, 300}, {310, 245}, {310, 200}, {310, 155}}
	middleCurled   = [4]Point{{310, 300}, {308, 268}, {306, 292}, {305, 318}}

	ringExtended = [4]Point{{350, 305}, {352, 255}, {354, 213}, {355, 175}}
	ringCurled   = [4]Point{{350, 305}, {348, 272}, {346, 298}, {345, 322}}

	pinkyExtended = [4]Point{{380, 315}, {385, 272}, {388, 240}, {390, 205}}
	pinkyCurled   = [4]Point{{380, 315}, {378, 285}, {376, 305}, {375, 330}}
)

// SyntheticHand builds a right hand with the requested fingers extended,
// ordered thumb, index, middle, ring, pinky.
func SyntheticHand(extended [5]bool) Hand {
	hand := Hand{
		Points:     make([]Point, NumLandmarks),
		Handedness: "Right",
		Score:      0.95,
		ImageWidth: synthImageWidth,
	}

	hand.Points[Wrist] = synthWrist

	fingers := [5][2][4]Point{
		{thumbCurled, thumbExtended},
		{indexCurled, indexExtended},
		{middleCurled, middleExtended},
		{ringCurled, ringExtended},
		{pinkyCurled, pinkyExtended},
	}

	for f, poses := range fingers {
		pose := poses[0]
		if extended[f] {
			pose = poses[1]
		}
		base := 1 + f*4
		for j, p := range pose {
			hand.Points[base+j] = p
		}
	}

	return hand
}

// OpenPalmHand returns a right hand with all five fingers extended.
func OpenPalmHand() Hand {
	return SyntheticHand([5]bool{true, true, true, true, true})
}

// FistHand returns a right hand with all fingers curled.
func FistHand() Hand {
	return SyntheticHand([5]bool{})
}

// MirrorHand reflects a synthetic hand horizontally, turning the right-hand
// fixtures into left-hand ones.
func MirrorHand(h Hand) Hand {
	out := h
	out.Points = make([]Point, len(h.Points))
	for i, p := range h.Points {
		out.Points[i] = Point{X: float64(synthImageWidth) - p.X, Y: p.Y}
	}
	out.Handedness = "Left"
	return out
}

// ShiftHand translates a synthetic hand horizontally by dx pixels so tests
// can place two hands side by side.
func ShiftHand(h Hand, dx float64) Hand {
	out := h
	out.Points = make([]Point, len(h.Points))
	for i, p := range h.Points {
		out.Points[i] = Point{X: p.X + dx, Y: p.Y}
	}
	return out
}
