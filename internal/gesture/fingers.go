package gesture

import (
	"math"

	"github.com/ayusman/shouzhi/internal/detector"
)

// Finger positions within a FingerState vector.
const (
	Thumb = iota
	Index
	Middle
	Ring
	Pinky
	NumFingers
)

// FingerState is the per-finger extended (true) / flexed (false) vector,
// ordered thumb, index, middle, ring, pinky.
type FingerState [NumFingers]bool

// Count returns the number of extended fingers.
func (s FingerState) Count() int {
	n := 0
	for _, up := range s {
		if up {
			n++
		}
	}
	return n
}

// String renders the vector as five 0/1 digits, thumb first.
func (s FingerState) String() string {
	b := make([]byte, NumFingers)
	for i, up := range s {
		if up {
			b[i] = '1'
		} else {
			b[i] = '0'
		}
	}
	return string(b)
}

// Extractor derives a finger-state vector from one hand's landmarks.
// Implementations are interchangeable policies; the multi-joint extractor
// is the default because it produces the fewest false positives at webcam
// desk distance.
type Extractor interface {
	// States returns the finger-state vector for the hand. The second
	// return is false when the hand does not carry exactly 21 landmarks;
	// a partially filled vector is never produced.
	States(h *detector.Hand) (FingerState, bool)
}

// Extraction thresholds. The thumb threshold scales with palm width
// because a fixed pixel distance misjudges hands far from the camera.
const (
	thumbSpreadRatio = 0.15
	thumbSpreadMinPx = 20.0
	thumbWristRatio  = 1.2

	dipSlackPx = 5.0
	pipSlackPx = 10.0
	tipRisePx  = 10.0
	spanRatio  = 1.5
)

// MultiJointExtractor checks every joint of a finger against the next one,
// which rejects partially curled fingers that single-condition tests would
// count as extended.
type MultiJointExtractor struct{}

// NewMultiJointExtractor returns the canonical extraction strategy.
func NewMultiJointExtractor() MultiJointExtractor {
	return MultiJointExtractor{}
}

// States implements Extractor.
func (MultiJointExtractor) States(h *detector.Hand) (FingerState, bool) {
	var s FingerState
	if !h.Complete() {
		return s, false
	}

	s[Thumb] = thumbExtended(h)

	tips := [...]int{detector.IndexTip, detector.MiddleTip, detector.RingTip, detector.PinkyTip}
	for i, tip := range tips {
		s[Index+i] = fingerExtended(h, tip)
	}

	return s, true
}

// thumbExtended special-cases the thumb: its flex axis is horizontal and
// its rest direction depends on handedness.
func thumbExtended(h *detector.Hand) bool {
	wristX := h.Points[detector.Wrist].X
	tipX := h.Points[detector.ThumbTip].X
	jointX := h.Points[detector.ThumbMCP].X

	threshold := math.Max(h.PalmWidth()*thumbSpreadRatio, thumbSpreadMinPx)
	spread := math.Abs(tipX - jointX)

	var extended bool
	if h.IsLeft() {
		extended = tipX < jointX && spread > threshold
	} else {
		extended = tipX > jointX && spread > threshold
	}

	// A thumb pointing diagonally fails the horizontal test while the tip
	// is still clearly farther from the wrist than its joint.
	if math.Abs(tipX-wristX) > math.Abs(jointX-wristX)*thumbWristRatio {
		extended = true
	}

	return extended
}

// fingerExtended checks one non-thumb finger via the y-coordinates of its
// four landmarks (tip, DIP, PIP, MCP). The finger points up when extended,
// so y decreases toward the tip. All conditions must hold.
func fingerExtended(h *detector.Hand, tip int) bool {
	tipY := h.Points[tip].Y
	dipY := h.Points[tip-1].Y
	pipY := h.Points[tip-2].Y
	mcpY := h.Points[tip-3].Y

	straight := tipY < dipY &&
		dipY <= pipY+dipSlackPx &&
		pipY <= mcpY+pipSlackPx &&
		tipY < mcpY-tipRisePx
	if !straight {
		return false
	}

	// A finger that only partially unfolds keeps the joint ordering above
	// but stays short overall.
	return mcpY-tipY > (mcpY-pipY)*spanRatio
}

// DefaultMaxBend is the bend angle above which AngleExtractor counts a
// finger as flexed.
const DefaultMaxBend = 50.0

// AngleExtractor is the alternate strategy: a finger is extended when the
// wrist-to-joint and joint-to-tip directions stay nearly collinear. Kept
// for tuning against the multi-joint rule; not the default.
type AngleExtractor struct {
	// MaxBend in degrees; zero means DefaultMaxBend.
	MaxBend float64
}

// States implements Extractor.
func (e AngleExtractor) States(h *detector.Hand) (FingerState, bool) {
	var s FingerState
	if !h.Complete() {
		return s, false
	}

	maxBend := e.MaxBend
	if maxBend <= 0 {
		maxBend = DefaultMaxBend
	}

	wrist := h.Points[detector.Wrist]
	joints := [NumFingers][2]int{
		{detector.ThumbIP, detector.ThumbTip},
		{detector.IndexPIP, detector.IndexTip},
		{detector.MiddlePIP, detector.MiddleTip},
		{detector.RingPIP, detector.RingTip},
		{detector.PinkyPIP, detector.PinkyTip},
	}

	for f, jt := range joints {
		joint := h.Points[jt[0]]
		tip := h.Points[jt[1]]
		bend := AngleBetween(Sub(joint, wrist), Sub(tip, joint))
		s[f] = bend < maxBend
	}

	return s, true
}

// NewExtractor returns the extraction strategy for the given method name.
// Unknown names fall back to the multi-joint default.
func NewExtractor(method string) Extractor {
	switch method {
	case "angle":
		return AngleExtractor{}
	default:
		return MultiJointExtractor{}
	}
}
