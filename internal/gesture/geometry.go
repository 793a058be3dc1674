// Package gesture implements the finger-state extraction, rule-table
// classification, two-hand composition and temporal debounce that turn raw
// hand landmarks into a reportable digit or named gesture.
package gesture

import (
	"math"

	"github.com/ayusman/shouzhi/internal/detector"
)

// FullBendDegrees is the sentinel angle reported when a joint vector has no
// direction. Callers treat it as a fully bent joint.
const FullBendDegrees = 180.0

// Vec is a 2-D vector in pixel space.
type Vec struct {
	X float64
	Y float64
}

// Sub returns the vector from point a to point b.
func Sub(b, a detector.Point) Vec {
	return Vec{X: b.X - a.X, Y: b.Y - a.Y}
}

// AngleBetween returns the angle between two 2-D vectors in degrees.
// The cosine argument is clamped to [-1, 1] to guard against floating-point
// overshoot before taking the arccosine. A zero-length input has no
// direction; the result is FullBendDegrees rather than NaN.
func AngleBetween(v1, v2 Vec) float64 {
	n1 := math.Hypot(v1.X, v1.Y)
	n2 := math.Hypot(v2.X, v2.Y)
	if n1 == 0 || n2 == 0 {
		return FullBendDegrees
	}

	cos := (v1.X*v2.X + v1.Y*v2.Y) / (n1 * n2)
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}

	return math.Acos(cos) * 180 / math.Pi
}

// Distance returns the Euclidean distance between two landmarks.
func Distance(a, b detector.Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
