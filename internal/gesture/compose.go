package gesture

import (
	"sort"
	"strconv"
)

// Wire encoding sentinels for Result.Number.
const (
	// NoNumber marks "no hand" and "unrecognized" results.
	NoNumber = -1
	// ComboNumber marks a two-hand result involving a named or
	// unrecognized gesture, reported by label instead of value.
	ComboNumber = -2
)

// HandObservation ties one hand's classification to its horizontal
// position, which decides left-to-right ordering.
type HandObservation struct {
	Gesture Gesture
	WristX  float64
}

// Kind tags the variants of a composed result.
type Kind int

const (
	// KindNoHand means no hand was detected this frame.
	KindNoHand Kind = iota
	// KindUnrecognized covers an unmatched single-hand pattern and the
	// degenerate more-than-two-hands case.
	KindUnrecognized
	// KindDigit is a single-hand digit 0-9.
	KindDigit
	// KindTwoDigit is two digit hands read as tens and units.
	KindTwoDigit
	// KindNamed is a single-hand named gesture (ids 10-13).
	KindNamed
	// KindCombo is a two-hand result where at least one hand is not a
	// digit; it is reported as "left+right" by label.
	KindCombo
)

// Result is the merged classification across up to two hands. Exactly the
// fields of the tagged variant are meaningful; Number and Name realize the
// flat wire encoding from it.
type Result struct {
	Kind  Kind
	ID    int    // KindDigit, KindNamed
	Label string // KindDigit, KindNamed
	Tens  int    // KindTwoDigit
	Units int    // KindTwoDigit
	Left  string // KindCombo
	Right string // KindCombo
}

// Compose orders observations left to right by wrist position and merges
// them into one Result. More than two hands is a degenerate case and maps
// to unrecognized.
func Compose(obs []HandObservation) Result {
	switch {
	case len(obs) == 0:
		return Result{Kind: KindNoHand}
	case len(obs) > 2:
		return Result{Kind: KindUnrecognized}
	}

	sorted := make([]HandObservation, len(obs))
	copy(sorted, obs)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].WristX < sorted[j].WristX
	})

	if len(sorted) == 1 {
		return single(sorted[0].Gesture)
	}

	left, right := sorted[0].Gesture, sorted[1].Gesture
	if left.IsDigit() && right.IsDigit() {
		return Result{Kind: KindTwoDigit, Tens: left.ID, Units: right.ID}
	}
	return Result{Kind: KindCombo, Left: left.Label, Right: right.Label}
}

func single(g Gesture) Result {
	switch {
	case g.ID == Unrecognized:
		return Result{Kind: KindUnrecognized}
	case g.IsDigit():
		return Result{Kind: KindDigit, ID: g.ID, Label: g.Label}
	default:
		return Result{Kind: KindNamed, ID: g.ID, Label: g.Label}
	}
}

// Number returns the flat numeric encoding of the result: the digit or
// gesture id for one hand, tens*10+units for two digit hands, ComboNumber
// for label combinations and NoNumber for everything unreportable.
func (r Result) Number() int {
	switch r.Kind {
	case KindDigit, KindNamed:
		return r.ID
	case KindTwoDigit:
		return r.Tens*10 + r.Units
	case KindCombo:
		return ComboNumber
	default:
		return NoNumber
	}
}

// Name returns the display label of the result.
func (r Result) Name() string {
	switch r.Kind {
	case KindDigit, KindNamed:
		return r.Label
	case KindTwoDigit:
		return strconv.Itoa(r.Tens*10 + r.Units)
	case KindCombo:
		return r.Left + "+" + r.Right
	case KindNoHand:
		return StatusNoHand
	default:
		return unknown.Label
	}
}
