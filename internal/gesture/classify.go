package gesture

// Gesture identifiers. 0-9 are digits; named gestures get ids of their own
// so two-hand composition can tell them apart from countable digits.
const (
	Unrecognized = -1
	ThumbsUp     = 6
	SignOK       = 10
	SignRock     = 11
	SignLoveYou  = 12
	SignCallMe   = 13
)

// Gesture is one classified hand pose: a numeric identifier plus its
// display label.
type Gesture struct {
	ID    int    `json:"id"`
	Label string `json:"label"`
}

// IsDigit reports whether the gesture composes as a decimal digit.
func (g Gesture) IsDigit() bool {
	return g.ID >= 0 && g.ID <= 9
}

var unknown = Gesture{ID: Unrecognized, Label: "未知"}

// Unknown returns the unrecognized gesture. Callers that fail to extract
// a finger state still report the hand through it, so a present-but-
// unreadable hand is never mistaken for an absent one.
func Unknown() Gesture {
	return unknown
}

// rules is the ordered pattern table, matched exactly. Several digits share
// a finger count with different finger identities, so classification is by
// the full vector and never by count alone.
var rules = []struct {
	pattern FingerState
	gesture Gesture
}{
	{FingerState{false, false, false, false, false}, Gesture{0, "零"}},
	{FingerState{false, true, false, false, false}, Gesture{1, "一"}},
	{FingerState{true, false, false, false, false}, Gesture{ThumbsUp, "讚"}},
	{FingerState{false, true, true, false, false}, Gesture{2, "二"}},
	{FingerState{false, true, true, true, false}, Gesture{3, "三"}},
	{FingerState{false, false, true, true, true}, Gesture{3, "三"}},
	{FingerState{false, true, true, true, true}, Gesture{4, "四"}},
	{FingerState{true, true, true, true, true}, Gesture{5, "五"}},
	{FingerState{true, false, true, true, true}, Gesture{SignOK, "OK"}},
	{FingerState{false, true, false, false, true}, Gesture{SignRock, "搖滾"}},
	{FingerState{true, true, false, false, true}, Gesture{SignLoveYou, "愛你"}},
	{FingerState{true, false, false, false, true}, Gesture{SignCallMe, "打電話"}},
}

// Classify maps a finger-state vector to its gesture by exact pattern
// match. Patterns outside the table are unrecognized; there is no
// closest-guess fallback because a wrong silent answer is worse than none.
func Classify(s FingerState) Gesture {
	for _, r := range rules {
		if r.pattern == s {
			return r.gesture
		}
	}
	return unknown
}

// Label returns the display label for a gesture id, or the unknown
// label when no rule produces the id.
func Label(id int) string {
	for _, r := range rules {
		if r.gesture.ID == id {
			return r.gesture.Label
		}
	}
	return unknown.Label
}

var descriptions = map[int]string{
	0: "握拳（所有手指彎曲）",
	1: "伸出食指",
	2: "伸出食指和中指（剪刀手）",
	3: "伸出三根手指",
	4: "伸出四根手指",
	5: "張開手掌（所有手指伸直）",
}

// Description returns the how-to text for a digit gesture, or "未知手勢"
// for numbers without one.
func Description(number int) string {
	if d, ok := descriptions[number]; ok {
		return d
	}
	return "未知手勢"
}

// DigitCount is the number of single-hand digits with help descriptions.
const DigitCount = 6
