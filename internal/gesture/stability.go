package gesture

// Human-readable statuses carried in Snapshot.Name while no result is
// confirmed.
const (
	StatusNoHand    = "No Hand Detected"
	StatusDetecting = "Detecting..."
	StatusPaused    = "Paused"
)

// DefaultStableFrames is how many consecutive identical raw results are
// required before a result is confirmed.
const DefaultStableFrames = 5

// Snapshot is the published form of the pipeline output: the flat
// {number, name, confidence} triple read by the presentation layer.
type Snapshot struct {
	Number     int    `json:"number"`
	Name       string `json:"name"`
	Confidence int    `json:"confidence"`
}

// Filter suppresses frame-to-frame jitter: a raw classification must
// repeat on consecutive frames before it is reported. Identity is compared
// on the composed (number, name) pair; there is no time-based expiry.
type Filter struct {
	threshold int
	lastNum   int
	lastName  string
	count     int
}

// NewFilter creates a Filter confirming after threshold consecutive
// identical frames. Values below 1 use DefaultStableFrames.
func NewFilter(threshold int) *Filter {
	if threshold < 1 {
		threshold = DefaultStableFrames
	}
	f := &Filter{threshold: threshold}
	f.Reset()
	return f
}

// Observe feeds one frame's composed result through the filter and returns
// the snapshot to publish: the confirmed result once the raw key has held
// for threshold frames, a transient status before that. An absent hand
// resets the filter entirely, so a reappearing gesture starts over.
func (f *Filter) Observe(r Result) Snapshot {
	if r.Kind == KindNoHand {
		f.Reset()
		return Snapshot{Number: NoNumber, Name: StatusNoHand}
	}

	num, name := r.Number(), r.Name()
	if num == f.lastNum && name == f.lastName {
		f.count++
	} else {
		f.lastNum, f.lastName, f.count = num, name, 1
	}

	// The unrecognized sentinel never confirms no matter how stable.
	if num == NoNumber || f.count < f.threshold {
		return Snapshot{Number: NoNumber, Name: StatusDetecting}
	}

	confidence := 100 * f.count / f.threshold
	if confidence > 100 {
		confidence = 100
	}

	return Snapshot{Number: num, Name: name, Confidence: confidence}
}

// Reset clears the consecutive-frame state.
func (f *Filter) Reset() {
	f.lastNum = NoNumber
	f.lastName = ""
	f.count = 0
}
