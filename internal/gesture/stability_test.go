package gesture

import "testing"

func digitResult(n int, label string) Result {
	return Result{Kind: KindDigit, ID: n, Label: label}
}

func TestFilter_ConfirmsAfterThreshold(t *testing.T) {
	f := NewFilter(5)
	five := digitResult(5, "五")

	for i := 0; i < 4; i++ {
		snap := f.Observe(five)
		if snap.Number != NoNumber || snap.Name != StatusDetecting {
			t.Fatalf("frame %d: got %+v, want transient detecting status", i+1, snap)
		}
	}

	// The fifth consecutive frame confirms with full confidence.
	snap := f.Observe(five)
	if snap.Number != 5 || snap.Name != "五" {
		t.Fatalf("got %+v, want confirmed 5/五", snap)
	}
	if snap.Confidence != 100 {
		t.Errorf("Confidence = %d, want 100", snap.Confidence)
	}
}

func TestFilter_SwitchResetsCount(t *testing.T) {
	f := NewFilter(5)
	a := digitResult(1, "一")
	b := digitResult(2, "二")

	// A for threshold-1 frames, then B: A must never confirm and B starts
	// over from one.
	for i := 0; i < 4; i++ {
		f.Observe(a)
	}
	snap := f.Observe(b)
	if snap.Number != NoNumber {
		t.Fatalf("switch frame confirmed %+v", snap)
	}

	for i := 0; i < 3; i++ {
		snap = f.Observe(b)
		if snap.Number != NoNumber {
			t.Fatalf("frame %d after switch confirmed %+v", i+2, snap)
		}
	}
	snap = f.Observe(b)
	if snap.Number != 2 {
		t.Errorf("expected B confirmed on its fifth frame, got %+v", snap)
	}
}

func TestFilter_NoHandResets(t *testing.T) {
	f := NewFilter(3)
	two := digitResult(2, "二")

	f.Observe(two)
	f.Observe(two)

	snap := f.Observe(Result{Kind: KindNoHand})
	if snap.Number != NoNumber || snap.Name != StatusNoHand {
		t.Fatalf("got %+v, want no-hand status", snap)
	}

	// The gesture has to start over after the gap.
	snap = f.Observe(two)
	if snap.Number != NoNumber {
		t.Fatalf("first frame after gap confirmed %+v", snap)
	}
	f.Observe(two)
	snap = f.Observe(two)
	if snap.Number != 2 {
		t.Errorf("expected confirmation on third frame after gap, got %+v", snap)
	}
}

func TestFilter_UnrecognizedNeverConfirms(t *testing.T) {
	f := NewFilter(3)
	for i := 0; i < 10; i++ {
		snap := f.Observe(Result{Kind: KindUnrecognized})
		if snap.Number != NoNumber || snap.Name != StatusDetecting {
			t.Fatalf("frame %d: got %+v, want transient status", i+1, snap)
		}
	}
}

func TestFilter_HeldGestureStaysConfirmed(t *testing.T) {
	f := NewFilter(5)
	five := digitResult(5, "五")

	var snap Snapshot
	for i := 0; i < 20; i++ {
		snap = f.Observe(five)
	}
	if snap.Number != 5 || snap.Confidence != 100 {
		t.Errorf("held gesture: got %+v, want confirmed with capped confidence", snap)
	}
}

func TestFilter_ConfirmsComposedResults(t *testing.T) {
	f := NewFilter(2)
	combo := Result{Kind: KindCombo, Left: "OK", Right: "二"}

	f.Observe(combo)
	snap := f.Observe(combo)
	if snap.Number != ComboNumber || snap.Name != "OK+二" {
		t.Errorf("got %+v, want confirmed combo", snap)
	}

	pair := Result{Kind: KindTwoDigit, Tens: 2, Units: 3}
	f.Observe(pair)
	snap = f.Observe(pair)
	if snap.Number != 23 || snap.Name != "23" {
		t.Errorf("got %+v, want confirmed 23", snap)
	}
}

func TestNewFilter_DefaultThreshold(t *testing.T) {
	f := NewFilter(0)
	if f.threshold != DefaultStableFrames {
		t.Errorf("threshold = %d, want %d", f.threshold, DefaultStableFrames)
	}
}
