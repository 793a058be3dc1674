package detector

import (
	"errors"
	"math"
	"testing"
)

func TestHand_Complete(t *testing.T) {
	t.Run("synthetic hand has all landmarks", func(t *testing.T) {
		hand := OpenPalmHand()
		if !hand.Complete() {
			t.Errorf("expected complete hand, got %d points", len(hand.Points))
		}
	})

	t.Run("truncated hand is incomplete", func(t *testing.T) {
		hand := OpenPalmHand()
		hand.Points = hand.Points[:10]
		if hand.Complete() {
			t.Error("expected incomplete hand for 10 points")
		}
	})

	t.Run("nil hand is incomplete", func(t *testing.T) {
		var hand *Hand
		if hand.Complete() {
			t.Error("expected incomplete for nil hand")
		}
	})
}

func TestHand_IsLeft(t *testing.T) {
	right := OpenPalmHand()
	if right.IsLeft() {
		t.Error("synthetic hand should be a right hand")
	}

	left := MirrorHand(right)
	if !left.IsLeft() {
		t.Error("mirrored hand should be a left hand")
	}
}

func TestHand_PalmWidth(t *testing.T) {
	hand := OpenPalmHand()
	want := math.Abs(hand.Points[IndexMCP].X - hand.Points[PinkyMCP].X)
	if got := hand.PalmWidth(); got != want {
		t.Errorf("PalmWidth() = %f, want %f", got, want)
	}

	hand.Points = nil
	if got := hand.PalmWidth(); got != 0 {
		t.Errorf("PalmWidth() on incomplete hand = %f, want 0", got)
	}
}

func TestShiftHand(t *testing.T) {
	hand := OpenPalmHand()
	shifted := ShiftHand(hand, 100)

	if shifted.WristX() != hand.WristX()+100 {
		t.Errorf("expected wrist at %f, got %f", hand.WristX()+100, shifted.WristX())
	}
	// Relative geometry must be unchanged.
	if shifted.IsLeft() != hand.IsLeft() {
		t.Error("shifting must not change handedness")
	}
	if shifted.PalmWidth() != hand.PalmWidth() {
		t.Error("shifting must not change palm width")
	}
}

func TestMockDetector(t *testing.T) {
	t.Run("returns empty hands by default", func(t *testing.T) {
		mock := NewMockDetector()

		hands, err := mock.Detect(nil)

		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		if hands != nil {
			t.Errorf("expected nil hands, got %v", hands)
		}
	})

	t.Run("returns configured hands", func(t *testing.T) {
		mock := NewMockDetector()
		mock.SetHands([]Hand{OpenPalmHand(), FistHand()})

		hands, err := mock.Detect(nil)

		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		if len(hands) != 2 {
			t.Errorf("expected 2 hands, got %d", len(hands))
		}
	})

	t.Run("returns configured error", func(t *testing.T) {
		mock := NewMockDetector()

		expectedErr := errors.New("detection failed")
		mock.SetError(expectedErr)

		hands, err := mock.Detect(nil)

		if err != expectedErr {
			t.Errorf("expected error %v, got %v", expectedErr, err)
		}
		if hands != nil {
			t.Errorf("expected nil hands when error is set, got %v", hands)
		}
	})

	t.Run("implements Detector interface", func(t *testing.T) {
		var _ Detector = (*MockDetector)(nil)
	})
}
