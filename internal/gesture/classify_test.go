package gesture

import "testing"

func TestClassify_Table(t *testing.T) {
	cases := []struct {
		pattern FingerState
		id      int
		label   string
	}{
		{FingerState{false, false, false, false, false}, 0, "零"},
		{FingerState{false, true, false, false, false}, 1, "一"},
		{FingerState{true, false, false, false, false}, ThumbsUp, "讚"},
		{FingerState{false, true, true, false, false}, 2, "二"},
		{FingerState{false, true, true, true, false}, 3, "三"},
		{FingerState{false, false, true, true, true}, 3, "三"},
		{FingerState{false, true, true, true, true}, 4, "四"},
		{FingerState{true, true, true, true, true}, 5, "五"},
		{FingerState{true, false, true, true, true}, SignOK, "OK"},
		{FingerState{false, true, false, false, true}, SignRock, "搖滾"},
		{FingerState{true, true, false, false, true}, SignLoveYou, "愛你"},
		{FingerState{true, false, false, false, true}, SignCallMe, "打電話"},
	}

	for _, c := range cases {
		t.Run(c.pattern.String(), func(t *testing.T) {
			g := Classify(c.pattern)
			if g.ID != c.id || g.Label != c.label {
				t.Errorf("Classify(%s) = (%d, %q), want (%d, %q)",
					c.pattern, g.ID, g.Label, c.id, c.label)
			}
		})
	}
}

func TestClassify_UnmappedPatternsAreUnrecognized(t *testing.T) {
	mapped := make(map[FingerState]bool)
	for _, r := range rules {
		mapped[r.pattern] = true
	}

	for bits := 0; bits < 32; bits++ {
		var s FingerState
		for f := 0; f < NumFingers; f++ {
			s[f] = bits&(1<<f) != 0
		}
		g := Classify(s)
		if mapped[s] {
			if g.ID == Unrecognized {
				t.Errorf("mapped pattern %s classified as unrecognized", s)
			}
			continue
		}
		if g.ID != Unrecognized || g.Label != "未知" {
			t.Errorf("Classify(%s) = (%d, %q), want (-1, 未知)", s, g.ID, g.Label)
		}
	}
}

func TestClassify_IsPure(t *testing.T) {
	// Identical input must always yield identical output.
	for bits := 0; bits < 32; bits++ {
		var s FingerState
		for f := 0; f < NumFingers; f++ {
			s[f] = bits&(1<<f) != 0
		}
		first := Classify(s)
		for i := 0; i < 3; i++ {
			if got := Classify(s); got != first {
				t.Fatalf("Classify(%s) not deterministic: %v then %v", s, first, got)
			}
		}
	}
}

func TestGesture_IsDigit(t *testing.T) {
	cases := []struct {
		id   int
		want bool
	}{
		{0, true},
		{5, true},
		{ThumbsUp, true},
		{9, true},
		{SignOK, false},
		{SignCallMe, false},
		{Unrecognized, false},
	}
	for _, c := range cases {
		g := Gesture{ID: c.id}
		if g.IsDigit() != c.want {
			t.Errorf("Gesture{ID: %d}.IsDigit() = %v, want %v", c.id, g.IsDigit(), c.want)
		}
	}
}

func TestDescription(t *testing.T) {
	if Description(0) != "握拳（所有手指彎曲）" {
		t.Errorf("unexpected description for 0: %q", Description(0))
	}
	if Description(42) != "未知手勢" {
		t.Errorf("expected fallback description, got %q", Description(42))
	}
}
