package scoring

import "testing"

func TestConfidenceCutoffs(t *testing.T) {
	cases := []struct {
		score float64
		want  Level
	}{
		{0, Low},
		{0.39, Low},
		{0.40, Medium},
		{0.65, Medium},
		{0.66, High},
		{1.0, High},
	}
	for _, c := range cases {
		if got := LevelForScore(c.score); got != c.want {
			t.Errorf("LevelForScore(%f) = %s, want %s", c.score, got, c.want)
		}
	}
}

func TestConfidenceScoreCombinesVolumeAndMargin(t *testing.T) {
	// Full budget answered, decisive 50-point margin: (1.0 + 0.5)/2.
	got := confidenceScore(20, 20, 50, 3)
	if got != 0.75 {
		t.Errorf("score = %f, want 0.75", got)
	}

	// Margin ignored with a single evidenced domain.
	got = confidenceScore(20, 20, 50, 1)
	if got != 0.5 {
		t.Errorf("score = %f, want 0.5", got)
	}

	// Volume clamps at 1 even past the budget.
	got = confidenceScore(40, 20, 100, 2)
	if got != 1.0 {
		t.Errorf("score = %f, want 1.0", got)
	}
}

func TestConfidenceScoreDegenerateBudget(t *testing.T) {
	if got := confidenceScore(0, 0, 0, 0); got != 0 {
		t.Errorf("score = %f, want 0 for no answers", got)
	}
	// A broken zero budget must not divide by zero.
	if got := confidenceScore(3, 0, 0, 1); got != 0.5 {
		t.Errorf("score = %f, want 0.5 with clamped volume", got)
	}
}
