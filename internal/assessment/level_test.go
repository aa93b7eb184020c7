package assessment

import "testing"

func TestClassifyTierBoundaries(t *testing.T) {
	t.Parallel()

	cases := []struct {
		score float64
		want  Tier
	}{
		{0, TierBeginner},
		{39.9, TierBeginner},
		{40, TierBeginner},
		{40.1, TierIntermediate},
		{41, TierIntermediate},
		{70, TierIntermediate},
		{70.1, TierAdvanced},
		{71, TierAdvanced},
		{100, TierAdvanced},
	}
	for _, tc := range cases {
		if got := ClassifyTier(tc.score); got != tc.want {
			t.Fatalf("ClassifyTier(%v): got=%s want=%s", tc.score, got, tc.want)
		}
	}
}

func TestTierAtLeast(t *testing.T) {
	t.Parallel()

	if !TierAtLeast(TierAdvanced, TierIntermediate) {
		t.Fatalf("advanced should satisfy intermediate minimum")
	}
	if TierAtLeast(TierBeginner, TierIntermediate) {
		t.Fatalf("beginner should not satisfy intermediate minimum")
	}
	if !TierAtLeast(TierIntermediate, TierIntermediate) {
		t.Fatalf("a tier should satisfy itself")
	}
}
