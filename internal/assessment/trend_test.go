package assessment

import (
	"testing"
)

func claritySnapshot(vals ...float64) *Snapshot {
	turns := make([]Turn, 0, len(vals))
	for _, v := range vals {
		v := v
		turns = append(turns, Turn{Speaker: SpeakerSubject, Clarity: &v})
	}
	return &Snapshot{Turns: turns}
}

func TestAnalyzeTrendVerbal(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		snap *Snapshot
		want Trend
	}{
		{"below minimum count", claritySnapshot(10, 90, 10), TrendStable},
		{"improving", claritySnapshot(50, 50, 70, 70), TrendImproving},
		{"declining", claritySnapshot(70, 70, 50, 50), TrendNeedsAttention},
		{"within margin", claritySnapshot(60, 60, 65, 65), TrendStable},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := analyzeTrend(CategoryVerbal, tc.snap); got != tc.want {
				t.Fatalf("got=%s want=%s", got, tc.want)
			}
		})
	}
}

func TestAnalyzeTrendEmotionalUsesValence(t *testing.T) {
	t.Parallel()

	samples := []Sample{
		{Valence: fptr(-0.5)}, {Valence: fptr(-0.5)},
		{Valence: fptr(0.5)}, {Valence: fptr(0.5)}, {Valence: fptr(0.5)},
	}
	if got := analyzeTrend(CategoryEmotional, &Snapshot{Samples: samples}); got != TrendImproving {
		t.Fatalf("rising valence: got=%s want=improving", got)
	}

	// Four readings is below the emotional minimum of five.
	if got := analyzeTrend(CategoryEmotional, &Snapshot{Samples: samples[:4]}); got != TrendStable {
		t.Fatalf("below minimum: got=%s want=stable", got)
	}
}

func TestAnalyzeTrendAdaptabilityAlwaysStable(t *testing.T) {
	t.Parallel()

	snap := claritySnapshot(10, 10, 90, 90)
	if got := analyzeTrend(CategoryAdaptability, snap); got != TrendStable {
		t.Fatalf("adaptability has no longitudinal signal: got=%s", got)
	}
}
