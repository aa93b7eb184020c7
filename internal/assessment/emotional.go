package assessment

import "fmt"

const (
	weightEmotionalComfort   = 0.40
	weightEmotionalStability = 0.30
	weightEmotionalRecovery  = 0.30

	// Comfort below this marks a stress window.
	lowComfortThreshold = 40.0
	// A stress window counts as recovered when comfort rises within this many
	// subsequent samples.
	recoveryWindow = 2
)

func scoreEmotional(samples []Sample) CategoryScore {
	if len(samples) == 0 {
		return neutralCategoryScore(CategoryEmotional)
	}

	comfort := meanComfort(samples)
	stability := emotionalStability(samples)
	recovery := stressRecoveryRatio(samples)

	score := clampScore(comfort*weightEmotionalComfort +
		stability*weightEmotionalStability +
		recovery*weightEmotionalRecovery)

	last := samples[len(samples)-1].Timestamp

	return CategoryScore{
		Category:   CategoryEmotional,
		Score:      score,
		Confidence: confidenceFor(CategoryEmotional, len(samples)),
		Evidence: []EvidenceItem{
			evidence("comfort", fmt.Sprintf("Average comfort level of %.0f", comfort), comfort, "observation", last),
			evidence("emotional_stability", fmt.Sprintf("Emotional stability scored %.0f", stability), stability, "observation", last),
			evidence("stress_recovery", fmt.Sprintf("Recovered from %.0f%% of low-comfort moments", recovery), recovery, "observation", last),
		},
		Trend:      TrendStable,
		Comparison: comparisonFor(score),
	}
}

func meanComfort(samples []Sample) float64 {
	vals := make([]float64, 0, len(samples))
	for _, s := range samples {
		if s.Comfort != nil {
			vals = append(vals, *s.Comfort)
		}
	}
	if len(vals) == 0 {
		return defaultComfort
	}
	return mean(vals)
}

// emotionalStability is 100 minus scaled valence variance, floored at zero.
// Valence lives in [-1,1] so variance is already on a unit scale.
func emotionalStability(samples []Sample) float64 {
	vals := make([]float64, 0, len(samples))
	for _, s := range samples {
		if s.Valence != nil {
			vals = append(vals, *s.Valence)
		}
	}
	if len(vals) < 2 {
		return defaultStability
	}
	v := 100 - 100*variance(vals)
	if v < 0 {
		v = 0
	}
	return v
}

// stressRecoveryRatio is the fraction of low-comfort windows followed within
// recoveryWindow samples by a comfort increase. No low-comfort windows means
// recovery is 100 by definition.
func stressRecoveryRatio(samples []Sample) float64 {
	comforts := make([]float64, 0, len(samples))
	for _, s := range samples {
		if s.Comfort != nil {
			comforts = append(comforts, *s.Comfort)
		}
	}

	lows := 0
	recovered := 0
	for i, c := range comforts {
		if c >= lowComfortThreshold {
			continue
		}
		lows++
		for j := i + 1; j <= i+recoveryWindow && j < len(comforts); j++ {
			if comforts[j] > c {
				recovered++
				break
			}
		}
	}
	if lows == 0 {
		return 100
	}
	return 100 * float64(recovered) / float64(lows)
}
