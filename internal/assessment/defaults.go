package assessment

import "math"

// Confidence scales with evidence volume and never decreases as data grows:
// min(cap, base + perSample*n), capped per category because the categories
// differ in how directly their signals measure the skill.
const (
	confidenceBase      = 30.0
	confidencePerSample = 5.0
)

var confidenceCaps = map[Category]float64{
	CategoryVerbal:       95,
	CategoryNonverbal:    90,
	CategorySocial:       85,
	CategoryEmotional:    80,
	CategoryAdaptability: 75,
}

func confidenceFor(c Category, sampleCount int) float64 {
	if sampleCount < 0 {
		sampleCount = 0
	}
	v := confidenceBase + confidencePerSample*float64(sampleCount)
	if limit, ok := confidenceCaps[c]; ok && v > limit {
		v = limit
	}
	return v
}

// Component defaults substituted when a collaborator bundle is absent.
const (
	defaultClarity      = 70.0 // speech collaborator silent on clarity
	defaultEyeScore     = 50.0 // no eye-contact signal in any sample
	defaultEyeFrequency = 0.5
	defaultExpression   = 60.0 // no facial-emotion signal
	defaultEngagement   = 0.5
	defaultComfort      = 50.0
	defaultStability    = 70.0 // fewer than two valence readings
	defaultReciprocity  = 50.0
)

const (
	neutralScore      = 50.0
	neutralConfidence = confidenceBase
)

// neutralCategoryScore is the single documented fallback for a category whose
// inputs are empty. Verbal is the exception: zero turns yield 0/0 with no
// evidence (scoreVerbal handles that case itself).
func neutralCategoryScore(c Category) CategoryScore {
	return CategoryScore{
		Category:   c,
		Score:      neutralScore,
		Confidence: neutralConfidence,
		Evidence: []EvidenceItem{{
			Skill:         string(c),
			Demonstration: "No observations recorded; neutral baseline applied",
			Strength:      neutralScore,
			Context:       "insufficient_data",
		}},
		Trend:      TrendStable,
		Comparison: ComparisonTypical,
	}
}

// insufficientData reports whether a category has no inputs at all and must
// fall back to the neutral default.
func insufficientData(c Category, snap *Snapshot) bool {
	switch c {
	case CategoryVerbal:
		return len(subjectTurns(snap.Turns)) == 0
	case CategoryNonverbal, CategoryEmotional:
		return len(snap.Samples) == 0
	case CategorySocial:
		return len(snap.Samples) == 0 && len(subjectTurns(snap.Turns)) == 0
	case CategoryAdaptability:
		return len(snap.Turns) == 0 && len(snap.Samples) == 0 && len(snap.Adaptations) == 0
	}
	return true
}

func comparisonFor(score float64) Comparison {
	switch {
	case score >= 75:
		return ComparisonAboveTypical
	case score >= 45:
		return ComparisonTypical
	default:
		return ComparisonBelowTypical
	}
}

func subjectTurns(turns []Turn) []Turn {
	out := make([]Turn, 0, len(turns))
	for _, t := range turns {
		if t.Speaker == SpeakerSubject {
			out = append(out, t)
		}
	}
	return out
}

func clampScore(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func mean(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

func variance(vals []float64) float64 {
	if len(vals) < 2 {
		return 0
	}
	m := mean(vals)
	sum := 0.0
	for _, v := range vals {
		d := v - m
		sum += d * d
	}
	return sum / float64(len(vals))
}
