package assessment

// Trend compares the early half of the session against the late half on one
// representative metric per category. Below the minimum observation count the
// answer is always stable; adaptability carries no longitudinal signal at all.

type trendSpec struct {
	minCount int
	margin   float64
}

var trendSpecs = map[Category]trendSpec{
	CategoryVerbal:    {minCount: 4, margin: 10},  // clarity, score points
	CategoryNonverbal: {minCount: 4, margin: 5},   // eye-contact score points
	CategorySocial:    {minCount: 4, margin: 5},   // engagement points
	CategoryEmotional: {minCount: 5, margin: 0.2}, // valence units
}

func analyzeTrend(c Category, snap *Snapshot) Trend {
	spec, ok := trendSpecs[c]
	if !ok {
		return TrendStable
	}
	series := trendSeries(c, snap)
	if len(series) < spec.minCount {
		return TrendStable
	}

	half := len(series) / 2
	early := mean(series[:half])
	late := mean(series[half:])

	switch {
	case late-early > spec.margin:
		return TrendImproving
	case early-late > spec.margin:
		return TrendNeedsAttention
	default:
		return TrendStable
	}
}

func trendSeries(c Category, snap *Snapshot) []float64 {
	switch c {
	case CategoryVerbal:
		subject := subjectTurns(snap.Turns)
		vals := make([]float64, 0, len(subject))
		for _, t := range subject {
			if t.Clarity != nil {
				vals = append(vals, *t.Clarity)
			}
		}
		return vals
	case CategoryNonverbal:
		vals := make([]float64, 0, len(snap.Samples))
		for _, s := range snap.Samples {
			if s.EyeQuality == EyeContactUnknown && s.EyeFrequency == nil {
				continue
			}
			freq := defaultEyeFrequency
			if s.EyeFrequency != nil {
				freq = *s.EyeFrequency
			}
			vals = append(vals, eyeQualityWeight*eyeQualityScores[s.EyeQuality]+eyeFrequencyWeight*freq*100)
		}
		return vals
	case CategorySocial:
		vals := make([]float64, 0, len(snap.Samples))
		for _, s := range snap.Samples {
			if s.Engagement != nil {
				vals = append(vals, *s.Engagement*100)
			}
		}
		return vals
	case CategoryEmotional:
		vals := make([]float64, 0, len(snap.Samples))
		for _, s := range snap.Samples {
			if s.Valence != nil {
				vals = append(vals, *s.Valence)
			}
		}
		return vals
	}
	return nil
}
