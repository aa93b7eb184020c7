package assessment

// ClassifyTier maps an overall score to its proficiency tier. The three bands
// partition [0,100]: beginner [0,40], intermediate (40,70], advanced (70,100].
// Every representable score maps to exactly one tier.
func ClassifyTier(score float64) Tier {
	switch {
	case score <= 40:
		return TierBeginner
	case score <= 70:
		return TierIntermediate
	default:
		return TierAdvanced
	}
}
