package assessment

// categoryWeights is the single authoritative weight table. The product once
// carried a second, four-category table for tier classification that summed
// over a different category set; it was rejected in favor of this one so the
// aggregate stays a total function of the scored categories. Weights must sum
// to exactly 1.0.
var categoryWeights = map[Category]float64{
	CategoryVerbal:       0.25,
	CategoryNonverbal:    0.20,
	CategorySocial:       0.25,
	CategoryEmotional:    0.15,
	CategoryAdaptability: 0.15,
}

// aggregate combines category scores into the overall score (weighted sum)
// and overall confidence (arithmetic mean of category confidences; the mean
// keeps one low-signal category from masking strong evidence elsewhere).
func aggregate(scores []CategoryScore) (overall, confidence float64) {
	if len(scores) == 0 {
		return 0, 0
	}
	confSum := 0.0
	for _, cs := range scores {
		overall += categoryWeights[cs.Category] * cs.Score
		confSum += cs.Confidence
	}
	return clampScore(overall), clampScore(confSum / float64(len(scores)))
}
