package assessment

import (
	"fmt"
	"strings"
	"time"
)

const (
	weightSocialEngagement  = 0.40
	weightSocialReciprocity = 0.30
	weightSocialInterest    = 0.30

	interestIndicatorPoints = 25.0
)

func scoreSocial(turns []Turn, samples []Sample) CategoryScore {
	subject := subjectTurns(turns)
	if len(samples) == 0 && len(subject) == 0 {
		return neutralCategoryScore(CategorySocial)
	}

	engagement := engagementScore(turns, samples)
	reciprocity := reciprocityRatio(subject)
	interest := socialInterestScore(turns, samples)

	score := clampScore(engagement*weightSocialEngagement +
		reciprocity*weightSocialReciprocity +
		interest*weightSocialInterest)

	last := lastObservation(turns, samples)

	return CategoryScore{
		Category:   CategorySocial,
		Score:      score,
		Confidence: confidenceFor(CategorySocial, len(samples)+len(subject)),
		Evidence: []EvidenceItem{
			evidence("engagement", fmt.Sprintf("Sustained engagement level of %.0f", engagement), engagement, "observation", last),
			evidence("reciprocity", fmt.Sprintf("Responded back-and-forth in %.0f%% of turns", reciprocity), reciprocity, "conversation", last),
			evidence("social_interest", fmt.Sprintf("Showed %d of 4 social interest indicators", int(interest/interestIndicatorPoints)), interest, "observation", last),
		},
		Trend:      TrendStable,
		Comparison: comparisonFor(score),
	}
}

// engagementScore averages the facial engagement stream, falling back to
// per-turn engagement when no samples carried the signal.
func engagementScore(turns []Turn, samples []Sample) float64 {
	vals := make([]float64, 0, len(samples))
	for _, s := range samples {
		if s.Engagement != nil {
			vals = append(vals, *s.Engagement*100)
		}
	}
	if len(vals) == 0 {
		for _, t := range turns {
			if t.Engagement != nil {
				vals = append(vals, *t.Engagement*100)
			}
		}
	}
	if len(vals) == 0 {
		return defaultEngagement * 100
	}
	return mean(vals)
}

func reciprocityRatio(subject []Turn) float64 {
	if len(subject) == 0 {
		return defaultReciprocity
	}
	hits := 0
	for _, t := range subject {
		if t.Reciprocal != nil && *t.Reciprocal && len(t.Content) > 5 {
			hits++
		}
	}
	return 100 * float64(hits) / float64(len(subject))
}

// socialInterestScore awards 25 points per present indicator: attention,
// participation, curiosity, enjoyment.
func socialInterestScore(turns []Turn, samples []Sample) float64 {
	subject := subjectTurns(turns)
	systemCount := len(turns) - len(subject)

	score := 0.0
	if meanEngagementFraction(turns, samples) >= 0.5 {
		score += interestIndicatorPoints // attention
	}
	if systemCount == 0 || len(subject)*2 >= systemCount {
		score += interestIndicatorPoints // participation
	}
	if showsCuriosity(subject) {
		score += interestIndicatorPoints // curiosity
	}
	if meanValence(samples) > 0 {
		score += interestIndicatorPoints // enjoyment
	}
	return score
}

func meanEngagementFraction(turns []Turn, samples []Sample) float64 {
	return engagementScore(turns, samples) / 100
}

func showsCuriosity(subject []Turn) bool {
	for _, t := range subject {
		if strings.Contains(t.Content, "?") {
			return true
		}
		tokens := tokenize(t.Content)
		if len(tokens) > 0 && interrogativeOpeners[strings.ToLower(tokens[0])] {
			return true
		}
	}
	return false
}

func meanValence(samples []Sample) float64 {
	vals := make([]float64, 0, len(samples))
	for _, s := range samples {
		if s.Valence != nil {
			vals = append(vals, *s.Valence)
		}
	}
	return mean(vals)
}

func lastObservation(turns []Turn, samples []Sample) time.Time {
	var last time.Time
	if n := len(turns); n > 0 {
		last = turns[n-1].Timestamp
	}
	if n := len(samples); n > 0 && samples[n-1].Timestamp.After(last) {
		last = samples[n-1].Timestamp
	}
	return last
}
