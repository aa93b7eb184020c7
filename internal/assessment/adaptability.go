package assessment

import "fmt"

const (
	weightAdaptResponse    = 0.40
	weightAdaptFlexibility = 0.30
	weightAdaptProgression = 0.30

	// Elevated baseline applied when the session actually adapted around the
	// subject; the subject tolerating the change is itself the signal.
	adaptationResponseWithEvents = 75.0
	adaptationResponseBaseline   = 60.0

	// Placeholder estimators: conversation flexibility and learning
	// progression have no direct signal yet and are held constant until the
	// capture side delivers one.
	placeholderFlexibilityScore = 65.0
	placeholderProgressionScore = 70.0
)

func scoreAdaptability(snap *Snapshot) CategoryScore {
	if insufficientData(CategoryAdaptability, snap) {
		return neutralCategoryScore(CategoryAdaptability)
	}

	response := adaptationResponseBaseline
	if len(snap.Adaptations) > 0 {
		response = adaptationResponseWithEvents
	}

	score := clampScore(response*weightAdaptResponse +
		placeholderFlexibilityScore*weightAdaptFlexibility +
		placeholderProgressionScore*weightAdaptProgression)

	last := lastObservation(snap.Turns, snap.Samples)

	return CategoryScore{
		Category:   CategoryAdaptability,
		Score:      score,
		Confidence: confidenceFor(CategoryAdaptability, len(snap.Adaptations)),
		Evidence: []EvidenceItem{
			evidence("adaptation_response", fmt.Sprintf("Handled %d in-session adaptations", len(snap.Adaptations)), response, "session", last),
			evidence("conversation_flexibility", "Conversation flexibility held at baseline pending richer signal", placeholderFlexibilityScore, "placeholder", last),
			evidence("learning_progression", "Learning progression held at baseline pending richer signal", placeholderProgressionScore, "placeholder", last),
		},
		Trend:      TrendStable,
		Comparison: comparisonFor(score),
	}
}
