package assessment

import "fmt"

const (
	weightNonverbalEye        = 0.40
	weightNonverbalExpression = 0.30
	weightNonverbalGesture    = 0.30

	eyeQualityWeight   = 0.7
	eyeFrequencyWeight = 0.3
)

var eyeQualityScores = map[EyeContactQuality]float64{
	EyeContactNatural:  100,
	EyeContactForced:   60,
	EyeContactAvoidant: 20,
	EyeContactUnknown:  50,
}

// Expression counts as appropriate when it is confidently recognized, not
// strongly negative, and within the approved label set.
var approvedExpressions = map[string]bool{
	"happy": true, "neutral": true, "surprised": true,
	"excited": true, "calm": true,
}

// placeholderGestureScore is a placeholder estimator: the gesture collaborator
// does not deliver signal yet, so gesture naturalness is held constant until
// it does.
const placeholderGestureScore = 70.0

func scoreNonverbal(samples []Sample) CategoryScore {
	if len(samples) == 0 {
		return neutralCategoryScore(CategoryNonverbal)
	}

	eye := eyeContactScore(samples)
	expression := expressionAppropriateness(samples)

	score := clampScore(eye*weightNonverbalEye +
		expression*weightNonverbalExpression +
		placeholderGestureScore*weightNonverbalGesture)

	last := samples[len(samples)-1].Timestamp

	return CategoryScore{
		Category:   CategoryNonverbal,
		Score:      score,
		Confidence: confidenceFor(CategoryNonverbal, len(samples)),
		Evidence: []EvidenceItem{
			evidence("eye_contact", fmt.Sprintf("Eye contact scored %.0f over %d observations", eye, len(samples)), eye, "observation", last),
			evidence("facial_expression", fmt.Sprintf("Appropriate facial expression in %.0f%% of observations", expression), expression, "observation", last),
			evidence("gesture_naturalness", "Gesture naturalness held at baseline pending gesture signal", placeholderGestureScore, "placeholder", last),
		},
		Trend:      TrendStable,
		Comparison: comparisonFor(score),
	}
}

func eyeContactScore(samples []Sample) float64 {
	vals := make([]float64, 0, len(samples))
	for _, s := range samples {
		if s.EyeQuality == EyeContactUnknown && s.EyeFrequency == nil {
			continue
		}
		quality := eyeQualityScores[s.EyeQuality]
		freq := defaultEyeFrequency
		if s.EyeFrequency != nil {
			freq = *s.EyeFrequency
		}
		vals = append(vals, eyeQualityWeight*quality+eyeFrequencyWeight*freq*100)
	}
	if len(vals) == 0 {
		return defaultEyeScore
	}
	return mean(vals)
}

func expressionAppropriateness(samples []Sample) float64 {
	observed := 0
	appropriate := 0
	for _, s := range samples {
		if s.Valence == nil || s.EmotionConfidence == nil {
			continue
		}
		observed++
		if *s.Valence > -0.5 && *s.EmotionConfidence > 0.5 && approvedExpressions[s.EmotionPrimary] {
			appropriate++
		}
	}
	if observed == 0 {
		return defaultExpression
	}
	return 100 * float64(appropriate) / float64(observed)
}
