package assessment

import (
	"math"
	"testing"
)

func TestEyeContactScoreQualityBlend(t *testing.T) {
	t.Parallel()

	samples := []Sample{{EyeQuality: EyeContactNatural, EyeFrequency: fptr(1.0)}}
	if got := eyeContactScore(samples); math.Abs(got-100) > 1e-9 {
		t.Fatalf("natural at full frequency: got=%v want=100", got)
	}

	samples = []Sample{{EyeQuality: EyeContactAvoidant, EyeFrequency: fptr(0)}}
	if got := eyeContactScore(samples); math.Abs(got-14) > 1e-9 {
		t.Fatalf("avoidant at zero frequency: got=%v want=14", got)
	}

	// All-unknown observations carry no signal.
	samples = []Sample{{EyeQuality: EyeContactUnknown}, {EyeQuality: EyeContactUnknown}}
	if got := eyeContactScore(samples); got != defaultEyeScore {
		t.Fatalf("no eye signal should default to %v, got %v", defaultEyeScore, got)
	}
}

func TestExpressionAppropriateness(t *testing.T) {
	t.Parallel()

	samples := []Sample{
		{EmotionPrimary: "happy", Valence: fptr(0.8), EmotionConfidence: fptr(0.9)},   // appropriate
		{EmotionPrimary: "angry", Valence: fptr(-0.8), EmotionConfidence: fptr(0.9)},  // strongly negative
		{EmotionPrimary: "happy", Valence: fptr(0.8), EmotionConfidence: fptr(0.3)},   // low confidence
		{EmotionPrimary: "unknown", Valence: nil, EmotionConfidence: nil},             // unobserved
	}
	if got := expressionAppropriateness(samples); math.Abs(got-100.0/3) > 1e-9 {
		t.Fatalf("1 of 3 observed appropriate: got=%v", got)
	}

	if got := expressionAppropriateness([]Sample{{EmotionPrimary: "unknown"}}); got != defaultExpression {
		t.Fatalf("no emotion signal should default to %v, got %v", defaultExpression, got)
	}
}

func TestScoreNonverbalNeutralWhenNoSamples(t *testing.T) {
	t.Parallel()

	cs := scoreNonverbal(nil)
	if cs.Score != neutralScore || cs.Confidence != neutralConfidence {
		t.Fatalf("no samples: got score=%v conf=%v want %v/%v", cs.Score, cs.Confidence, neutralScore, neutralConfidence)
	}
	if cs.Comparison != ComparisonTypical {
		t.Fatalf("neutral comparison: got=%s", cs.Comparison)
	}
}

func TestScoreNonverbalUsesGesturePlaceholder(t *testing.T) {
	t.Parallel()

	samples := []Sample{{EyeQuality: EyeContactNatural, EyeFrequency: fptr(1.0),
		EmotionPrimary: "happy", Valence: fptr(0.8), EmotionConfidence: fptr(0.9)}}
	cs := scoreNonverbal(samples)

	want := 100*weightNonverbalEye + 100*weightNonverbalExpression + placeholderGestureScore*weightNonverbalGesture
	if math.Abs(cs.Score-want) > 1e-9 {
		t.Fatalf("score: got=%v want=%v", cs.Score, want)
	}

	foundPlaceholder := false
	for _, ev := range cs.Evidence {
		if ev.Context == "placeholder" {
			foundPlaceholder = true
		}
	}
	if !foundPlaceholder {
		t.Fatalf("gesture evidence should be marked as placeholder: %+v", cs.Evidence)
	}
}
