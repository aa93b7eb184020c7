package assessment

import (
	"math"
	"testing"
	"time"
)

func TestEngagementScoreFallbackChain(t *testing.T) {
	t.Parallel()

	// Samples win when present.
	samples := []Sample{{Engagement: fptr(0.8)}, {Engagement: fptr(0.6)}}
	turns := []Turn{{Speaker: SpeakerSubject, Engagement: fptr(0.2)}}
	if got := engagementScore(turns, samples); math.Abs(got-70) > 1e-9 {
		t.Fatalf("sample engagement: got=%v want=70", got)
	}

	// No sample signal falls back to turns.
	if got := engagementScore(turns, []Sample{{}}); math.Abs(got-20) > 1e-9 {
		t.Fatalf("turn fallback: got=%v want=20", got)
	}

	// No signal anywhere falls back to the default.
	if got := engagementScore([]Turn{{Speaker: SpeakerSubject}}, nil); got != defaultEngagement*100 {
		t.Fatalf("default engagement: got=%v want=%v", got, defaultEngagement*100)
	}
}

func TestReciprocityRatio(t *testing.T) {
	t.Parallel()

	subject := []Turn{
		{Speaker: SpeakerSubject, Content: "I saw a big dog", Reciprocal: bptr(true)},
		{Speaker: SpeakerSubject, Content: "yes", Reciprocal: bptr(true)}, // too short
		{Speaker: SpeakerSubject, Content: "it was brown and fluffy", Reciprocal: bptr(false)},
		{Speaker: SpeakerSubject, Content: "maybe tomorrow"},
	}
	if got := reciprocityRatio(subject); got != 25 {
		t.Fatalf("reciprocity: got=%v want=25", got)
	}
	if got := reciprocityRatio(nil); got != defaultReciprocity {
		t.Fatalf("no subject turns should default to %v, got %v", defaultReciprocity, got)
	}
}

func TestSocialInterestIndicators(t *testing.T) {
	t.Parallel()

	now := time.Now()
	turns := []Turn{
		{Speaker: SpeakerSystem, Content: "what did you do today?", Timestamp: now},
		{Speaker: SpeakerSubject, Content: "why is the sky blue?", Timestamp: now},
	}
	samples := []Sample{{Engagement: fptr(0.8), Valence: fptr(0.5), Timestamp: now}}

	// Attention (0.8 >= 0.5), participation (1*2 >= 1), curiosity ("why...?"),
	// enjoyment (valence > 0): all four present.
	if got := socialInterestScore(turns, samples); got != 100 {
		t.Fatalf("all indicators present: got=%v want=100", got)
	}

	// Remove the valence signal: enjoyment indicator drops.
	samples[0].Valence = nil
	if got := socialInterestScore(turns, samples); got != 75 {
		t.Fatalf("three indicators: got=%v want=75", got)
	}
}

func TestScoreSocialNeutralWhenSilentAndUnobserved(t *testing.T) {
	t.Parallel()

	cs := scoreSocial([]Turn{{Speaker: SpeakerSystem, Content: "hello?"}}, nil)
	if cs.Score != neutralScore || cs.Confidence != neutralConfidence {
		t.Fatalf("no subject activity: got score=%v conf=%v", cs.Score, cs.Confidence)
	}
}
