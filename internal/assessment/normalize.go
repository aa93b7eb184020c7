package assessment

import (
	"sort"
	"strings"

	pkgerrors "github.com/yungbote/chirp-backend/internal/pkg/errors"
)

// Normalize converts heterogeneous collaborator payloads into the uniform
// record shape the scorers consume. Gaps become unknown sentinels (nil
// pointers, EyeContactUnknown), never errors; the only rejected input is a
// structurally invalid one (nil input or nil turn log).
func Normalize(in *RawInput) (*Snapshot, error) {
	if in == nil || in.Turns == nil {
		return nil, pkgerrors.ErrInvalidInput
	}

	snap := &Snapshot{
		Version:     in.Version,
		Turns:       make([]Turn, 0, len(in.Turns)),
		Samples:     make([]Sample, 0, len(in.Samples)),
		Adaptations: make([]AdaptationEvent, 0, len(in.Adaptations)),
		Metrics:     in.Metrics,
	}

	for _, rt := range in.Turns {
		speaker, ok := normalizeSpeaker(rt.Speaker)
		if !ok {
			// Unknown speaker identifiers are dropped, not failed.
			continue
		}
		t := Turn{
			Speaker:   speaker,
			Content:   strings.TrimSpace(rt.Content),
			Timestamp: rt.Timestamp,
		}
		for _, b := range rt.Analysis {
			if b.Kind != BundleSpeech || b.Speech == nil {
				continue
			}
			if v := clampPtr(b.Speech.Clarity, 0, 100); v != nil {
				t.Clarity = v
			}
			if b.Speech.Reciprocal != nil {
				t.Reciprocal = b.Speech.Reciprocal
			}
			if v := clampPtr(b.Speech.Engagement, 0, 1); v != nil {
				t.Engagement = v
			}
		}
		snap.Turns = append(snap.Turns, t)
	}

	for _, rs := range in.Samples {
		s := Sample{
			Timestamp:      rs.Timestamp,
			EyeQuality:     EyeContactUnknown,
			EmotionPrimary: "unknown",
		}
		for _, b := range rs.Analysis {
			if b.Kind != BundleFacial || b.Facial == nil {
				continue
			}
			if ec := b.Facial.EyeContact; ec != nil {
				s.EyeQuality = normalizeEyeQuality(ec.Quality)
				s.EyeFrequency = clampPtr(ec.Frequency, 0, 1)
			}
			if em := b.Facial.Emotion; em != nil {
				if p := strings.TrimSpace(strings.ToLower(em.Primary)); p != "" {
					s.EmotionPrimary = p
				}
				s.Valence = clampPtr(em.Valence, -1, 1)
				s.EmotionConfidence = clampPtr(em.Confidence, 0, 1)
			}
			if v := clampPtr(b.Facial.Engagement, 0, 1); v != nil {
				s.Engagement = v
			}
			if v := clampPtr(b.Facial.Comfort, 0, 100); v != nil {
				s.Comfort = v
			}
		}
		snap.Samples = append(snap.Samples, s)
	}

	for _, ra := range in.Adaptations {
		trigger := strings.TrimSpace(ra.Trigger)
		if trigger == "" {
			continue
		}
		snap.Adaptations = append(snap.Adaptations, AdaptationEvent{
			Trigger:   trigger,
			Effect:    strings.TrimSpace(ra.Effect),
			Timestamp: ra.Timestamp,
		})
	}

	sort.SliceStable(snap.Turns, func(i, j int) bool {
		return snap.Turns[i].Timestamp.Before(snap.Turns[j].Timestamp)
	})
	sort.SliceStable(snap.Samples, func(i, j int) bool {
		return snap.Samples[i].Timestamp.Before(snap.Samples[j].Timestamp)
	})

	return snap, nil
}

func normalizeSpeaker(raw string) (Speaker, bool) {
	switch strings.TrimSpace(strings.ToLower(raw)) {
	case "system", "assistant", "guide":
		return SpeakerSystem, true
	case "subject", "child", "user":
		return SpeakerSubject, true
	}
	return "", false
}

func normalizeEyeQuality(raw string) EyeContactQuality {
	switch strings.TrimSpace(strings.ToLower(raw)) {
	case "natural":
		return EyeContactNatural
	case "forced":
		return EyeContactForced
	case "avoidant":
		return EyeContactAvoidant
	}
	return EyeContactUnknown
}

func clampPtr(v *float64, lo, hi float64) *float64 {
	if v == nil {
		return nil
	}
	x := *v
	if x < lo {
		x = lo
	}
	if x > hi {
		x = hi
	}
	return &x
}
