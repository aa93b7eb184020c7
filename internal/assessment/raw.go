package assessment

import "time"

// Raw input shapes as delivered by the capture collaborators. Each analysis
// bundle carries a discriminant kind plus exactly one populated variant;
// unknown kinds are dropped during normalization, never rejected.

type BundleKind string

const (
	BundleSpeech  BundleKind = "speech"
	BundleFacial  BundleKind = "facial"
	BundleGesture BundleKind = "gesture"
)

type AnalysisBundle struct {
	Kind    BundleKind     `json:"kind"`
	Speech  *SpeechBundle  `json:"speech,omitempty"`
	Facial  *FacialBundle  `json:"facial,omitempty"`
	Gesture *GestureBundle `json:"gesture,omitempty"`
}

type SpeechBundle struct {
	Clarity    *float64 `json:"clarity,omitempty"`    // 0..100
	Reciprocal *bool    `json:"reciprocal,omitempty"`
	Engagement *float64 `json:"engagement,omitempty"` // 0..1
}

type FacialBundle struct {
	EyeContact *EyeContactBundle `json:"eye_contact,omitempty"`
	Emotion    *EmotionBundle    `json:"emotion,omitempty"`
	Engagement *float64          `json:"engagement,omitempty"` // 0..1
	Comfort    *float64          `json:"comfort,omitempty"`    // 0..100
}

type EyeContactBundle struct {
	Quality   string   `json:"quality,omitempty"`   // natural|forced|avoidant
	Frequency *float64 `json:"frequency,omitempty"` // 0..1
}

type EmotionBundle struct {
	Primary    string   `json:"primary,omitempty"`
	Valence    *float64 `json:"valence,omitempty"`    // -1..1
	Confidence *float64 `json:"confidence,omitempty"` // 0..1
}

type GestureBundle struct {
	Appropriateness *float64 `json:"appropriateness,omitempty"` // 0..100
}

type RawTurn struct {
	Speaker   string           `json:"speaker"`
	Content   string           `json:"content"`
	Timestamp time.Time        `json:"timestamp"`
	Analysis  []AnalysisBundle `json:"analysis,omitempty"`
}

type RawSample struct {
	Timestamp time.Time        `json:"timestamp"`
	Analysis  []AnalysisBundle `json:"analysis,omitempty"`
}

type RawAdaptationEvent struct {
	Trigger   string    `json:"trigger"`
	Effect    string    `json:"effect"`
	Timestamp time.Time `json:"timestamp"`
}

// RawInput is the top-level payload handed to the pipeline. Turns must be
// non-nil; an empty slice is a valid (if silent) session.
type RawInput struct {
	Version     int64                `json:"version"`
	Turns       []RawTurn            `json:"turns"`
	Samples     []RawSample          `json:"samples,omitempty"`
	Adaptations []RawAdaptationEvent `json:"adaptations,omitempty"`
	Metrics     SessionMetrics       `json:"metrics"`
}
