package assessment

import "time"

type Speaker string

const (
	SpeakerSystem  Speaker = "system"
	SpeakerSubject Speaker = "subject"
)

// Category identifies one communication-skill dimension scored independently.
type Category string

const (
	CategoryVerbal       Category = "verbal"
	CategoryNonverbal    Category = "nonverbal"
	CategorySocial       Category = "social"
	CategoryEmotional    Category = "emotional_regulation"
	CategoryAdaptability Category = "adaptability"
)

// Categories is the fixed scoring order. Planner and serialization rely on it
// being stable.
var Categories = []Category{
	CategoryVerbal,
	CategoryNonverbal,
	CategorySocial,
	CategoryEmotional,
	CategoryAdaptability,
}

type Tier string

const (
	TierBeginner     Tier = "beginner"
	TierIntermediate Tier = "intermediate"
	TierAdvanced     Tier = "advanced"
)

func tierRank(t Tier) int {
	switch t {
	case TierIntermediate:
		return 1
	case TierAdvanced:
		return 2
	default:
		return 0
	}
}

// TierAtLeast reports whether t is equal to or above min.
func TierAtLeast(t, min Tier) bool { return tierRank(t) >= tierRank(min) }

type Trend string

const (
	TrendImproving      Trend = "improving"
	TrendStable         Trend = "stable"
	TrendNeedsAttention Trend = "needs_attention"
)

type Comparison string

const (
	ComparisonAboveTypical Comparison = "above_typical"
	ComparisonTypical      Comparison = "typical"
	ComparisonBelowTypical Comparison = "below_typical"
)

type EyeContactQuality string

const (
	EyeContactNatural  EyeContactQuality = "natural"
	EyeContactForced   EyeContactQuality = "forced"
	EyeContactAvoidant EyeContactQuality = "avoidant"
	EyeContactUnknown  EyeContactQuality = "unknown"
)

// Turn is a normalized conversational turn. Nil pointer fields mean the
// collaborator supplied no signal for that field.
type Turn struct {
	Speaker    Speaker   `json:"speaker"`
	Content    string    `json:"content"`
	Timestamp  time.Time `json:"timestamp"`
	Clarity    *float64  `json:"clarity,omitempty"`    // 0..100
	Reciprocal *bool     `json:"reciprocal,omitempty"`
	Engagement *float64  `json:"engagement,omitempty"` // 0..1
}

// Sample is a normalized non-verbal state snapshot.
type Sample struct {
	Timestamp         time.Time         `json:"timestamp"`
	EyeQuality        EyeContactQuality `json:"eye_quality"`
	EyeFrequency      *float64          `json:"eye_frequency,omitempty"` // 0..1
	EmotionPrimary    string            `json:"emotion_primary"`
	Valence           *float64          `json:"valence,omitempty"`    // -1..1
	EmotionConfidence *float64          `json:"emotion_confidence,omitempty"` // 0..1
	Engagement        *float64          `json:"engagement,omitempty"` // 0..1
	Comfort           *float64          `json:"comfort,omitempty"`    // 0..100
}

type AdaptationEvent struct {
	Trigger   string    `json:"trigger"`
	Effect    string    `json:"effect"`
	Timestamp time.Time `json:"timestamp"`
}

type SessionMetrics struct {
	StartedAt   time.Time     `json:"started_at"`
	Duration    time.Duration `json:"duration"`
	TurnCount   int           `json:"turn_count"`
	SampleCount int           `json:"sample_count"`
}

// Snapshot is the immutable view of a session's logs that one assessment pass
// operates over. Callers must not mutate it after handing it to Assess.
type Snapshot struct {
	Version     int64             `json:"version"`
	Turns       []Turn            `json:"turns"`
	Samples     []Sample          `json:"samples"`
	Adaptations []AdaptationEvent `json:"adaptations,omitempty"`
	Metrics     SessionMetrics    `json:"metrics"`
}

// EvidenceItem is a traceable justification backing a category score.
type EvidenceItem struct {
	Skill         string    `json:"skill"`
	Demonstration string    `json:"demonstration"`
	Strength      float64   `json:"strength"` // 0..100
	Context       string    `json:"context"`
	Timestamp     time.Time `json:"timestamp"`
}

type CategoryScore struct {
	Category   Category       `json:"category"`
	Score      float64        `json:"score"`      // 0..100
	Confidence float64        `json:"confidence"` // 0..100
	Evidence   []EvidenceItem `json:"evidence"`
	Trend      Trend          `json:"trend"`
	Comparison Comparison     `json:"comparison"`
}

type Strength struct {
	Category    Category `json:"category"`
	Description string   `json:"description"`
	Evidence    []string `json:"evidence,omitempty"`
	BuildUpon   []string `json:"build_upon,omitempty"`
}

type DevelopmentArea struct {
	Category     Category `json:"category"`
	CurrentLevel string   `json:"current_level"`
	TargetLevel  string   `json:"target_level"`
	Priority     string   `json:"priority"` // high|medium
	Suggestions  []string `json:"suggestions,omitempty"`
}

type Insights struct {
	Highlights       []string          `json:"highlights"`
	Strengths        []Strength        `json:"strengths"`
	DevelopmentAreas []DevelopmentArea `json:"development_areas"`
}

// Result is the outcome of one assessment pass. It is a pure value:
// re-running the pipeline over the same snapshot yields an identical Result.
type Result struct {
	LogVersion        int64           `json:"log_version"`
	TurnCount         int             `json:"turn_count"`
	SampleCount       int             `json:"sample_count"`
	Categories        []CategoryScore `json:"categories"` // fixed Categories order
	OverallScore      float64         `json:"overall_score"`
	OverallConfidence float64         `json:"overall_confidence"`
	Tier              Tier            `json:"tier"`
	Insights          Insights        `json:"insights"`
	Hints             []string        `json:"hints,omitempty"`
	SuggestedModules  []string        `json:"suggested_modules,omitempty"`
}

// Observed reports whether the result was computed from any actual input.
// A result over zero turns and zero samples carries only defaulted scores.
func (r *Result) Observed() bool {
	return r != nil && (r.TurnCount > 0 || r.SampleCount > 0)
}

// Category returns the score entry for c, or a zero CategoryScore when the
// result predates the category (should not happen for results this package
// produces).
func (r *Result) Category(c Category) CategoryScore {
	if r == nil {
		return CategoryScore{}
	}
	for _, cs := range r.Categories {
		if cs.Category == c {
			return cs
		}
	}
	return CategoryScore{}
}
