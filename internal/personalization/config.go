package personalization

import "github.com/yungbote/chirp-backend/internal/assessment"

type SupportLevel string

const (
	SupportMinimal  SupportLevel = "minimal"
	SupportModerate SupportLevel = "moderate"
	SupportHigh     SupportLevel = "high"
)

type HintFrequency string

const (
	HintsLow      HintFrequency = "low"
	HintsModerate HintFrequency = "moderate"
	HintsHigh     HintFrequency = "high"
)

type ScenarioConfig struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Unlocked     bool         `json:"unlocked"`
	Recommended  bool         `json:"recommended"`
	SupportLevel SupportLevel `json:"support_level"`
}

type AdaptiveSettings struct {
	ResponseTimeoutSeconds int           `json:"response_timeout_seconds"`
	HintFrequency          HintFrequency `json:"hint_frequency"`
	DifficultyAdjustment   bool          `json:"difficulty_adjustment"`
	AllowSkip              bool          `json:"allow_skip"`
	AllowRepeat            bool          `json:"allow_repeat"`
}

// GameConfiguration drives which content a subject sees next. It is derived
// strictly from an AssessmentResult; Default() covers the no-assessment case.
type GameConfiguration struct {
	Tier            assessment.Tier  `json:"tier"`
	UnlockedModules []string         `json:"unlocked_modules"` // sorted, deduplicated
	Scenarios       []ScenarioConfig `json:"scenarios"`        // catalogue order
	Adaptive        AdaptiveSettings `json:"adaptive"`
}

// Default is the configuration used before any assessment exists: base
// modules only, home scenario only, maximum support.
func Default() GameConfiguration {
	scenarios := make([]ScenarioConfig, 0, len(scenarioCatalog))
	for _, r := range scenarioCatalog {
		scenarios = append(scenarios, ScenarioConfig{
			ID:           r.id,
			Name:         r.name,
			Unlocked:     r.always,
			Recommended:  r.always,
			SupportLevel: SupportHigh,
		})
	}
	return GameConfiguration{
		Tier:            assessment.TierBeginner,
		UnlockedModules: sortedUnique(baseModules),
		Scenarios:       scenarios,
		Adaptive: AdaptiveSettings{
			ResponseTimeoutSeconds: baseTimeoutSeconds,
			HintFrequency:          HintsHigh,
			DifficultyAdjustment:   false,
			AllowSkip:              true,
			AllowRepeat:            true,
		},
	}
}
