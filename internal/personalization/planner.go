package personalization

import (
	"sort"

	"github.com/yungbote/chirp-backend/internal/assessment"
)

// Plan maps an assessment result onto a game configuration through a fixed
// rule table. It is deterministic: identical results produce byte-identical
// configurations. A nil result, or one computed over an empty session, yields
// Default(): defaulted neutral scores must not unlock anything.
func Plan(res *assessment.Result) GameConfiguration {
	if !res.Observed() {
		return Default()
	}

	scoreOf := func(c assessment.Category) float64 { return res.Category(c).Score }

	modules := make([]string, 0, 8)
	modules = append(modules, baseModules...)
	modules = append(modules, tierModules[res.Tier]...)
	modules = append(modules, SuggestedModules(res)...)

	return GameConfiguration{
		Tier:            res.Tier,
		UnlockedModules: sortedUnique(modules),
		Scenarios:       planScenarios(res.Tier, scoreOf),
		Adaptive:        planAdaptive(res, scoreOf),
	}
}

// SuggestedModules returns the enrichment and remediation unlocks earned per
// category: enrichment at score >= 70, remediation at score < 50. Both rules
// fire independently per category. A result with no observed input earns
// nothing.
func SuggestedModules(res *assessment.Result) []string {
	if !res.Observed() {
		return nil
	}
	out := make([]string, 0, 4)
	for _, c := range assessment.Categories {
		score := res.Category(c).Score
		if score >= enrichmentThreshold {
			out = append(out, enrichmentModules[c]...)
		}
		if score < remediationThreshold {
			out = append(out, remediationModules[c]...)
		}
	}
	return sortedUnique(out)
}

func planScenarios(tier assessment.Tier, scoreOf func(assessment.Category) float64) []ScenarioConfig {
	out := make([]ScenarioConfig, 0, len(scenarioCatalog))
	recommendIdx := -1
	recommendScore := 0.0
	for i, r := range scenarioCatalog {
		gate := scoreOf(r.gateCategory)
		unlocked := r.unlocked(tier, scoreOf)
		out = append(out, ScenarioConfig{
			ID:           r.id,
			Name:         r.name,
			Unlocked:     unlocked,
			SupportLevel: supportLevelFor(gate),
		})
		// Recommend the unlocked scenario whose gating skill is weakest, so
		// practice lands where it helps most. Ties keep catalogue order.
		if unlocked && (recommendIdx == -1 || gate < recommendScore) {
			recommendIdx = i
			recommendScore = gate
		}
	}
	if recommendIdx >= 0 {
		out[recommendIdx].Recommended = true
	}
	return out
}

func supportLevelFor(score float64) SupportLevel {
	switch {
	case score >= 80:
		return SupportMinimal
	case score >= 60:
		return SupportModerate
	default:
		return SupportHigh
	}
}

const (
	baseTimeoutSeconds = 30

	spreadThreshold = 30.0
)

func planAdaptive(res *assessment.Result, scoreOf func(assessment.Category) float64) AdaptiveSettings {
	verbal := scoreOf(assessment.CategoryVerbal)
	comfort := scoreOf(assessment.CategoryEmotional)

	timeout := baseTimeoutSeconds
	switch {
	case verbal >= 70 && res.Tier == assessment.TierAdvanced:
		timeout -= 10
	case verbal >= 60 && assessment.TierAtLeast(res.Tier, assessment.TierIntermediate):
		timeout -= 5
	case verbal < 40:
		timeout += 10
	}

	hints := HintsLow
	switch {
	case comfort < 40:
		hints = HintsHigh
	case comfort < 70:
		hints = HintsModerate
	}

	primary := []float64{
		verbal,
		scoreOf(assessment.CategoryNonverbal),
		scoreOf(assessment.CategorySocial),
	}
	sort.Float64s(primary)
	spread := primary[len(primary)-1] - primary[0]

	return AdaptiveSettings{
		ResponseTimeoutSeconds: timeout,
		HintFrequency:          hints,
		DifficultyAdjustment:   spread > spreadThreshold,
		AllowSkip:              comfort < 50,
		AllowRepeat:            verbal < 60,
	}
}

func sortedUnique(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, v := range in {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
