package assessment

import "fmt"

const (
	strengthThreshold    = 70.0
	developmentThreshold = 60.0
	highPriorityBelow    = 40.0

	highlightStrength = 75.0
	maxHighlights     = 3
)

var categoryLabels = map[Category]string{
	CategoryVerbal:       "verbal communication",
	CategoryNonverbal:    "nonverbal communication",
	CategorySocial:       "social engagement",
	CategoryEmotional:    "emotional regulation",
	CategoryAdaptability: "adaptability",
}

var buildUponSuggestions = map[Category][]string{
	CategoryVerbal:       {"Introduce open-ended story prompts", "Invite the child to explain their favorite activity"},
	CategoryNonverbal:    {"Practice conversations during shared play", "Add expression-matching games for variety"},
	CategorySocial:       {"Extend turn-taking games with new partners", "Let the child lead a topic of their choosing"},
	CategoryEmotional:    {"Name emotions together during calm moments", "Celebrate recoveries from frustrating moments"},
	CategoryAdaptability: {"Introduce small surprises into familiar routines", "Rotate scenario order between sessions"},
}

var developmentSuggestions = map[Category][]string{
	CategoryVerbal:       {"Model short full-sentence responses", "Pause longer to leave room for replies"},
	CategoryNonverbal:    {"Practice brief eye contact during greetings", "Mirror facial expressions in front of a mirror"},
	CategorySocial:       {"Start with one familiar conversation partner", "Use greeting scripts before open conversation"},
	CategoryEmotional:    {"Offer a calm-down routine before sessions", "Shorten sessions while comfort builds"},
	CategoryAdaptability: {"Keep a predictable session structure", "Announce changes one step before they happen"},
}

// extractInsights derives natural-behavior highlights, strengths and
// development areas from the category results. A subject can have both
// strengths and development areas at once across different categories.
func extractInsights(scores []CategoryScore) Insights {
	out := Insights{
		Highlights:       []string{},
		Strengths:        []Strength{},
		DevelopmentAreas: []DevelopmentArea{},
	}

	for _, cs := range scores {
		label := categoryLabels[cs.Category]

		if cs.Score >= strengthThreshold {
			out.Strengths = append(out.Strengths, Strength{
				Category:    cs.Category,
				Description: fmt.Sprintf("Consistent strength in %s (score %.0f)", label, cs.Score),
				Evidence:    evidenceExcerpts(cs.Evidence, 2),
				BuildUpon:   buildUponSuggestions[cs.Category],
			})
		}

		if cs.Score < developmentThreshold {
			priority := "medium"
			current := "developing"
			if cs.Score < highPriorityBelow {
				priority = "high"
				current = "emerging"
			}
			out.DevelopmentAreas = append(out.DevelopmentAreas, DevelopmentArea{
				Category:     cs.Category,
				CurrentLevel: current,
				TargetLevel:  nextLevel(current),
				Priority:     priority,
				Suggestions:  developmentSuggestions[cs.Category],
			})
		}

		for _, ev := range cs.Evidence {
			if len(out.Highlights) >= maxHighlights {
				break
			}
			if ev.Strength >= highlightStrength && ev.Context != "placeholder" && ev.Context != "insufficient_data" {
				out.Highlights = append(out.Highlights, ev.Demonstration)
			}
		}
	}

	return out
}

func nextLevel(current string) string {
	if current == "emerging" {
		return "developing"
	}
	return "confident"
}

func evidenceExcerpts(items []EvidenceItem, max int) []string {
	out := make([]string, 0, max)
	for _, ev := range items {
		if len(out) >= max {
			break
		}
		if ev.Context == "placeholder" {
			continue
		}
		out = append(out, ev.Demonstration)
	}
	return out
}
