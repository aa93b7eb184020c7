package assessment

import (
	"fmt"
	"strings"
	"time"
)

const (
	weightVerbalClarity     = 0.30
	weightVerbalAppropriate = 0.25
	weightVerbalVocabulary  = 0.25
	weightVerbalInitiation  = 0.20
)

// tokenLengthCeiling normalizes average token length: eight characters maps
// to the top of the vocabulary-complexity scale for this age range.
const tokenLengthCeiling = 8.0

var connectiveWords = map[string]bool{
	"and": true, "but": true, "because": true, "so": true,
	"then": true, "also": true, "after": true, "before": true,
}

var interrogativeOpeners = map[string]bool{
	"what": true, "why": true, "how": true, "who": true,
	"where": true, "when": true, "can": true, "do": true, "is": true,
}

// scoreVerbal blends speech clarity, response appropriateness, vocabulary
// complexity and conversation initiation over the subject's turns. A session
// with zero subject turns scores 0/0 with no evidence; this is the only
// category with an all-zero empty case.
func scoreVerbal(turns []Turn) CategoryScore {
	subject := subjectTurns(turns)
	if len(subject) == 0 {
		return CategoryScore{
			Category:   CategoryVerbal,
			Score:      0,
			Confidence: 0,
			Evidence:   []EvidenceItem{},
			Trend:      TrendStable,
			Comparison: ComparisonBelowTypical,
		}
	}

	clarity := meanClarity(subject)
	appropriate := appropriateResponseRatio(subject)
	vocabulary := vocabularyComplexity(subject)
	initiation := initiationRatio(subject)

	score := clampScore(clarity*weightVerbalClarity +
		appropriate*weightVerbalAppropriate +
		vocabulary*weightVerbalVocabulary +
		initiation*weightVerbalInitiation)

	last := subject[len(subject)-1].Timestamp

	return CategoryScore{
		Category:   CategoryVerbal,
		Score:      score,
		Confidence: confidenceFor(CategoryVerbal, len(subject)),
		Evidence: []EvidenceItem{
			evidence("speech_clarity", fmt.Sprintf("Average speech clarity of %.0f across %d turns", clarity, len(subject)), clarity, "conversation", last),
			evidence("appropriate_responses", fmt.Sprintf("%.0f%% of responses were on-topic and reciprocal", appropriate), appropriate, "conversation", last),
			evidence("vocabulary_range", fmt.Sprintf("Vocabulary complexity measured at %.0f", vocabulary), vocabulary, "conversation", last),
			evidence("conversation_initiation", fmt.Sprintf("Initiated or extended the conversation in %.0f%% of turns", initiation), initiation, "conversation", last),
		},
		Trend:      TrendStable,
		Comparison: comparisonFor(score),
	}
}

func meanClarity(subject []Turn) float64 {
	vals := make([]float64, 0, len(subject))
	for _, t := range subject {
		if t.Clarity != nil {
			vals = append(vals, *t.Clarity)
		}
	}
	if len(vals) == 0 {
		return defaultClarity
	}
	return mean(vals)
}

func appropriateResponseRatio(subject []Turn) float64 {
	hits := 0
	for _, t := range subject {
		if len(tokenize(t.Content)) >= 3 && t.Reciprocal != nil && *t.Reciprocal {
			hits++
		}
	}
	return 100 * float64(hits) / float64(len(subject))
}

func vocabularyComplexity(subject []Turn) float64 {
	var tokens []string
	for _, t := range subject {
		tokens = append(tokens, tokenize(t.Content)...)
	}
	if len(tokens) == 0 {
		return 0
	}
	totalLen := 0
	unique := map[string]bool{}
	for _, tok := range tokens {
		totalLen += len(tok)
		unique[strings.ToLower(tok)] = true
	}
	avgLen := float64(totalLen) / float64(len(tokens))
	lengthNorm := avgLen / tokenLengthCeiling
	if lengthNorm > 1 {
		lengthNorm = 1
	}
	typeToken := float64(len(unique)) / float64(len(tokens))
	return 100 * (0.5*lengthNorm + 0.5*typeToken)
}

func initiationRatio(subject []Turn) float64 {
	hits := 0
	for _, t := range subject {
		if initiatesConversation(t.Content) {
			hits++
		}
	}
	return 100 * float64(hits) / float64(len(subject))
}

func initiatesConversation(content string) bool {
	if strings.Contains(content, "?") {
		return true
	}
	tokens := tokenize(content)
	if len(tokens) > 5 {
		return true
	}
	for _, tok := range tokens {
		if connectiveWords[strings.ToLower(tok)] {
			return true
		}
	}
	return false
}

func tokenize(content string) []string {
	return strings.FieldsFunc(content, func(r rune) bool {
		switch r {
		case ' ', '\t', '\n', '.', ',', '!', '?', ';', ':':
			return true
		}
		return false
	})
}

func evidence(skill, demonstration string, strength float64, context string, ts time.Time) EvidenceItem {
	return EvidenceItem{
		Skill:         skill,
		Demonstration: demonstration,
		Strength:      clampScore(strength),
		Context:       context,
		Timestamp:     ts,
	}
}
