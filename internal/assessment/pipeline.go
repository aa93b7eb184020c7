package assessment

import (
	pkgerrors "github.com/yungbote/chirp-backend/internal/pkg/errors"
)

// Assess runs the full scoring pipeline over one immutable snapshot: category
// scoring, trend analysis, aggregation, tier classification and insight
// extraction. It is a pure function of the snapshot; callers own the result.
func Assess(snap *Snapshot) (*Result, error) {
	if snap == nil || snap.Turns == nil {
		return nil, pkgerrors.ErrInvalidInput
	}

	scores := make([]CategoryScore, 0, len(Categories))
	for _, c := range Categories {
		cs := scoreCategory(c, snap)
		cs.Trend = analyzeTrend(c, snap)
		scores = append(scores, cs)
	}

	overall, confidence := aggregate(scores)
	insights := extractInsights(scores)

	return &Result{
		LogVersion:        snap.Version,
		TurnCount:         len(snap.Turns),
		SampleCount:       len(snap.Samples),
		Categories:        scores,
		OverallScore:      overall,
		OverallConfidence: confidence,
		Tier:              ClassifyTier(overall),
		Insights:          insights,
		Hints:             hintsFrom(insights),
	}, nil
}

// AssessRaw normalizes collaborator payloads and assesses them in one step.
func AssessRaw(in *RawInput) (*Result, error) {
	snap, err := Normalize(in)
	if err != nil {
		return nil, err
	}
	return Assess(snap)
}

func scoreCategory(c Category, snap *Snapshot) CategoryScore {
	if c != CategoryVerbal && insufficientData(c, snap) {
		return neutralCategoryScore(c)
	}
	switch c {
	case CategoryVerbal:
		return scoreVerbal(snap.Turns)
	case CategoryNonverbal:
		return scoreNonverbal(snap.Samples)
	case CategorySocial:
		return scoreSocial(snap.Turns, snap.Samples)
	case CategoryEmotional:
		return scoreEmotional(snap.Samples)
	case CategoryAdaptability:
		return scoreAdaptability(snap)
	}
	return neutralCategoryScore(c)
}

const maxHints = 5

// hintsFrom flattens insight suggestions into the personalized-content hints
// carried on the result, development needs first.
func hintsFrom(in Insights) []string {
	hints := make([]string, 0, maxHints)
	for _, da := range in.DevelopmentAreas {
		for _, s := range da.Suggestions {
			if len(hints) >= maxHints {
				return hints
			}
			hints = append(hints, s)
		}
	}
	for _, st := range in.Strengths {
		for _, s := range st.BuildUpon {
			if len(hints) >= maxHints {
				return hints
			}
			hints = append(hints, s)
		}
	}
	return hints
}
