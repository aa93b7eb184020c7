package personalization

import "github.com/yungbote/chirp-backend/internal/assessment"

// Content module identifiers. The catalogue is fixed; the planner only
// decides which entries unlock.
const (
	ModuleFreePlay           = "free_play"
	ModuleGuidedConversation = "guided_conversation"
	ModulePicturePrompts     = "picture_prompts"
	ModuleStoryTime          = "story_time"
	ModuleEmotionCards       = "emotion_cards"
	ModuleRolePlay           = "role_play"
	ModuleOpenTopics         = "open_topics"

	ModuleWordBuilder      = "word_builder"
	ModuleSoundPractice    = "sound_practice"
	ModuleExpressionMatch  = "expression_match"
	ModuleLookAndListen    = "look_and_listen"
	ModuleTurnTakingGames  = "turn_taking_games"
	ModuleGreetingBasics   = "greeting_basics"
	ModuleFeelingsJournal  = "feelings_journal"
	ModuleCalmCorner       = "calm_corner"
	ModuleSurpriseScenario = "surprise_scenarios"
	ModuleRoutineBuilder   = "routine_builder"
)

var baseModules = []string{ModuleFreePlay, ModuleGuidedConversation}

// Tier additions are monotone: each tier unlocks a superset of the one below.
var tierModules = map[assessment.Tier][]string{
	assessment.TierBeginner:     {ModulePicturePrompts},
	assessment.TierIntermediate: {ModulePicturePrompts, ModuleStoryTime, ModuleEmotionCards},
	assessment.TierAdvanced:     {ModulePicturePrompts, ModuleStoryTime, ModuleEmotionCards, ModuleRolePlay, ModuleOpenTopics},
}

const (
	enrichmentThreshold  = 70.0
	remediationThreshold = 50.0
)

var enrichmentModules = map[assessment.Category][]string{
	assessment.CategoryVerbal:       {ModuleWordBuilder},
	assessment.CategoryNonverbal:    {ModuleExpressionMatch},
	assessment.CategorySocial:       {ModuleTurnTakingGames},
	assessment.CategoryEmotional:    {ModuleFeelingsJournal},
	assessment.CategoryAdaptability: {ModuleSurpriseScenario},
}

var remediationModules = map[assessment.Category][]string{
	assessment.CategoryVerbal:       {ModuleSoundPractice},
	assessment.CategoryNonverbal:    {ModuleLookAndListen},
	assessment.CategorySocial:       {ModuleGreetingBasics},
	assessment.CategoryEmotional:    {ModuleCalmCorner},
	assessment.CategoryAdaptability: {ModuleRoutineBuilder},
}

// scenarioRule gates one catalogue scenario. Rules are evaluated in
// declaration order; that order is part of the output contract.
type scenarioRule struct {
	id           string
	name         string
	gateCategory assessment.Category
	minScore     float64
	minTier      assessment.Tier
	orTier       assessment.Tier // unlocks when tier alone reaches this
	always       bool
}

var scenarioCatalog = []scenarioRule{
	{id: "home", name: "At Home", gateCategory: assessment.CategorySocial, always: true},
	{id: "school", name: "At School", gateCategory: assessment.CategorySocial, minScore: 40},
	{id: "restaurant", name: "At a Restaurant", gateCategory: assessment.CategoryVerbal, minScore: 50},
	{id: "playground", name: "At the Playground", gateCategory: assessment.CategorySocial, minScore: 50, orTier: assessment.TierIntermediate},
	{id: "store", name: "At the Store", gateCategory: assessment.CategoryVerbal, minScore: 60, minTier: assessment.TierIntermediate},
	{id: "doctor", name: "At the Doctor", gateCategory: assessment.CategoryEmotional, minScore: 60, minTier: assessment.TierAdvanced},
}

func (r scenarioRule) unlocked(tier assessment.Tier, scoreOf func(assessment.Category) float64) bool {
	if r.always {
		return true
	}
	if r.orTier != "" && assessment.TierAtLeast(tier, r.orTier) {
		return true
	}
	if r.minTier != "" && !assessment.TierAtLeast(tier, r.minTier) {
		return false
	}
	return scoreOf(r.gateCategory) >= r.minScore
}
