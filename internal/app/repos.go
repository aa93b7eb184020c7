package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/chirp-backend/internal/data/repos"
	"github.com/yungbote/chirp-backend/internal/pkg/logger"
)

type Repos struct {
	Session          repos.SessionRepo
	InteractionTurn  repos.InteractionTurnRepo
	AnalysisSample   repos.AnalysisSampleRepo
	AdaptationEvent  repos.AdaptationEventRepo
	AssessmentRecord repos.AssessmentRecordRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Session:          repos.NewSessionRepo(db, log),
		InteractionTurn:  repos.NewInteractionTurnRepo(db, log),
		AnalysisSample:   repos.NewAnalysisSampleRepo(db, log),
		AdaptationEvent:  repos.NewAdaptationEventRepo(db, log),
		AssessmentRecord: repos.NewAssessmentRecordRepo(db, log),
	}
}
