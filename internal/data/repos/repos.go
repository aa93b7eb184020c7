package repos

import (
	"gorm.io/gorm"

	"github.com/yungbote/chirp-backend/internal/data/repos/session"
	"github.com/yungbote/chirp-backend/internal/pkg/logger"
)

type SessionRepo = session.SessionRepo
type InteractionTurnRepo = session.InteractionTurnRepo
type AnalysisSampleRepo = session.AnalysisSampleRepo
type AdaptationEventRepo = session.AdaptationEventRepo
type AssessmentRecordRepo = session.AssessmentRecordRepo

func NewSessionRepo(db *gorm.DB, log *logger.Logger) SessionRepo {
	return session.NewSessionRepo(db, log)
}
func NewInteractionTurnRepo(db *gorm.DB, log *logger.Logger) InteractionTurnRepo {
	return session.NewInteractionTurnRepo(db, log)
}
func NewAnalysisSampleRepo(db *gorm.DB, log *logger.Logger) AnalysisSampleRepo {
	return session.NewAnalysisSampleRepo(db, log)
}
func NewAdaptationEventRepo(db *gorm.DB, log *logger.Logger) AdaptationEventRepo {
	return session.NewAdaptationEventRepo(db, log)
}
func NewAssessmentRecordRepo(db *gorm.DB, log *logger.Logger) AssessmentRecordRepo {
	return session.NewAssessmentRecordRepo(db, log)
}
