package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/chirp-backend/internal/pkg/logger"
	"github.com/yungbote/chirp-backend/internal/realtime"
	"github.com/yungbote/chirp-backend/internal/realtime/bus"
	"github.com/yungbote/chirp-backend/internal/services"
)

type Services struct {
	Session    services.SessionService
	Assessment services.AssessmentService
	GameConfig services.GameConfigService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, reposet Repos, hub *realtime.SSEHub, eventBus bus.Bus) Services {
	log.Info("Wiring services...")

	session := services.NewSessionService(
		log, db,
		reposet.Session,
		reposet.InteractionTurn,
		reposet.AnalysisSample,
		reposet.AdaptationEvent,
		hub, eventBus,
	)
	assessment := services.NewAssessmentService(log, session, reposet.AssessmentRecord, hub, eventBus)
	gameConfig := services.NewGameConfigService(log, assessment, hub, eventBus)

	return Services{
		Session:    session,
		Assessment: assessment,
		GameConfig: gameConfig,
	}
}
