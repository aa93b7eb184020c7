package app

import (
	"github.com/yungbote/chirp-backend/internal/http"
	httpH "github.com/yungbote/chirp-backend/internal/http/handlers"
	"github.com/yungbote/chirp-backend/internal/pkg/logger"
	"github.com/yungbote/chirp-backend/internal/realtime"
)

type Handlers struct {
	Health     *httpH.HealthHandler
	Session    *httpH.SessionHandler
	Assessment *httpH.AssessmentHandler
	GameConfig *httpH.GameConfigHandler
	Realtime   *httpH.RealtimeHandler
}

func wireHandlers(log *logger.Logger, services Services, hub *realtime.SSEHub) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:     httpH.NewHealthHandler(),
		Session:    httpH.NewSessionHandler(services.Session),
		Assessment: httpH.NewAssessmentHandler(services.Assessment),
		GameConfig: httpH.NewGameConfigHandler(services.GameConfig),
		Realtime:   httpH.NewRealtimeHandler(log, hub),
	}
}

func wireServer(log *logger.Logger, cfg Config, handlers Handlers) *http.Server {
	return http.NewServer(http.RouterConfig{
		Log:               log,
		ServiceName:       cfg.ServiceName,
		HealthHandler:     handlers.Health,
		SessionHandler:    handlers.Session,
		AssessmentHandler: handlers.Assessment,
		GameConfigHandler: handlers.GameConfig,
		RealtimeHandler:   handlers.Realtime,
	})
}
