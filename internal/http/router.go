package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/chirp-backend/internal/http/handlers"
	httpMW "github.com/yungbote/chirp-backend/internal/http/middleware"
	"github.com/yungbote/chirp-backend/internal/pkg/logger"
)

type RouterConfig struct {
	Log         *logger.Logger
	ServiceName string

	HealthHandler     *httpH.HealthHandler
	SessionHandler    *httpH.SessionHandler
	AssessmentHandler *httpH.AssessmentHandler
	GameConfigHandler *httpH.GameConfigHandler
	RealtimeHandler   *httpH.RealtimeHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.ServiceName != "" {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.CORS())
	r.Use(httpMW.RequestLogger(cfg.Log))

	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")
	{
		if cfg.SessionHandler != nil {
			api.POST("/sessions", cfg.SessionHandler.Create)
			api.GET("/sessions/:sessionID", cfg.SessionHandler.Get)
			api.POST("/sessions/:sessionID/complete", cfg.SessionHandler.Complete)
			api.POST("/sessions/:sessionID/turns", cfg.SessionHandler.AppendTurns)
			api.POST("/sessions/:sessionID/samples", cfg.SessionHandler.AppendSamples)
			api.POST("/sessions/:sessionID/adaptations", cfg.SessionHandler.AppendAdaptations)
		}

		if cfg.AssessmentHandler != nil {
			api.GET("/sessions/:sessionID/assessment", cfg.AssessmentHandler.Latest)
			api.POST("/sessions/:sessionID/assessment/recompute", cfg.AssessmentHandler.Recompute)
			api.GET("/sessions/:sessionID/assessment/history", cfg.AssessmentHandler.History)
		}

		if cfg.GameConfigHandler != nil {
			api.GET("/sessions/:sessionID/game-config", cfg.GameConfigHandler.Get)
			api.POST("/sessions/:sessionID/game-config/refresh", cfg.GameConfigHandler.Refresh)
		}

		if cfg.RealtimeHandler != nil {
			api.GET("/sessions/:sessionID/stream", cfg.RealtimeHandler.Stream)
		}
	}

	return r
}
