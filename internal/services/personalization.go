package services

import (
	"errors"

	"github.com/google/uuid"

	"github.com/yungbote/chirp-backend/internal/personalization"
	"github.com/yungbote/chirp-backend/internal/pkg/dbctx"
	pkgerrors "github.com/yungbote/chirp-backend/internal/pkg/errors"
	"github.com/yungbote/chirp-backend/internal/pkg/logger"
	"github.com/yungbote/chirp-backend/internal/realtime"
	"github.com/yungbote/chirp-backend/internal/realtime/bus"
)

type GameConfigService interface {
	// Configuration derives the game configuration from the session's latest
	// assessment. A session with no assessment yet gets the default config.
	Configuration(dbc dbctx.Context, sessionID uuid.UUID) (personalization.GameConfiguration, error)
	// Refresh recomputes the assessment first, then derives the configuration
	// and announces the update to subscribers.
	Refresh(dbc dbctx.Context, sessionID uuid.UUID) (personalization.GameConfiguration, error)
}

type gameConfigService struct {
	log         *logger.Logger
	assessments AssessmentService
	hub         *realtime.SSEHub
	bus         bus.Bus
}

func NewGameConfigService(
	log *logger.Logger,
	assessments AssessmentService,
	hub *realtime.SSEHub,
	eventBus bus.Bus,
) GameConfigService {
	return &gameConfigService{
		log:         log.With("service", "GameConfigService"),
		assessments: assessments,
		hub:         hub,
		bus:         eventBus,
	}
}

func (s *gameConfigService) Configuration(dbc dbctx.Context, sessionID uuid.UUID) (personalization.GameConfiguration, error) {
	if sessionID == uuid.Nil {
		return personalization.GameConfiguration{}, pkgerrors.ErrInvalidInput
	}
	res, err := s.assessments.Latest(dbc, sessionID)
	if err != nil {
		if errors.Is(err, pkgerrors.ErrNotFound) {
			return personalization.Default(), nil
		}
		return personalization.GameConfiguration{}, err
	}
	return personalization.Plan(res), nil
}

func (s *gameConfigService) Refresh(dbc dbctx.Context, sessionID uuid.UUID) (personalization.GameConfiguration, error) {
	res, err := s.assessments.Recompute(dbc, sessionID)
	if err != nil {
		return personalization.GameConfiguration{}, err
	}
	cfg := personalization.Plan(res)

	msg := realtime.SSEMessage{
		Channel: sessionID.String(),
		Event:   realtime.SSEEventConfigurationUpdated,
		Data: map[string]any{
			"session_id": sessionID.String(),
			"tier":       cfg.Tier,
		},
	}
	if s.hub != nil {
		s.hub.Broadcast(msg)
	}
	if s.bus != nil {
		if err := s.bus.Publish(dbc.Ctx, msg); err != nil {
			s.log.Warn("bus publish failed", "error", err)
		}
	}
	return cfg, nil
}
