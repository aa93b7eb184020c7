package services

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
	"gorm.io/datatypes"

	"github.com/yungbote/chirp-backend/internal/assessment"
	"github.com/yungbote/chirp-backend/internal/data/repos"
	"github.com/yungbote/chirp-backend/internal/domain"
	"github.com/yungbote/chirp-backend/internal/personalization"
	"github.com/yungbote/chirp-backend/internal/pkg/dbctx"
	pkgerrors "github.com/yungbote/chirp-backend/internal/pkg/errors"
	"github.com/yungbote/chirp-backend/internal/pkg/logger"
	"github.com/yungbote/chirp-backend/internal/realtime"
	"github.com/yungbote/chirp-backend/internal/realtime/bus"
)

type AssessmentService interface {
	// Recompute runs the full pipeline against the session's current logs.
	// Concurrent calls for the same session collapse into a single run, and
	// a cached result is returned as long as the log version is unchanged.
	Recompute(dbc dbctx.Context, sessionID uuid.UUID) (*assessment.Result, error)
	// Latest returns the most recently persisted result without recomputing.
	Latest(dbc dbctx.Context, sessionID uuid.UUID) (*assessment.Result, error)
	History(dbc dbctx.Context, sessionID uuid.UUID, limit int) ([]*assessment.Result, error)
	Invalidate(sessionID uuid.UUID)
}

type cachedResult struct {
	version int64
	result  *assessment.Result
}

type assessmentService struct {
	log      *logger.Logger
	sessions SessionService
	records  repos.AssessmentRecordRepo
	hub      *realtime.SSEHub
	bus      bus.Bus

	group singleflight.Group

	mu    sync.RWMutex
	cache map[uuid.UUID]cachedResult
}

func NewAssessmentService(
	log *logger.Logger,
	sessions SessionService,
	records repos.AssessmentRecordRepo,
	hub *realtime.SSEHub,
	eventBus bus.Bus,
) AssessmentService {
	svc := &assessmentService{
		log:      log.With("service", "AssessmentService"),
		sessions: sessions,
		records:  records,
		hub:      hub,
		bus:      eventBus,
		cache:    make(map[uuid.UUID]cachedResult),
	}
	sessions.OnAppend(svc.Invalidate)
	return svc
}

func (s *assessmentService) Recompute(dbc dbctx.Context, sessionID uuid.UUID) (*assessment.Result, error) {
	if sessionID == uuid.Nil {
		return nil, pkgerrors.ErrInvalidInput
	}

	v, err, _ := s.group.Do(sessionID.String(), func() (any, error) {
		return s.recompute(dbc, sessionID)
	})
	if err != nil {
		return nil, err
	}
	return v.(*assessment.Result), nil
}

func (s *assessmentService) recompute(dbc dbctx.Context, sessionID uuid.UUID) (*assessment.Result, error) {
	snap, err := s.sessions.Snapshot(dbc, sessionID)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	hit, ok := s.cache[sessionID]
	s.mu.RUnlock()
	if ok && hit.version == snap.Version {
		return hit.result, nil
	}

	res, err := assessment.AssessRaw(snap)
	if err != nil {
		return nil, err
	}
	res.LogVersion = snap.Version
	res.SuggestedModules = personalization.SuggestedModules(res)

	if err := s.persist(dbc, sessionID, res); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.cache[sessionID] = cachedResult{version: snap.Version, result: res}
	s.mu.Unlock()

	s.publish(dbc, sessionID, res)
	s.log.Info("assessment recomputed",
		"session_id", sessionID,
		"log_version", res.LogVersion,
		"overall", res.OverallScore,
		"tier", res.Tier)
	return res, nil
}

func (s *assessmentService) Latest(dbc dbctx.Context, sessionID uuid.UUID) (*assessment.Result, error) {
	row, err := s.records.LatestBySession(dbc, sessionID)
	if err != nil {
		return nil, err
	}
	return decodeRecord(row)
}

func (s *assessmentService) History(dbc dbctx.Context, sessionID uuid.UUID, limit int) ([]*assessment.Result, error) {
	rows, err := s.records.ListBySession(dbc, sessionID, limit)
	if err != nil {
		return nil, err
	}
	out := make([]*assessment.Result, 0, len(rows))
	for _, row := range rows {
		res, err := decodeRecord(row)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, nil
}

func (s *assessmentService) Invalidate(sessionID uuid.UUID) {
	s.mu.Lock()
	delete(s.cache, sessionID)
	s.mu.Unlock()
}

func (s *assessmentService) persist(dbc dbctx.Context, sessionID uuid.UUID, res *assessment.Result) error {
	raw, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("marshal assessment result: %w", err)
	}
	return s.records.Create(dbc, &domain.AssessmentRecord{
		SessionID:  sessionID,
		LogVersion: res.LogVersion,
		Overall:    res.OverallScore,
		Confidence: res.OverallConfidence,
		Tier:       string(res.Tier),
		Result:     datatypes.JSON(raw),
	})
}

func (s *assessmentService) publish(dbc dbctx.Context, sessionID uuid.UUID, res *assessment.Result) {
	msg := realtime.SSEMessage{
		Channel: sessionID.String(),
		Event:   realtime.SSEEventAssessmentUpdated,
		Data: map[string]any{
			"session_id":  sessionID.String(),
			"log_version": res.LogVersion,
			"overall":     res.OverallScore,
			"tier":        res.Tier,
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
}

func decodeRecord(row *domain.AssessmentRecord) (*assessment.Result, error) {
	var res assessment.Result
	if err := json.Unmarshal(row.Result, &res); err != nil {
		return nil, fmt.Errorf("decode assessment record %s: %w", row.ID, err)
	}
	return &res, nil
}
