package services

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/yungbote/chirp-backend/internal/assessment"
	"github.com/yungbote/chirp-backend/internal/data/repos"
	"github.com/yungbote/chirp-backend/internal/domain"
	"github.com/yungbote/chirp-backend/internal/pkg/dbctx"
	pkgerrors "github.com/yungbote/chirp-backend/internal/pkg/errors"
	"github.com/yungbote/chirp-backend/internal/pkg/logger"
	"github.com/yungbote/chirp-backend/internal/realtime"
	"github.com/yungbote/chirp-backend/internal/realtime/bus"
)

type TurnInput struct {
	Speaker   string                      `json:"speaker"`
	Content   string                      `json:"content"`
	Timestamp time.Time                   `json:"timestamp"`
	Analysis  []assessment.AnalysisBundle `json:"analysis,omitempty"`
}

type SampleInput struct {
	Timestamp time.Time                   `json:"timestamp"`
	Analysis  []assessment.AnalysisBundle `json:"analysis,omitempty"`
}

type AdaptationInput struct {
	Trigger   string    `json:"trigger"`
	Effect    string    `json:"effect"`
	Timestamp time.Time `json:"timestamp"`
}

type SessionService interface {
	Create(dbc dbctx.Context, subjectID uuid.UUID) (*domain.Session, error)
	Get(dbc dbctx.Context, id uuid.UUID) (*domain.Session, error)
	Complete(dbc dbctx.Context, id uuid.UUID) error
	AppendTurns(dbc dbctx.Context, sessionID uuid.UUID, turns []TurnInput) (int, error)
	AppendSamples(dbc dbctx.Context, sessionID uuid.UUID, samples []SampleInput) (int, error)
	AppendAdaptations(dbc dbctx.Context, sessionID uuid.UUID, events []AdaptationInput) (int, error)
	Snapshot(dbc dbctx.Context, sessionID uuid.UUID) (*assessment.RawInput, error)
	OnAppend(hook func(sessionID uuid.UUID))
}

type sessionService struct {
	log         *logger.Logger
	db          *gorm.DB
	sessions    repos.SessionRepo
	turns       repos.InteractionTurnRepo
	samples     repos.AnalysisSampleRepo
	adaptations repos.AdaptationEventRepo
	hub         *realtime.SSEHub
	bus         bus.Bus

	onAppend func(sessionID uuid.UUID)
}

func NewSessionService(
	log *logger.Logger,
	db *gorm.DB,
	sessions repos.SessionRepo,
	turns repos.InteractionTurnRepo,
	samples repos.AnalysisSampleRepo,
	adaptations repos.AdaptationEventRepo,
	hub *realtime.SSEHub,
	eventBus bus.Bus,
) SessionService {
	return &sessionService{
		log:         log.With("service", "SessionService"),
		db:          db,
		sessions:    sessions,
		turns:       turns,
		samples:     samples,
		adaptations: adaptations,
		hub:         hub,
		bus:         eventBus,
	}
}

// OnAppend registers the cache-invalidation hook. The assessment service
// hangs its per-session cache off this so new input always invalidates.
func (s *sessionService) OnAppend(hook func(sessionID uuid.UUID)) {
	s.onAppend = hook
}

func (s *sessionService) Create(dbc dbctx.Context, subjectID uuid.UUID) (*domain.Session, error) {
	if subjectID == uuid.Nil {
		return nil, pkgerrors.ErrInvalidInput
	}
	row := &domain.Session{
		SubjectID: subjectID,
		Status:    domain.SessionStatusActive,
		Metadata:  datatypes.JSON([]byte("{}")),
	}
	if err := s.sessions.Create(dbc, row); err != nil {
		return nil, err
	}
	s.log.Info("session created", "session_id", row.ID)
	return row, nil
}

func (s *sessionService) Get(dbc dbctx.Context, id uuid.UUID) (*domain.Session, error) {
	return s.sessions.GetByID(dbc, id)
}

func (s *sessionService) Complete(dbc dbctx.Context, id uuid.UUID) error {
	now := time.Now().UTC()
	if err := s.sessions.SetStatus(dbc, id, domain.SessionStatusComplete, &now); err != nil {
		return err
	}

	msg := realtime.SSEMessage{
		Channel: id.String(),
		Event:   realtime.SSEEventSessionCompleted,
		Data:    map[string]any{"session_id": id.String(), "ended_at": now},
	}
	if s.hub != nil {
		s.hub.Broadcast(msg)
	}
	if s.bus != nil {
		if err := s.bus.Publish(dbc.Ctx, msg); err != nil {
			s.log.Warn("bus publish failed", "error", err)
		}
	}
	s.log.Info("session completed", "session_id", id)
	return nil
}

func (s *sessionService) AppendTurns(dbc dbctx.Context, sessionID uuid.UUID, turns []TurnInput) (int, error) {
	if sessionID == uuid.Nil {
		return 0, pkgerrors.ErrInvalidInput
	}
	if len(turns) == 0 {
		return 0, nil
	}

	err := s.inTx(dbc, func(txc dbctx.Context) error {
		if _, err := s.sessions.BumpLogVersion(txc, sessionID); err != nil {
			return err
		}
		seq, err := s.turns.NextSeq(txc, sessionID)
		if err != nil {
			return err
		}
		rows := make([]*domain.InteractionTurn, 0, len(turns))
		for i, t := range turns {
			spokenAt := t.Timestamp
			if spokenAt.IsZero() {
				spokenAt = time.Now().UTC()
			}
			rows = append(rows, &domain.InteractionTurn{
				SessionID: sessionID,
				Seq:       seq + int64(i),
				Speaker:   t.Speaker,
				Content:   t.Content,
				SpokenAt:  spokenAt,
				Analysis:  marshalBundles(t.Analysis),
			})
		}
		return s.turns.CreateMany(txc, rows)
	})
	if err != nil {
		return 0, err
	}

	s.notifyAppend(sessionID)
	return len(turns), nil
}

func (s *sessionService) AppendSamples(dbc dbctx.Context, sessionID uuid.UUID, samples []SampleInput) (int, error) {
	if sessionID == uuid.Nil {
		return 0, pkgerrors.ErrInvalidInput
	}
	if len(samples) == 0 {
		return 0, nil
	}

	err := s.inTx(dbc, func(txc dbctx.Context) error {
		if _, err := s.sessions.BumpLogVersion(txc, sessionID); err != nil {
			return err
		}
		seq, err := s.samples.NextSeq(txc, sessionID)
		if err != nil {
			return err
		}
		rows := make([]*domain.AnalysisSample, 0, len(samples))
		for i, smp := range samples {
			observedAt := smp.Timestamp
			if observedAt.IsZero() {
				observedAt = time.Now().UTC()
			}
			rows = append(rows, &domain.AnalysisSample{
				SessionID:  sessionID,
				Seq:        seq + int64(i),
				ObservedAt: observedAt,
				Payload:    marshalBundles(smp.Analysis),
			})
		}
		return s.samples.CreateMany(txc, rows)
	})
	if err != nil {
		return 0, err
	}

	s.notifyAppend(sessionID)
	return len(samples), nil
}

func (s *sessionService) AppendAdaptations(dbc dbctx.Context, sessionID uuid.UUID, events []AdaptationInput) (int, error) {
	if sessionID == uuid.Nil {
		return 0, pkgerrors.ErrInvalidInput
	}
	if len(events) == 0 {
		return 0, nil
	}

	err := s.inTx(dbc, func(txc dbctx.Context) error {
		if _, err := s.sessions.BumpLogVersion(txc, sessionID); err != nil {
			return err
		}
		rows := make([]*domain.AdaptationEvent, 0, len(events))
		for _, e := range events {
			occurredAt := e.Timestamp
			if occurredAt.IsZero() {
				occurredAt = time.Now().UTC()
			}
			rows = append(rows, &domain.AdaptationEvent{
				SessionID:  sessionID,
				Trigger:    e.Trigger,
				Effect:     e.Effect,
				OccurredAt: occurredAt,
			})
		}
		return s.adaptations.CreateMany(txc, rows)
	})
	if err != nil {
		return 0, err
	}

	s.notifyAppend(sessionID)
	return len(events), nil
}

// Snapshot returns a consistent copy of the session's logs. Everything is
// read inside one transaction so a concurrent append can never produce a
// half-visible batch.
func (s *sessionService) Snapshot(dbc dbctx.Context, sessionID uuid.UUID) (*assessment.RawInput, error) {
	if sessionID == uuid.Nil {
		return nil, pkgerrors.ErrInvalidInput
	}

	var snap *assessment.RawInput
	err := s.inTx(dbc, func(txc dbctx.Context) error {
		sess, err := s.sessions.GetByID(txc, sessionID)
		if err != nil {
			return err
		}
		turnRows, err := s.turns.ListBySession(txc, sessionID)
		if err != nil {
			return err
		}
		sampleRows, err := s.samples.ListBySession(txc, sessionID)
		if err != nil {
			return err
		}
		eventRows, err := s.adaptations.ListBySession(txc, sessionID)
		if err != nil {
			return err
		}

		end := time.Now().UTC()
		if sess.EndedAt != nil {
			end = *sess.EndedAt
		}

		snap = &assessment.RawInput{
			Version: sess.LogVersion,
			Turns:   make([]assessment.RawTurn, 0, len(turnRows)),
			Samples: make([]assessment.RawSample, 0, len(sampleRows)),
			Metrics: assessment.SessionMetrics{
				StartedAt:   sess.StartedAt,
				Duration:    end.Sub(sess.StartedAt),
				TurnCount:   len(turnRows),
				SampleCount: len(sampleRows),
			},
		}
		for _, row := range turnRows {
			snap.Turns = append(snap.Turns, assessment.RawTurn{
				Speaker:   row.Speaker,
				Content:   row.Content,
				Timestamp: row.SpokenAt,
				Analysis:  unmarshalBundles(row.Analysis),
			})
		}
		for _, row := range sampleRows {
			snap.Samples = append(snap.Samples, assessment.RawSample{
				Timestamp: row.ObservedAt,
				Analysis:  unmarshalBundles(row.Payload),
			})
		}
		for _, row := range eventRows {
			snap.Adaptations = append(snap.Adaptations, assessment.RawAdaptationEvent{
				Trigger:   row.Trigger,
				Effect:    row.Effect,
				Timestamp: row.OccurredAt,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return snap, nil
}

func (s *sessionService) inTx(dbc dbctx.Context, fn func(txc dbctx.Context) error) error {
	if dbc.Tx != nil {
		return fn(dbc)
	}
	return s.db.WithContext(dbc.Ctx).Transaction(func(tx *gorm.DB) error {
		return fn(dbctx.Context{Ctx: dbc.Ctx, Tx: tx})
	})
}

func (s *sessionService) notifyAppend(sessionID uuid.UUID) {
	if s.onAppend != nil {
		s.onAppend(sessionID)
	}
}

func marshalBundles(bundles []assessment.AnalysisBundle) datatypes.JSON {
	if len(bundles) == 0 {
		return datatypes.JSON([]byte("[]"))
	}
	raw, err := json.Marshal(bundles)
	if err != nil {
		return datatypes.JSON([]byte("[]"))
	}
	return datatypes.JSON(raw)
}

func unmarshalBundles(raw datatypes.JSON) []assessment.AnalysisBundle {
	if len(raw) == 0 {
		return nil
	}
	var out []assessment.AnalysisBundle
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return out
}
