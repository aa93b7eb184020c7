package session

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/chirp-backend/internal/domain"
	"github.com/yungbote/chirp-backend/internal/pkg/dbctx"
	"github.com/yungbote/chirp-backend/internal/pkg/logger"
)

type AdaptationEventRepo interface {
	CreateMany(dbc dbctx.Context, rows []*domain.AdaptationEvent) error
	ListBySession(dbc dbctx.Context, sessionID uuid.UUID) ([]*domain.AdaptationEvent, error)
}

type adaptationEventRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAdaptationEventRepo(db *gorm.DB, baseLog *logger.Logger) AdaptationEventRepo {
	return &adaptationEventRepo{db: db, log: baseLog.With("repo", "AdaptationEventRepo")}
}

func (r *adaptationEventRepo) dbx(dbc dbctx.Context) *gorm.DB {
	if dbc.Tx != nil {
		return dbc.Tx
	}
	return r.db
}

func (r *adaptationEventRepo) CreateMany(dbc dbctx.Context, rows []*domain.AdaptationEvent) error {
	if len(rows) == 0 {
		return nil
	}
	now := time.Now().UTC()
	for _, row := range rows {
		if row.ID == uuid.Nil {
			row.ID = uuid.New()
		}
		row.CreatedAt = now
	}
	return r.dbx(dbc).WithContext(dbc.Ctx).Create(rows).Error
}

func (r *adaptationEventRepo) ListBySession(dbc dbctx.Context, sessionID uuid.UUID) ([]*domain.AdaptationEvent, error) {
	out := []*domain.AdaptationEvent{}
	if sessionID == uuid.Nil {
		return out, nil
	}
	if err := r.dbx(dbc).WithContext(dbc.Ctx).
		Where("session_id = ?", sessionID).
		Order("occurred_at ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
