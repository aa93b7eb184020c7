package session

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/chirp-backend/internal/domain"
	"github.com/yungbote/chirp-backend/internal/pkg/dbctx"
	"github.com/yungbote/chirp-backend/internal/pkg/logger"
)

type InteractionTurnRepo interface {
	CreateMany(dbc dbctx.Context, rows []*domain.InteractionTurn) error
	ListBySession(dbc dbctx.Context, sessionID uuid.UUID) ([]*domain.InteractionTurn, error)
	CountBySession(dbc dbctx.Context, sessionID uuid.UUID) (int64, error)
	NextSeq(dbc dbctx.Context, sessionID uuid.UUID) (int64, error)
}

type interactionTurnRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewInteractionTurnRepo(db *gorm.DB, baseLog *logger.Logger) InteractionTurnRepo {
	return &interactionTurnRepo{db: db, log: baseLog.With("repo", "InteractionTurnRepo")}
}

func (r *interactionTurnRepo) dbx(dbc dbctx.Context) *gorm.DB {
	if dbc.Tx != nil {
		return dbc.Tx
	}
	return r.db
}

func (r *interactionTurnRepo) CreateMany(dbc dbctx.Context, rows []*domain.InteractionTurn) error {
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

func (r *interactionTurnRepo) ListBySession(dbc dbctx.Context, sessionID uuid.UUID) ([]*domain.InteractionTurn, error) {
	out := []*domain.InteractionTurn{}
	if sessionID == uuid.Nil {
		return out, nil
	}
	if err := r.dbx(dbc).WithContext(dbc.Ctx).
		Where("session_id = ?", sessionID).
		Order("seq ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *interactionTurnRepo) CountBySession(dbc dbctx.Context, sessionID uuid.UUID) (int64, error) {
	var n int64
	if sessionID == uuid.Nil {
		return 0, nil
	}
	err := r.dbx(dbc).WithContext(dbc.Ctx).
		Model(&domain.InteractionTurn{}).
		Where("session_id = ?", sessionID).
		Count(&n).Error
	return n, err
}

func (r *interactionTurnRepo) NextSeq(dbc dbctx.Context, sessionID uuid.UUID) (int64, error) {
	var max *int64
	err := r.dbx(dbc).WithContext(dbc.Ctx).
		Model(&domain.InteractionTurn{}).
		Where("session_id = ?", sessionID).
		Select("MAX(seq)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	if max == nil {
		return 1, nil
	}
	return *max + 1, nil
}
