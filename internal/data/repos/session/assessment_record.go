package session

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/chirp-backend/internal/domain"
	"github.com/yungbote/chirp-backend/internal/pkg/dbctx"
	pkgerrors "github.com/yungbote/chirp-backend/internal/pkg/errors"
	"github.com/yungbote/chirp-backend/internal/pkg/logger"
)

type AssessmentRecordRepo interface {
	Create(dbc dbctx.Context, row *domain.AssessmentRecord) error
	LatestBySession(dbc dbctx.Context, sessionID uuid.UUID) (*domain.AssessmentRecord, error)
	ListBySession(dbc dbctx.Context, sessionID uuid.UUID, limit int) ([]*domain.AssessmentRecord, error)
}

type assessmentRecordRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAssessmentRecordRepo(db *gorm.DB, baseLog *logger.Logger) AssessmentRecordRepo {
	return &assessmentRecordRepo{db: db, log: baseLog.With("repo", "AssessmentRecordRepo")}
}

func (r *assessmentRecordRepo) dbx(dbc dbctx.Context) *gorm.DB {
	if dbc.Tx != nil {
		return dbc.Tx
	}
	return r.db
}

func (r *assessmentRecordRepo) Create(dbc dbctx.Context, row *domain.AssessmentRecord) error {
	if row == nil || row.SessionID == uuid.Nil {
		return nil
	}
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}
	row.CreatedAt = time.Now().UTC()
	return r.dbx(dbc).WithContext(dbc.Ctx).Create(row).Error
}

func (r *assessmentRecordRepo) LatestBySession(dbc dbctx.Context, sessionID uuid.UUID) (*domain.AssessmentRecord, error) {
	if sessionID == uuid.Nil {
		return nil, pkgerrors.ErrNotFound
	}
	var row domain.AssessmentRecord
	err := r.dbx(dbc).WithContext(dbc.Ctx).
		Where("session_id = ?", sessionID).
		Order("log_version DESC, created_at DESC").
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *assessmentRecordRepo) ListBySession(dbc dbctx.Context, sessionID uuid.UUID, limit int) ([]*domain.AssessmentRecord, error) {
	out := []*domain.AssessmentRecord{}
	if sessionID == uuid.Nil {
		return out, nil
	}
	q := r.dbx(dbc).WithContext(dbc.Ctx).
		Where("session_id = ?", sessionID).
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
