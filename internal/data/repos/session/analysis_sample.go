package session

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/chirp-backend/internal/domain"
	"github.com/yungbote/chirp-backend/internal/pkg/dbctx"
	"github.com/yungbote/chirp-backend/internal/pkg/logger"
)

type AnalysisSampleRepo interface {
	CreateMany(dbc dbctx.Context, rows []*domain.AnalysisSample) error
	ListBySession(dbc dbctx.Context, sessionID uuid.UUID) ([]*domain.AnalysisSample, error)
	CountBySession(dbc dbctx.Context, sessionID uuid.UUID) (int64, error)
	NextSeq(dbc dbctx.Context, sessionID uuid.UUID) (int64, error)
}

type analysisSampleRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAnalysisSampleRepo(db *gorm.DB, baseLog *logger.Logger) AnalysisSampleRepo {
	return &analysisSampleRepo{db: db, log: baseLog.With("repo", "AnalysisSampleRepo")}
}

func (r *analysisSampleRepo) dbx(dbc dbctx.Context) *gorm.DB {
	if dbc.Tx != nil {
		return dbc.Tx
	}
	return r.db
}

func (r *analysisSampleRepo) CreateMany(dbc dbctx.Context, rows []*domain.AnalysisSample) error {
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

func (r *analysisSampleRepo) ListBySession(dbc dbctx.Context, sessionID uuid.UUID) ([]*domain.AnalysisSample, error) {
	out := []*domain.AnalysisSample{}
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

func (r *analysisSampleRepo) CountBySession(dbc dbctx.Context, sessionID uuid.UUID) (int64, error) {
	var n int64
	if sessionID == uuid.Nil {
		return 0, nil
	}
	err := r.dbx(dbc).WithContext(dbc.Ctx).
		Model(&domain.AnalysisSample{}).
		Where("session_id = ?", sessionID).
		Count(&n).Error
	return n, err
}

func (r *analysisSampleRepo) NextSeq(dbc dbctx.Context, sessionID uuid.UUID) (int64, error) {
	var max *int64
	err := r.dbx(dbc).WithContext(dbc.Ctx).
		Model(&domain.AnalysisSample{}).
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
