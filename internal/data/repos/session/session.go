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

type SessionRepo interface {
	Create(dbc dbctx.Context, row *domain.Session) error
	GetByID(dbc dbctx.Context, id uuid.UUID) (*domain.Session, error)
	BumpLogVersion(dbc dbctx.Context, id uuid.UUID) (int64, error)
	SetStatus(dbc dbctx.Context, id uuid.UUID, status string, endedAt *time.Time) error
}

type sessionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSessionRepo(db *gorm.DB, baseLog *logger.Logger) SessionRepo {
	return &sessionRepo{db: db, log: baseLog.With("repo", "SessionRepo")}
}

func (r *sessionRepo) dbx(dbc dbctx.Context) *gorm.DB {
	if dbc.Tx != nil {
		return dbc.Tx
	}
	return r.db
}

func (r *sessionRepo) Create(dbc dbctx.Context, row *domain.Session) error {
	if row == nil {
		return nil
	}
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}
	now := time.Now().UTC()
	if row.StartedAt.IsZero() {
		row.StartedAt = now
	}
	if row.Status == "" {
		row.Status = domain.SessionStatusActive
	}
	row.CreatedAt = now
	row.UpdatedAt = now
	return r.dbx(dbc).WithContext(dbc.Ctx).Create(row).Error
}

func (r *sessionRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*domain.Session, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.ErrNotFound
	}
	var row domain.Session
	err := r.dbx(dbc).WithContext(dbc.Ctx).Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// BumpLogVersion atomically increments the session's log version and returns
// the new value. Every append goes through this so snapshot staleness is
// always detectable.
func (r *sessionRepo) BumpLogVersion(dbc dbctx.Context, id uuid.UUID) (int64, error) {
	if id == uuid.Nil {
		return 0, pkgerrors.ErrNotFound
	}
	tx := r.dbx(dbc).WithContext(dbc.Ctx).
		Model(&domain.Session{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"log_version": gorm.Expr("log_version + 1"),
			"updated_at":  time.Now().UTC(),
		})
	if tx.Error != nil {
		return 0, tx.Error
	}
	if tx.RowsAffected == 0 {
		return 0, pkgerrors.ErrNotFound
	}
	row, err := r.GetByID(dbc, id)
	if err != nil {
		return 0, err
	}
	return row.LogVersion, nil
}

func (r *sessionRepo) SetStatus(dbc dbctx.Context, id uuid.UUID, status string, endedAt *time.Time) error {
	if id == uuid.Nil {
		return pkgerrors.ErrNotFound
	}
	updates := map[string]any{
		"status":     status,
		"updated_at": time.Now().UTC(),
	}
	if endedAt != nil {
		updates["ended_at"] = *endedAt
	}
	return r.dbx(dbc).WithContext(dbc.Ctx).
		Model(&domain.Session{}).
		Where("id = ?", id).
		Updates(updates).Error
}
