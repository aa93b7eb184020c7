package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Session owns the append-only turn/sample logs for one guided conversation.
// LogVersion increments on every append; cached assessment results are keyed
// by it so a recompute never serves a stale snapshot.
type Session struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	SubjectID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"subject_id"`
	Status     string         `gorm:"column:status;not null" json:"status"`
	LogVersion int64          `gorm:"column:log_version;not null" json:"log_version"`
	StartedAt  time.Time      `gorm:"column:started_at;not null" json:"started_at"`
	EndedAt    *time.Time     `gorm:"column:ended_at" json:"ended_at,omitempty"`
	Metadata   datatypes.JSON `gorm:"column:metadata" json:"metadata,omitempty"`
	CreatedAt  time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Session) TableName() string { return "session" }

const (
	SessionStatusActive   = "active"
	SessionStatusComplete = "complete"
)
