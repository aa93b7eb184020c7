package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AnalysisSample is one time-stamped non-verbal state snapshot from the
// facial/engagement collaborators. Append-only, ordered by Seq.
type AnalysisSample struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	SessionID  uuid.UUID      `gorm:"type:uuid;not null;index:idx_sample_session,priority:1" json:"session_id"`
	Seq        int64          `gorm:"column:seq;not null;index:idx_sample_session,priority:2" json:"seq"`
	ObservedAt time.Time      `gorm:"column:observed_at;not null" json:"observed_at"`
	Payload    datatypes.JSON `gorm:"column:payload" json:"payload,omitempty"`
	CreatedAt  time.Time      `gorm:"not null" json:"created_at"`
}

func (AnalysisSample) TableName() string { return "analysis_sample" }
