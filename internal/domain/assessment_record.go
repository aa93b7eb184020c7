package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AssessmentRecord is one persisted assessment pass. Result holds the full
// serialized AssessmentResult; the scalar columns exist for querying.
// LogVersion states which snapshot of the session logs produced it.
type AssessmentRecord struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	SessionID  uuid.UUID      `gorm:"type:uuid;not null;index:idx_assessment_session,priority:1" json:"session_id"`
	LogVersion int64          `gorm:"column:log_version;not null;index:idx_assessment_session,priority:2" json:"log_version"`
	Overall    float64        `gorm:"column:overall;not null" json:"overall"`
	Confidence float64        `gorm:"column:confidence;not null" json:"confidence"`
	Tier       string         `gorm:"column:tier;not null" json:"tier"`
	Result     datatypes.JSON `gorm:"column:result;not null" json:"result"`
	CreatedAt  time.Time      `gorm:"not null;index" json:"created_at"`
}

func (AssessmentRecord) TableName() string { return "assessment_record" }
