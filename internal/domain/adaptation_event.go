package domain

import (
	"time"

	"github.com/google/uuid"
)

// AdaptationEvent records an in-session adjustment (what triggered it and
// what changed).
type AdaptationEvent struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SessionID  uuid.UUID `gorm:"type:uuid;not null;index" json:"session_id"`
	Trigger    string    `gorm:"column:trigger;not null" json:"trigger"`
	Effect     string    `gorm:"column:effect" json:"effect"`
	OccurredAt time.Time `gorm:"column:occurred_at;not null" json:"occurred_at"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
}

func (AdaptationEvent) TableName() string { return "adaptation_event" }
