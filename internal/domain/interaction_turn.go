package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// InteractionTurn is one recorded conversational turn. Rows are append-only
// and immutable once written; Seq preserves session order independent of
// clock skew in collaborator timestamps.
type InteractionTurn struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	SessionID uuid.UUID      `gorm:"type:uuid;not null;index:idx_turn_session,priority:1" json:"session_id"`
	Seq       int64          `gorm:"column:seq;not null;index:idx_turn_session,priority:2" json:"seq"`
	Speaker   string         `gorm:"column:speaker;not null" json:"speaker"`
	Content   string         `gorm:"column:content;type:text;not null" json:"content"`
	SpokenAt  time.Time      `gorm:"column:spoken_at;not null" json:"spoken_at"`
	Analysis  datatypes.JSON `gorm:"column:analysis" json:"analysis,omitempty"`
	CreatedAt time.Time      `gorm:"not null" json:"created_at"`
}

func (InteractionTurn) TableName() string { return "interaction_turn" }
