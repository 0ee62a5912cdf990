package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SavedDraft is an in-progress wizard configuration persisted so the user can
// resume later. One draft per user; pruned after a week of inactivity.
type SavedDraft struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID    uuid.UUID      `json:"user_id" gorm:"type:uuid;not null;uniqueIndex"`
	Payload   datatypes.JSON `json:"payload" gorm:"type:jsonb;not null;default:'{}'"`
	CreatedAt time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time      `json:"updated_at" gorm:"autoUpdateTime;index"`
}

// TableName specifies the table name for SavedDraft
func (SavedDraft) TableName() string {
	return "agent_drafts"
}
