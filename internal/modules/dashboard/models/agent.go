package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Agent is a configured chat agent owned by a dashboard user.
type Agent struct {
	ID     uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`

	Name        string `json:"name" gorm:"type:varchar(255);not null"`
	Description string `json:"description" gorm:"type:text"`

	// Synthesized at creation time, stored verbatim
	SystemPrompt       string `json:"system_prompt" gorm:"type:text;not null"`
	WelcomeMessage     string `json:"welcome_message" gorm:"type:text"`
	SuggestedQuestions string `json:"suggested_questions" gorm:"type:text"` // newline-joined

	AgentType        string         `json:"agent_type" gorm:"type:varchar(20);not null;index"` // 'whatsapp', 'website'
	BusinessCategory string         `json:"business_category" gorm:"type:varchar(50);not null"`
	Capabilities     datatypes.JSON `json:"capabilities" gorm:"type:jsonb;not null;default:'[]'"`
	BusinessInfo     datatypes.JSON `json:"business_info" gorm:"type:jsonb;not null;default:'{}'"`

	// Widget display settings, only meaningful for website agents
	WidgetConfig datatypes.JSON `json:"widget_config" gorm:"type:jsonb;default:'{}'"`

	IsActive  bool      `json:"is_active" gorm:"default:true;index"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime;index:,sort:desc"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for Agent
func (Agent) TableName() string {
	return "agents"
}
