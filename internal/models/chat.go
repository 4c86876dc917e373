package models

import (
	"time"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one turn of a conversation. Turns are grouped by the
// caller-supplied session ID and replayed in ascending created_at order.
type ChatMessage struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	SessionID string    `gorm:"index;not null" json:"session_id"`
	Role      string    `gorm:"not null" json:"role"`
	Content   string    `gorm:"type:text" json:"content"`
	Image     string    `gorm:"type:text" json:"image,omitempty"` // data-URI base64, user turns only
	PetID     string    `gorm:"index" json:"pet_id,omitempty"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}
