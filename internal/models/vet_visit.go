package models

import (
	"time"
)

type VetVisit struct {
	ID           string     `gorm:"type:uuid;primaryKey" json:"id"`
	PetID        string     `gorm:"index;not null" json:"pet_id"`
	VisitDate    string     `gorm:"index;not null" json:"visit_date"` // YYYY-MM-DD
	VetName      string     `json:"vet_name,omitempty"`
	Reason       string     `gorm:"not null" json:"reason"`
	Notes        string     `gorm:"type:text" json:"notes,omitempty"`
	Instructions StringList `gorm:"type:jsonb" json:"instructions"`
	FollowUpDate string     `json:"follow_up_date,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}
