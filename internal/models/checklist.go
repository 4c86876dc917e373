package models

import (
	"time"
)

type Checklist struct {
	ID                string          `gorm:"type:uuid;primaryKey" json:"id"`
	PetID             string          `gorm:"index;not null" json:"pet_id"`
	Title             string          `gorm:"not null" json:"title"`
	Category          string          `json:"category"` // daily, medication, feeding, vet
	Items             []ChecklistItem `gorm:"foreignKey:ChecklistID;constraint:OnDelete:CASCADE" json:"items"`
	IsRecurring       bool            `json:"is_recurring"`
	RecurrencePattern string          `json:"recurrence_pattern,omitempty"` // daily, weekly, monthly
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

type ChecklistItem struct {
	ID          string `gorm:"type:uuid;primaryKey" json:"id"`
	ChecklistID string `gorm:"index;not null" json:"-"`
	Text        string `gorm:"not null" json:"text"`
	Completed   bool   `json:"completed"`
	DueTime     string `json:"due_time,omitempty"` // HH:MM
}
