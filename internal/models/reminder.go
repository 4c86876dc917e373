package models

import (
	"time"
)

type Reminder struct {
	ID             string    `gorm:"type:uuid;primaryKey" json:"id"`
	PetID          string    `gorm:"index;not null" json:"pet_id"`
	Title          string    `gorm:"not null" json:"title"`
	Description    string    `json:"description,omitempty"`
	ReminderTime   string    `gorm:"not null" json:"reminder_time"` // HH:MM
	ReminderDate   string    `json:"reminder_date,omitempty"`       // YYYY-MM-DD for one-time reminders
	IsRecurring    bool      `json:"is_recurring"`
	RecurrenceDays IntList   `gorm:"type:jsonb" json:"recurrence_days"` // 0=Sunday
	Category       string    `json:"category"`                          // medication, feeding, walk, general
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
}
