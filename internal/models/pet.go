package models

import (
	"time"
)

type Pet struct {
	ID            string    `gorm:"type:uuid;primaryKey" json:"id"`
	Name          string    `gorm:"index;not null" json:"name"`
	BirthDate     string    `gorm:"not null" json:"birth_date"` // YYYY-MM-DD
	PetType       string    `json:"pet_type"`                   // dog, cat, bird, other
	CustomPetType string    `json:"custom_pet_type,omitempty"`  // for "other": Rabbit, Turtle, etc.
	Breed         string    `json:"breed,omitempty"`
	Weight        *float64  `json:"weight,omitempty"` // pounds
	Gender        string    `json:"gender,omitempty"` // male or female
	Photo         string    `gorm:"type:text" json:"photo,omitempty"` // base64 image
	CreatedAt     time.Time `json:"created_at"`
}
