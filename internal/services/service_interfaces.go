package services

import (
	"context"

	"pawnote_go_backend/internal/models"
)

// ChatStoreDB persists chat turns and serves them back in replay order.
type ChatStoreDB interface {
	SaveMessagePair(userMsg, assistantMsg *models.ChatMessage) error
	GetRecentMessages(sessionID string, limit int) ([]models.ChatMessage, error)
	GetMessages(sessionID string, limit int) ([]models.ChatMessage, error)
	DeleteMessages(sessionID string) error
}

// ImageData is a decoded inline image forwarded to the model provider.
type ImageData struct {
	MIMEType string
	Data     []byte
}

// ChatSession is one provider-side conversation. It is built fresh per
// request and discarded after the reply is obtained.
type ChatSession interface {
	Send(ctx context.Context, text string, image *ImageData) (string, error)
}

type ChatProvider interface {
	Configured() bool
	StartSession(systemPrompt string) ChatSession
}

// PetContextResolver renders a short description of a pet for the system
// prompt, or an empty string when no pet applies.
type PetContextResolver interface {
	DescribePet(petID string) string
}

type PetServiceDB interface {
	CreatePet(pet *models.Pet) error
	GetPets(name string) ([]models.Pet, error)
	GetPetByID(id string) (*models.Pet, error)
	UpdatePet(id string, update PetUpdate) (*models.Pet, error)
	DeletePet(id string) error
	FindPetByNameAndBirthDate(name, birthDate string) (*models.Pet, error)
}

type ChecklistServiceDB interface {
	CreateChecklist(checklist *models.Checklist) error
	GetChecklists(petID, category string) ([]models.Checklist, error)
	GetChecklistByID(id string) (*models.Checklist, error)
	UpdateChecklist(id string, update ChecklistUpdate) (*models.Checklist, error)
	SetItemCompleted(checklistID, itemID string, completed bool) error
	DeleteChecklist(id string) error
}

type VetVisitServiceDB interface {
	CreateVetVisit(visit *models.VetVisit) error
	GetVetVisits(petID string) ([]models.VetVisit, error)
	GetVetVisitByID(id string) (*models.VetVisit, error)
	UpdateVetVisit(id string, visit *models.VetVisit) (*models.VetVisit, error)
	DeleteVetVisit(id string) error
}

type ReminderServiceDB interface {
	CreateReminder(reminder *models.Reminder) error
	GetReminders(petID string, isActive bool) ([]models.Reminder, error)
	UpdateReminder(id string, reminder *models.Reminder) (*models.Reminder, error)
	ToggleReminder(id string) (bool, error)
	DeleteReminder(id string) error
}
