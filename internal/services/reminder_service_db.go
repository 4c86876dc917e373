package services

import (
	"pawnote_go_backend/internal/models"

	"gorm.io/gorm"
)

// DefaultReminderService implements ReminderServiceDB
type DefaultReminderService struct {
	db *gorm.DB
}

// NewReminderServiceDB creates a new DefaultReminderService
func NewReminderServiceDB(db *gorm.DB) ReminderServiceDB {
	return &DefaultReminderService{db: db}
}

func (s *DefaultReminderService) CreateReminder(reminder *models.Reminder) error {
	return s.db.Create(reminder).Error
}

func (s *DefaultReminderService) GetReminders(petID string, isActive bool) ([]models.Reminder, error) {
	var reminders []models.Reminder
	query := s.db.Where("is_active = ?", isActive).Limit(100)
	if petID != "" {
		query = query.Where("pet_id = ?", petID)
	}
	if err := query.Find(&reminders).Error; err != nil {
		return nil, err
	}
	return reminders, nil
}

// UpdateReminder replaces all caller-supplied fields of an existing reminder.
func (s *DefaultReminderService) UpdateReminder(id string, reminder *models.Reminder) (*models.Reminder, error) {
	var existing models.Reminder
	if err := s.db.Where("id = ?", id).First(&existing).Error; err != nil {
		return nil, err
	}

	existing.PetID = reminder.PetID
	existing.Title = reminder.Title
	existing.Description = reminder.Description
	existing.ReminderTime = reminder.ReminderTime
	existing.ReminderDate = reminder.ReminderDate
	existing.IsRecurring = reminder.IsRecurring
	existing.RecurrenceDays = reminder.RecurrenceDays
	existing.Category = reminder.Category

	if err := s.db.Save(&existing).Error; err != nil {
		return nil, err
	}
	return &existing, nil
}

// ToggleReminder flips is_active and returns the new state.
func (s *DefaultReminderService) ToggleReminder(id string) (bool, error) {
	var reminder models.Reminder
	if err := s.db.Where("id = ?", id).First(&reminder).Error; err != nil {
		return false, err
	}

	newStatus := !reminder.IsActive
	if err := s.db.Model(&reminder).Update("is_active", newStatus).Error; err != nil {
		return false, err
	}
	return newStatus, nil
}

func (s *DefaultReminderService) DeleteReminder(id string) error {
	result := s.db.Where("id = ?", id).Delete(&models.Reminder{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
