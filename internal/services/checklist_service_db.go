package services

import (
	"time"

	"pawnote_go_backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChecklistItemInput is one item as supplied by the API. Missing IDs are
// assigned on write.
type ChecklistItemInput struct {
	ID        string `json:"id"`
	Text      string `json:"text" binding:"required"`
	Completed bool   `json:"completed"`
	DueTime   string `json:"due_time"`
}

// ChecklistUpdate carries the fields of a partial checklist update. Nil
// fields are left untouched; a non-nil Items replaces the whole item list.
type ChecklistUpdate struct {
	Title             *string               `json:"title"`
	Category          *string               `json:"category"`
	Items             *[]ChecklistItemInput `json:"items"`
	IsRecurring       *bool                 `json:"is_recurring"`
	RecurrencePattern *string               `json:"recurrence_pattern"`
}

// DefaultChecklistService implements ChecklistServiceDB
type DefaultChecklistService struct {
	db *gorm.DB
}

// NewChecklistServiceDB creates a new DefaultChecklistService
func NewChecklistServiceDB(db *gorm.DB) ChecklistServiceDB {
	return &DefaultChecklistService{db: db}
}

func (s *DefaultChecklistService) CreateChecklist(checklist *models.Checklist) error {
	for i := range checklist.Items {
		if checklist.Items[i].ID == "" {
			checklist.Items[i].ID = uuid.New().String()
		}
	}
	return s.db.Create(checklist).Error
}

func (s *DefaultChecklistService) GetChecklists(petID, category string) ([]models.Checklist, error) {
	var checklists []models.Checklist
	query := s.db.Preload("Items").Limit(100)
	if petID != "" {
		query = query.Where("pet_id = ?", petID)
	}
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if err := query.Find(&checklists).Error; err != nil {
		return nil, err
	}
	return checklists, nil
}

func (s *DefaultChecklistService) GetChecklistByID(id string) (*models.Checklist, error) {
	var checklist models.Checklist
	if err := s.db.Preload("Items").Where("id = ?", id).First(&checklist).Error; err != nil {
		return nil, err
	}
	return &checklist, nil
}

func (s *DefaultChecklistService) UpdateChecklist(id string, update ChecklistUpdate) (*models.Checklist, error) {
	var checklist models.Checklist
	if err := s.db.Preload("Items").Where("id = ?", id).First(&checklist).Error; err != nil {
		return nil, err
	}

	if update.Title != nil {
		checklist.Title = *update.Title
	}
	if update.Category != nil {
		checklist.Category = *update.Category
	}
	if update.IsRecurring != nil {
		checklist.IsRecurring = *update.IsRecurring
	}
	if update.RecurrencePattern != nil {
		checklist.RecurrencePattern = *update.RecurrencePattern
	}
	checklist.UpdatedAt = time.Now().UTC()

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if update.Items != nil {
			if err := tx.Where("checklist_id = ?", checklist.ID).Delete(&models.ChecklistItem{}).Error; err != nil {
				return err
			}
			items := make([]models.ChecklistItem, len(*update.Items))
			for i, item := range *update.Items {
				itemID := item.ID
				if itemID == "" {
					itemID = uuid.New().String()
				}
				items[i] = models.ChecklistItem{
					ID:          itemID,
					ChecklistID: checklist.ID,
					Text:        item.Text,
					Completed:   item.Completed,
					DueTime:     item.DueTime,
				}
			}
			checklist.Items = items
			if len(items) > 0 {
				if err := tx.Create(&items).Error; err != nil {
					return err
				}
			}
		}
		return tx.Omit("Items").Save(&checklist).Error
	})
	if err != nil {
		return nil, err
	}
	return &checklist, nil
}

func (s *DefaultChecklistService) SetItemCompleted(checklistID, itemID string, completed bool) error {
	var checklist models.Checklist
	if err := s.db.Where("id = ?", checklistID).First(&checklist).Error; err != nil {
		return err
	}

	result := s.db.Model(&models.ChecklistItem{}).
		Where("checklist_id = ? AND id = ?", checklistID, itemID).
		Update("completed", completed)
	if result.Error != nil {
		return result.Error
	}

	return s.db.Model(&checklist).Update("updated_at", time.Now().UTC()).Error
}

func (s *DefaultChecklistService) DeleteChecklist(id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ?", id).Delete(&models.Checklist{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("checklist_id = ?", id).Delete(&models.ChecklistItem{}).Error
	})
}
