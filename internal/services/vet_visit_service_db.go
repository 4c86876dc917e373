package services

import (
	"pawnote_go_backend/internal/models"

	"gorm.io/gorm"
)

// DefaultVetVisitService implements VetVisitServiceDB
type DefaultVetVisitService struct {
	db *gorm.DB
}

// NewVetVisitServiceDB creates a new DefaultVetVisitService
func NewVetVisitServiceDB(db *gorm.DB) VetVisitServiceDB {
	return &DefaultVetVisitService{db: db}
}

func (s *DefaultVetVisitService) CreateVetVisit(visit *models.VetVisit) error {
	return s.db.Create(visit).Error
}

// GetVetVisits lists visits, newest first, optionally filtered by pet.
func (s *DefaultVetVisitService) GetVetVisits(petID string) ([]models.VetVisit, error) {
	var visits []models.VetVisit
	query := s.db.Order("visit_date desc").Limit(100)
	if petID != "" {
		query = query.Where("pet_id = ?", petID)
	}
	if err := query.Find(&visits).Error; err != nil {
		return nil, err
	}
	return visits, nil
}

func (s *DefaultVetVisitService) GetVetVisitByID(id string) (*models.VetVisit, error) {
	var visit models.VetVisit
	if err := s.db.Where("id = ?", id).First(&visit).Error; err != nil {
		return nil, err
	}
	return &visit, nil
}

// UpdateVetVisit replaces all caller-supplied fields of an existing visit.
func (s *DefaultVetVisitService) UpdateVetVisit(id string, visit *models.VetVisit) (*models.VetVisit, error) {
	var existing models.VetVisit
	if err := s.db.Where("id = ?", id).First(&existing).Error; err != nil {
		return nil, err
	}

	existing.PetID = visit.PetID
	existing.VisitDate = visit.VisitDate
	existing.VetName = visit.VetName
	existing.Reason = visit.Reason
	existing.Notes = visit.Notes
	existing.Instructions = visit.Instructions
	existing.FollowUpDate = visit.FollowUpDate

	if err := s.db.Save(&existing).Error; err != nil {
		return nil, err
	}
	return &existing, nil
}

func (s *DefaultVetVisitService) DeleteVetVisit(id string) error {
	result := s.db.Where("id = ?", id).Delete(&models.VetVisit{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
