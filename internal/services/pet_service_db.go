package services

import (
	"pawnote_go_backend/internal/models"

	"gorm.io/gorm"
)

// PetUpdate carries the fields of a partial pet update. Nil fields are left
// untouched.
type PetUpdate struct {
	Name          *string  `json:"name"`
	BirthDate     *string  `json:"birth_date"`
	PetType       *string  `json:"pet_type"`
	CustomPetType *string  `json:"custom_pet_type"`
	Breed         *string  `json:"breed"`
	Weight        *float64 `json:"weight"`
	Gender        *string  `json:"gender"`
	Photo         *string  `json:"photo"`
}

// DefaultPetService implements PetServiceDB
type DefaultPetService struct {
	db *gorm.DB
}

// NewPetServiceDB creates a new DefaultPetService
func NewPetServiceDB(db *gorm.DB) PetServiceDB {
	return &DefaultPetService{db: db}
}

func (s *DefaultPetService) CreatePet(pet *models.Pet) error {
	return s.db.Create(pet).Error
}

// GetPets lists pets, optionally filtered by exact case-insensitive name.
func (s *DefaultPetService) GetPets(name string) ([]models.Pet, error) {
	var pets []models.Pet
	query := s.db.Limit(100)
	if name != "" {
		query = query.Where("lower(name) = lower(?)", name)
	}
	if err := query.Find(&pets).Error; err != nil {
		return nil, err
	}
	return pets, nil
}

func (s *DefaultPetService) GetPetByID(id string) (*models.Pet, error) {
	var pet models.Pet
	if err := s.db.Where("id = ?", id).First(&pet).Error; err != nil {
		return nil, err
	}
	return &pet, nil
}

func (s *DefaultPetService) UpdatePet(id string, update PetUpdate) (*models.Pet, error) {
	var pet models.Pet
	if err := s.db.Where("id = ?", id).First(&pet).Error; err != nil {
		return nil, err
	}

	if update.Name != nil {
		pet.Name = *update.Name
	}
	if update.BirthDate != nil {
		pet.BirthDate = *update.BirthDate
	}
	if update.PetType != nil {
		pet.PetType = *update.PetType
	}
	if update.CustomPetType != nil {
		pet.CustomPetType = *update.CustomPetType
	}
	if update.Breed != nil {
		pet.Breed = *update.Breed
	}
	if update.Weight != nil {
		pet.Weight = update.Weight
	}
	if update.Gender != nil {
		pet.Gender = *update.Gender
	}
	if update.Photo != nil {
		pet.Photo = *update.Photo
	}

	if err := s.db.Save(&pet).Error; err != nil {
		return nil, err
	}
	return &pet, nil
}

// DeletePet removes a pet and all records that reference it.
func (s *DefaultPetService) DeletePet(id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ?", id).Delete(&models.Pet{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		var checklists []models.Checklist
		if err := tx.Where("pet_id = ?", id).Find(&checklists).Error; err != nil {
			return err
		}
		for _, checklist := range checklists {
			if err := tx.Where("checklist_id = ?", checklist.ID).Delete(&models.ChecklistItem{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("pet_id = ?", id).Delete(&models.Checklist{}).Error; err != nil {
			return err
		}
		if err := tx.Where("pet_id = ?", id).Delete(&models.VetVisit{}).Error; err != nil {
			return err
		}
		return tx.Where("pet_id = ?", id).Delete(&models.Reminder{}).Error
	})
}

func (s *DefaultPetService) FindPetByNameAndBirthDate(name, birthDate string) (*models.Pet, error) {
	var pet models.Pet
	result := s.db.Where("lower(name) = lower(?) AND birth_date = ?", name, birthDate).First(&pet)
	if result.Error != nil {
		return nil, result.Error
	}
	return &pet, nil
}
