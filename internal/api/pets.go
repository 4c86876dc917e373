package api

import (
	"net/http"
	"time"

	apperrors "pawnote_go_backend/internal/errors"
	"pawnote_go_backend/internal/models"
	"pawnote_go_backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func createPetHandler(petService services.PetServiceDB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var request struct {
			Name          string   `json:"name" binding:"required"`
			BirthDate     string   `json:"birth_date" binding:"required"`
			PetType       string   `json:"pet_type"`
			CustomPetType string   `json:"custom_pet_type"`
			Breed         string   `json:"breed"`
			Weight        *float64 `json:"weight"`
			Gender        string   `json:"gender"`
			Photo         string   `json:"photo"`
		}
		if err := c.ShouldBindJSON(&request); err != nil {
			apperrors.HandleError(c, apperrors.New400Error(err.Error()))
			return
		}

		petType := request.PetType
		if petType == "" {
			petType = "dog"
		}
		pet := &models.Pet{
			ID:            uuid.New().String(),
			Name:          request.Name,
			BirthDate:     request.BirthDate,
			PetType:       petType,
			CustomPetType: request.CustomPetType,
			Breed:         request.Breed,
			Weight:        request.Weight,
			Gender:        request.Gender,
			Photo:         request.Photo,
			CreatedAt:     time.Now().UTC(),
		}
		if err := petService.CreatePet(pet); err != nil {
			apperrors.HandleError(c, err)
			return
		}
		c.JSON(http.StatusOK, pet)
	}
}

func getPetsHandler(petService services.PetServiceDB) gin.HandlerFunc {
	return func(c *gin.Context) {
		pets, err := petService.GetPets(c.Query("name"))
		if err != nil {
			apperrors.HandleError(c, err)
			return
		}
		c.JSON(http.StatusOK, pets)
	}
}

func getPetHandler(petService services.PetServiceDB) gin.HandlerFunc {
	return func(c *gin.Context) {
		pet, err := petService.GetPetByID(c.Param("pet_id"))
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				apperrors.HandleError(c, apperrors.New404Error("Pet not found"))
				return
			}
			apperrors.HandleError(c, err)
			return
		}
		c.JSON(http.StatusOK, pet)
	}
}

func updatePetHandler(petService services.PetServiceDB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var update services.PetUpdate
		if err := c.ShouldBindJSON(&update); err != nil {
			apperrors.HandleError(c, apperrors.New400Error(err.Error()))
			return
		}

		pet, err := petService.UpdatePet(c.Param("pet_id"), update)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				apperrors.HandleError(c, apperrors.New404Error("Pet not found"))
				return
			}
			apperrors.HandleError(c, err)
			return
		}
		c.JSON(http.StatusOK, pet)
	}
}

func deletePetHandler(petService services.PetServiceDB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := petService.DeletePet(c.Param("pet_id")); err != nil {
			if err == gorm.ErrRecordNotFound {
				apperrors.HandleError(c, apperrors.New404Error("Pet not found"))
				return
			}
			apperrors.HandleError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Pet deleted successfully"})
	}
}
