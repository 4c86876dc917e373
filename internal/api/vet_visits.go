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

type vetVisitRequest struct {
	PetID        string   `json:"pet_id" binding:"required"`
	VisitDate    string   `json:"visit_date" binding:"required"`
	VetName      string   `json:"vet_name"`
	Reason       string   `json:"reason" binding:"required"`
	Notes        string   `json:"notes"`
	Instructions []string `json:"instructions"`
	FollowUpDate string   `json:"follow_up_date"`
}

func (r vetVisitRequest) toModel() *models.VetVisit {
	return &models.VetVisit{
		PetID:        r.PetID,
		VisitDate:    r.VisitDate,
		VetName:      r.VetName,
		Reason:       r.Reason,
		Notes:        r.Notes,
		Instructions: models.StringList(r.Instructions),
		FollowUpDate: r.FollowUpDate,
	}
}

func createVetVisitHandler(vetVisitService services.VetVisitServiceDB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var request vetVisitRequest
		if err := c.ShouldBindJSON(&request); err != nil {
			apperrors.HandleError(c, apperrors.New400Error(err.Error()))
			return
		}

		visit := request.toModel()
		visit.ID = uuid.New().String()
		visit.CreatedAt = time.Now().UTC()

		if err := vetVisitService.CreateVetVisit(visit); err != nil {
			apperrors.HandleError(c, err)
			return
		}
		c.JSON(http.StatusOK, visit)
	}
}

func getVetVisitsHandler(vetVisitService services.VetVisitServiceDB) gin.HandlerFunc {
	return func(c *gin.Context) {
		visits, err := vetVisitService.GetVetVisits(c.Query("pet_id"))
		if err != nil {
			apperrors.HandleError(c, err)
			return
		}
		c.JSON(http.StatusOK, visits)
	}
}

func getVetVisitHandler(vetVisitService services.VetVisitServiceDB) gin.HandlerFunc {
	return func(c *gin.Context) {
		visit, err := vetVisitService.GetVetVisitByID(c.Param("visit_id"))
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				apperrors.HandleError(c, apperrors.New404Error("Vet visit not found"))
				return
			}
			apperrors.HandleError(c, err)
			return
		}
		c.JSON(http.StatusOK, visit)
	}
}

func updateVetVisitHandler(vetVisitService services.VetVisitServiceDB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var request vetVisitRequest
		if err := c.ShouldBindJSON(&request); err != nil {
			apperrors.HandleError(c, apperrors.New400Error(err.Error()))
			return
		}

		visit, err := vetVisitService.UpdateVetVisit(c.Param("visit_id"), request.toModel())
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				apperrors.HandleError(c, apperrors.New404Error("Vet visit not found"))
				return
			}
			apperrors.HandleError(c, err)
			return
		}
		c.JSON(http.StatusOK, visit)
	}
}

func deleteVetVisitHandler(vetVisitService services.VetVisitServiceDB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := vetVisitService.DeleteVetVisit(c.Param("visit_id")); err != nil {
			if err == gorm.ErrRecordNotFound {
				apperrors.HandleError(c, apperrors.New404Error("Vet visit not found"))
				return
			}
			apperrors.HandleError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Vet visit deleted"})
	}
}

// convertVetVisitToChecklistHandler turns the instructions of a visit into a
// new checklist in the "vet" category.
func convertVetVisitToChecklistHandler(vetVisitService services.VetVisitServiceDB, checklistService services.ChecklistServiceDB) gin.HandlerFunc {
	return func(c *gin.Context) {
		visit, err := vetVisitService.GetVetVisitByID(c.Param("visit_id"))
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				apperrors.HandleError(c, apperrors.New404Error("Vet visit not found"))
				return
			}
			apperrors.HandleError(c, err)
			return
		}

		if len(visit.Instructions) == 0 {
			apperrors.HandleError(c, apperrors.New400Error("No instructions to convert"))
			return
		}

		now := time.Now().UTC()
		checklist := &models.Checklist{
			ID:        uuid.New().String(),
			PetID:     visit.PetID,
			Title:     "Vet Instructions - " + visit.Reason,
			Category:  "vet",
			CreatedAt: now,
			UpdatedAt: now,
		}
		for _, instruction := range visit.Instructions {
			checklist.Items = append(checklist.Items, models.ChecklistItem{
				ID:          uuid.New().String(),
				ChecklistID: checklist.ID,
				Text:        instruction,
			})
		}

		if err := checklistService.CreateChecklist(checklist); err != nil {
			apperrors.HandleError(c, err)
			return
		}
		c.JSON(http.StatusOK, checklist)
	}
}
