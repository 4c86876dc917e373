package api

import (
	"net/http"
	"strconv"
	"time"

	apperrors "pawnote_go_backend/internal/errors"
	"pawnote_go_backend/internal/models"
	"pawnote_go_backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func createChecklistHandler(checklistService services.ChecklistServiceDB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var request struct {
			PetID             string                        `json:"pet_id" binding:"required"`
			Title             string                        `json:"title" binding:"required"`
			Category          string                        `json:"category"`
			Items             []services.ChecklistItemInput `json:"items"`
			IsRecurring       bool                          `json:"is_recurring"`
			RecurrencePattern string                        `json:"recurrence_pattern"`
		}
		if err := c.ShouldBindJSON(&request); err != nil {
			apperrors.HandleError(c, apperrors.New400Error(err.Error()))
			return
		}

		category := request.Category
		if category == "" {
			category = "daily"
		}
		now := time.Now().UTC()
		checklist := &models.Checklist{
			ID:                uuid.New().String(),
			PetID:             request.PetID,
			Title:             request.Title,
			Category:          category,
			IsRecurring:       request.IsRecurring,
			RecurrencePattern: request.RecurrencePattern,
			CreatedAt:         now,
			UpdatedAt:         now,
		}
		for _, item := range request.Items {
			checklist.Items = append(checklist.Items, models.ChecklistItem{
				ID:          item.ID,
				ChecklistID: checklist.ID,
				Text:        item.Text,
				Completed:   item.Completed,
				DueTime:     item.DueTime,
			})
		}

		if err := checklistService.CreateChecklist(checklist); err != nil {
			apperrors.HandleError(c, err)
			return
		}
		c.JSON(http.StatusOK, checklist)
	}
}

func getChecklistsHandler(checklistService services.ChecklistServiceDB) gin.HandlerFunc {
	return func(c *gin.Context) {
		checklists, err := checklistService.GetChecklists(c.Query("pet_id"), c.Query("category"))
		if err != nil {
			apperrors.HandleError(c, err)
			return
		}
		c.JSON(http.StatusOK, checklists)
	}
}

func getChecklistHandler(checklistService services.ChecklistServiceDB) gin.HandlerFunc {
	return func(c *gin.Context) {
		checklist, err := checklistService.GetChecklistByID(c.Param("checklist_id"))
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				apperrors.HandleError(c, apperrors.New404Error("Checklist not found"))
				return
			}
			apperrors.HandleError(c, err)
			return
		}
		c.JSON(http.StatusOK, checklist)
	}
}

func updateChecklistHandler(checklistService services.ChecklistServiceDB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var update services.ChecklistUpdate
		if err := c.ShouldBindJSON(&update); err != nil {
			apperrors.HandleError(c, apperrors.New400Error(err.Error()))
			return
		}

		checklist, err := checklistService.UpdateChecklist(c.Param("checklist_id"), update)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				apperrors.HandleError(c, apperrors.New404Error("Checklist not found"))
				return
			}
			apperrors.HandleError(c, err)
			return
		}
		c.JSON(http.StatusOK, checklist)
	}
}

func toggleChecklistItemHandler(checklistService services.ChecklistServiceDB) gin.HandlerFunc {
	return func(c *gin.Context) {
		completed, err := strconv.ParseBool(c.Query("completed"))
		if err != nil {
			apperrors.HandleError(c, apperrors.New400Error("completed must be true or false"))
			return
		}

		err = checklistService.SetItemCompleted(c.Param("checklist_id"), c.Param("item_id"), completed)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				apperrors.HandleError(c, apperrors.New404Error("Checklist not found"))
				return
			}
			apperrors.HandleError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

func deleteChecklistHandler(checklistService services.ChecklistServiceDB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := checklistService.DeleteChecklist(c.Param("checklist_id")); err != nil {
			if err == gorm.ErrRecordNotFound {
				apperrors.HandleError(c, apperrors.New404Error("Checklist not found"))
				return
			}
			apperrors.HandleError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Checklist deleted"})
	}
}
