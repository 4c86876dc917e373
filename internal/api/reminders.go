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

type reminderRequest struct {
	PetID          string `json:"pet_id" binding:"required"`
	Title          string `json:"title" binding:"required"`
	Description    string `json:"description"`
	ReminderTime   string `json:"reminder_time" binding:"required"`
	ReminderDate   string `json:"reminder_date"`
	IsRecurring    *bool  `json:"is_recurring"`
	RecurrenceDays []int  `json:"recurrence_days"`
	Category       string `json:"category"`
}

func (r reminderRequest) toModel() *models.Reminder {
	isRecurring := true
	if r.IsRecurring != nil {
		isRecurring = *r.IsRecurring
	}
	recurrenceDays := r.RecurrenceDays
	if recurrenceDays == nil {
		recurrenceDays = []int{0, 1, 2, 3, 4, 5, 6}
	}
	category := r.Category
	if category == "" {
		category = "general"
	}
	return &models.Reminder{
		PetID:          r.PetID,
		Title:          r.Title,
		Description:    r.Description,
		ReminderTime:   r.ReminderTime,
		ReminderDate:   r.ReminderDate,
		IsRecurring:    isRecurring,
		RecurrenceDays: models.IntList(recurrenceDays),
		Category:       category,
	}
}

func createReminderHandler(reminderService services.ReminderServiceDB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var request reminderRequest
		if err := c.ShouldBindJSON(&request); err != nil {
			apperrors.HandleError(c, apperrors.New400Error(err.Error()))
			return
		}

		reminder := request.toModel()
		reminder.ID = uuid.New().String()
		reminder.IsActive = true
		reminder.CreatedAt = time.Now().UTC()

		if err := reminderService.CreateReminder(reminder); err != nil {
			apperrors.HandleError(c, err)
			return
		}
		c.JSON(http.StatusOK, reminder)
	}
}

func getRemindersHandler(reminderService services.ReminderServiceDB) gin.HandlerFunc {
	return func(c *gin.Context) {
		isActive := true
		if raw := c.Query("is_active"); raw != "" {
			parsed, err := strconv.ParseBool(raw)
			if err != nil {
				apperrors.HandleError(c, apperrors.New400Error("is_active must be true or false"))
				return
			}
			isActive = parsed
		}

		reminders, err := reminderService.GetReminders(c.Query("pet_id"), isActive)
		if err != nil {
			apperrors.HandleError(c, err)
			return
		}
		c.JSON(http.StatusOK, reminders)
	}
}

func updateReminderHandler(reminderService services.ReminderServiceDB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var request reminderRequest
		if err := c.ShouldBindJSON(&request); err != nil {
			apperrors.HandleError(c, apperrors.New400Error(err.Error()))
			return
		}

		reminder, err := reminderService.UpdateReminder(c.Param("reminder_id"), request.toModel())
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				apperrors.HandleError(c, apperrors.New404Error("Reminder not found"))
				return
			}
			apperrors.HandleError(c, err)
			return
		}
		c.JSON(http.StatusOK, reminder)
	}
}

func toggleReminderHandler(reminderService services.ReminderServiceDB) gin.HandlerFunc {
	return func(c *gin.Context) {
		isActive, err := reminderService.ToggleReminder(c.Param("reminder_id"))
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				apperrors.HandleError(c, apperrors.New404Error("Reminder not found"))
				return
			}
			apperrors.HandleError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"is_active": isActive})
	}
}

func deleteReminderHandler(reminderService services.ReminderServiceDB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := reminderService.DeleteReminder(c.Param("reminder_id")); err != nil {
			if err == gorm.ErrRecordNotFound {
				apperrors.HandleError(c, apperrors.New404Error("Reminder not found"))
				return
			}
			apperrors.HandleError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Reminder deleted"})
	}
}
