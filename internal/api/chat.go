package api

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "pawnote_go_backend/internal/errors"
	"pawnote_go_backend/internal/services"

	"github.com/gin-gonic/gin"
)

func chatHandler(chatService *services.PetChatService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var request struct {
			SessionID string `json:"session_id" binding:"required"`
			Message   string `json:"message"`
			Image     string `json:"image"`
			PetID     string `json:"pet_id"`
		}
		if err := c.ShouldBindJSON(&request); err != nil {
			apperrors.HandleError(c, apperrors.New400Error(err.Error()))
			return
		}

		reply, err := chatService.HandleChat(c.Request.Context(), services.ChatRequest{
			SessionID: request.SessionID,
			Message:   request.Message,
			Image:     request.Image,
			PetID:     request.PetID,
		})
		if err != nil {
			if errors.Is(err, services.ErrNotConfigured) {
				apperrors.HandleError(c, apperrors.New503Error("AI service not configured"))
				return
			}
			apperrors.HandleError(c, apperrors.New500Error(err.Error(), err))
			return
		}

		c.JSON(http.StatusOK, gin.H{"response": reply})
	}
}

func getChatHistoryHandler(chatService *services.PetChatService) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := 0
		if raw := c.Query("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 0 {
				apperrors.HandleError(c, apperrors.New400Error("limit must be a non-negative integer"))
				return
			}
			limit = parsed
		}

		history, err := chatService.GetChatHistory(c.Param("session_id"), limit)
		if err != nil {
			apperrors.HandleError(c, err)
			return
		}
		c.JSON(http.StatusOK, history)
	}
}

func clearChatHistoryHandler(chatService *services.PetChatService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := chatService.ClearChatHistory(c.Param("session_id")); err != nil {
			apperrors.HandleError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Chat history cleared"})
	}
}
