package api

import (
	"net/http"

	"pawnote_go_backend/internal/services"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	r *gin.Engine,
	petService services.PetServiceDB,
	checklistService services.ChecklistServiceDB,
	vetVisitService services.VetVisitServiceDB,
	reminderService services.ReminderServiceDB,
	chatService *services.PetChatService,
) {
	api := r.Group("/api")
	{
		api.GET("/", rootHandler)

		api.POST("/pets", createPetHandler(petService))
		api.GET("/pets", getPetsHandler(petService))
		api.GET("/pets/:pet_id", getPetHandler(petService))
		api.PUT("/pets/:pet_id", updatePetHandler(petService))
		api.DELETE("/pets/:pet_id", deletePetHandler(petService))

		api.POST("/checklists", createChecklistHandler(checklistService))
		api.GET("/checklists", getChecklistsHandler(checklistService))
		api.GET("/checklists/:checklist_id", getChecklistHandler(checklistService))
		api.PUT("/checklists/:checklist_id", updateChecklistHandler(checklistService))
		api.PATCH("/checklists/:checklist_id/items/:item_id", toggleChecklistItemHandler(checklistService))
		api.DELETE("/checklists/:checklist_id", deleteChecklistHandler(checklistService))

		api.POST("/vet-visits", createVetVisitHandler(vetVisitService))
		api.GET("/vet-visits", getVetVisitsHandler(vetVisitService))
		api.GET("/vet-visits/:visit_id", getVetVisitHandler(vetVisitService))
		api.PUT("/vet-visits/:visit_id", updateVetVisitHandler(vetVisitService))
		api.DELETE("/vet-visits/:visit_id", deleteVetVisitHandler(vetVisitService))
		api.POST("/vet-visits/:visit_id/to-checklist", convertVetVisitToChecklistHandler(vetVisitService, checklistService))

		api.POST("/reminders", createReminderHandler(reminderService))
		api.GET("/reminders", getRemindersHandler(reminderService))
		api.PUT("/reminders/:reminder_id", updateReminderHandler(reminderService))
		api.PATCH("/reminders/:reminder_id/toggle", toggleReminderHandler(reminderService))
		api.DELETE("/reminders/:reminder_id", deleteReminderHandler(reminderService))

		api.POST("/chat", chatHandler(chatService))
		api.GET("/chat/history/:session_id", getChatHistoryHandler(chatService))
		api.DELETE("/chat/history/:session_id", clearChatHistoryHandler(chatService))
	}
}

func rootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to Pawnote API",
		"version": "1.0.0",
	})
}
