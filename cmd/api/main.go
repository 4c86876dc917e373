package main

import (
	"context"
	"log"
	"time"

	"pawnote_go_backend/internal/api"
	"pawnote_go_backend/internal/auth"
	"pawnote_go_backend/internal/config"
	"pawnote_go_backend/internal/database"
	"pawnote_go_backend/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/generative-ai-go/genai"
	"github.com/joho/godotenv"
	"google.golang.org/api/option"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	database.InitDB(cfg)
	defer database.Close()

	// Without a key the chat endpoint reports "AI service not configured"
	// instead of preventing startup; the CRUD routes still work.
	var genaiClient *genai.Client
	if cfg.GoogleAIKey != "" {
		genaiClient, err = genai.NewClient(ctx, option.WithAPIKey(cfg.GoogleAIKey))
		if err != nil {
			log.Fatalf("Failed to create GenAI client: %v", err)
		}
		defer genaiClient.Close()
	} else {
		log.Println("GOOGLE_AI_STUDIO_API_KEY is not set; AI chat is disabled")
	}

	// Initialize internal services
	petService := services.NewPetServiceDB(database.DB)
	checklistService := services.NewChecklistServiceDB(database.DB)
	vetVisitService := services.NewVetVisitServiceDB(database.DB)
	reminderService := services.NewReminderServiceDB(database.DB)

	chatStore := services.NewChatStoreDB(database.DB)
	provider := services.NewGeminiProvider(genaiClient, cfg.GeminiModel)
	petContextResolver := services.NewPetContextResolver(petService)
	chatService := services.NewPetChatService(chatStore, provider, petContextResolver, cfg.AITimeout)

	r := gin.Default()

	// CORS middleware configuration
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api.SetupRoutes(r, petService, checklistService, vetVisitService, reminderService, chatService)
	auth.SetupRoutes(r, petService, cfg.AccessTokenSecret)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
