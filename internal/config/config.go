package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v9"
)

type Config struct {
	Port           string   `env:"PORT" envDefault:"3000"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173"`

	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME" envDefault:"pawnote_db"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`

	// Empty key is allowed: the server still serves CRUD routes and the chat
	// endpoint reports "AI service not configured".
	GoogleAIKey string        `env:"GOOGLE_AI_STUDIO_API_KEY"`
	GeminiModel string        `env:"GEMINI_MODEL" envDefault:"gemini-1.5-flash"`
	AITimeout   time.Duration `env:"AI_REQUEST_TIMEOUT" envDefault:"30s"`

	AccessTokenSecret string `env:"ACCESS_TOKEN_SECRET"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing env config: %w", err)
	}
	return cfg, nil
}
