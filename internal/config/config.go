package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds the configuration for the application.
type Config struct {
	DatabasePath string
	Port         string
	BaseURL      string
	JWTSecret    string
	GeminiAPIKey string

	// Telegram reminders (optional; reminders are disabled without a token)
	TelegramBotToken string
	ReminderInterval time.Duration
}

// NewFromEnv creates a new Config object from environment variables.
func NewFromEnv() (*Config, error) {
	databasePath := os.Getenv("DATABASE_PATH")
	if databasePath == "" {
		return nil, fmt.Errorf("DATABASE_PATH environment variable not set")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable not set")
	}

	geminiAPIKey := os.Getenv("GEMINI_API_KEY")
	if geminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:" + port
	}

	reminderInterval := 24 * time.Hour
	if raw := os.Getenv("REMINDER_INTERVAL"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid REMINDER_INTERVAL %q: %w", raw, err)
		}
		reminderInterval = parsed
	}

	return &Config{
		DatabasePath:     databasePath,
		Port:             port,
		BaseURL:          baseURL,
		JWTSecret:        jwtSecret,
		GeminiAPIKey:     geminiAPIKey,
		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		ReminderInterval: reminderInterval,
	}, nil
}
