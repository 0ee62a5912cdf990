package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL      string
	WhatsAppStoreURL string
	OpenAIKey        string
	JWTSecret        string
	WidgetBaseURL    string
	Port             string
	Env              string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ .env file not found, using system environment variables")
	}

	cfg := &Config{
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		WhatsAppStoreURL: os.Getenv("WHATSAPP_STORE_URL"),
		OpenAIKey:        os.Getenv("OPENAI_API_KEY"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		WidgetBaseURL:    os.Getenv("WIDGET_BASE_URL"),
		Port:             os.Getenv("PORT"),
		Env:              os.Getenv("ENV"),
	}

	// Default values
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.Env == "" {
		cfg.Env = "development"
	}
	if cfg.WidgetBaseURL == "" {
		cfg.WidgetBaseURL = "https://cdn.agentforge.app"
	}
	if cfg.WhatsAppStoreURL == "" {
		// Default to main database if not specified
		cfg.WhatsAppStoreURL = cfg.DatabaseURL
	}

	return cfg
}
