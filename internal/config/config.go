package config

import (
	"log"
	"os"
)

// Config holds application configuration loaded from environment variables
type Config struct {
	Port        string
	DatabaseURL string
	MediaRoot   string
	FrontendURL string

	SMTPHost string
	SMTPPort string
	SMTPUser string
	SMTPPass string
	MailFrom string
}

// Load reads configuration from environment variables
func Load() *Config {
	cfg := &Config{
		Port:        getEnvWithDefault("PORT", "8000"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		MediaRoot:   getEnvWithDefault("MEDIA_ROOT", "media"),
		FrontendURL: getEnvWithDefault("FRONTEND_URL", "http://localhost:3000"),
		SMTPHost:    os.Getenv("SMTP_HOST"),
		SMTPPort:    getEnvWithDefault("SMTP_PORT", "587"),
		SMTPUser:    os.Getenv("SMTP_USER"),
		SMTPPass:    os.Getenv("SMTP_PASS"),
		MailFrom:    getEnvWithDefault("MAIL_FROM", "noreply@suhrawardymedical.org"),
	}

	if cfg.SMTPHost == "" {
		log.Println("WARNING: SMTP_HOST not set, password reset mail will be logged instead of sent")
	}

	return cfg
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
