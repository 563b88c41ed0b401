package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	DatabaseURL   string
	SessionSecret string
	SiteURL       string

	MediaRoot string
	MediaURL  string

	SMTP SMTPConfig

	// ContactRecipient receives contact-form inquiries. Falls back to
	// SMTP.From when not set.
	ContactRecipient string
}

type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

// Load reads configuration from the environment, taking a local .env file
// into account when present.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading env vars from system")
	}

	cfg := &Config{
		Port:          getenv("PORT", "8080"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		SessionSecret: getenv("SESSION_SECRET", "secret_key_change_me"),
		SiteURL:       getenv("SITE_URL", "http://localhost:8080"),
		MediaRoot:     getenv("MEDIA_ROOT", "./media"),
		MediaURL:      getenv("MEDIA_URL", "/media"),
		SMTP: SMTPConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     os.Getenv("SMTP_PORT"),
			Username: os.Getenv("SMTP_USER"),
			Password: os.Getenv("SMTP_PASS"),
			From:     os.Getenv("SMTP_FROM"),
		},
	}

	cfg.ContactRecipient = getenv("CONTACT_RECIPIENT", cfg.SMTP.From)

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
