package config

import (
	"fmt"
	"os"
)

// Config holds every environment setting the binaries consume. Nothing in
// the rest of the codebase reads os.Getenv directly; the config is built
// once at startup and passed into constructors.
type Config struct {
	Port string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	GroqAPIKey      string
	CompletionModel string

	ResendAPIKey string
	EmailFrom    string

	AMQPURL string

	GoogleClientID     string
	GoogleClientSecret string
}

const defaultCompletionModel = "llama-3.2-90b-text-preview"

// Load reads the configuration from the environment. Missing service
// credentials are not fatal here: each feature reports its own missing key
// at request time instead of silently no-opping.
func Load() *Config {
	cfg := &Config{
		Port:               os.Getenv("PORT"),
		DBUser:             os.Getenv("DB_USER"),
		DBPassword:         os.Getenv("DB_PASSWORD"),
		DBHost:             os.Getenv("DB_HOST"),
		DBPort:             os.Getenv("DB_PORT"),
		DBName:             os.Getenv("DB_NAME"),
		GroqAPIKey:         os.Getenv("GROQ_API_KEY"),
		CompletionModel:    os.Getenv("COMPLETION_MODEL"),
		ResendAPIKey:       os.Getenv("RESEND_API_KEY"),
		EmailFrom:          os.Getenv("EMAIL_FROM"),
		AMQPURL:            os.Getenv("AMQP_URL"),
		GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.CompletionModel == "" {
		cfg.CompletionModel = defaultCompletionModel
	}
	if cfg.EmailFrom == "" {
		cfg.EmailFrom = "Vyapaar <onboarding@resend.dev>"
	}

	return cfg
}

// DatabaseURL builds the Postgres DSN. DATABASE_URL wins when set so the
// seeder and docker setups can pass a single string.
func (c *Config) DatabaseURL() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName,
	)
}
