package config

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// Load reads configuration from environment variables and .env file.
func Load() Config {
	err := godotenv.Load()
	if err != nil {
		log.Info("No .env file found, reading from environment variables")
	}

	// A helper function to get a required env var. It will fail if the env var is not set.
	getEnv := func(key string) string {
		if value, ok := os.LookupEnv(key); ok {
			return value
		}
		log.Fatalf("Error: Required environment variable %s is not set.", key)
		return "" // This line is never reached
	}

	// Optional variables fall back to the empty string.
	getOptionalEnv := func(key string) string {
		return os.Getenv(key)
	}

	cfg := Config{
		DBName:        getEnv("DB_NAME"),
		MigrationsDir: "./migrations",
		Port:          getEnv("PORT"),
		Slack: SlackConfig{
			Token:     getEnv("SLACK_BOT_TOKEN"),
			ChannelID: getEnv("SLACK_CHANNEL_ID"),
		},
		Turso: TursoConfig{
			PrimaryURL: getOptionalEnv("TURSO_PRIMARY_URL"),
			AuthToken:  getOptionalEnv("TURSO_AUTH_TOKEN"),
		},
		ProjectID: getEnv("GCP_PROJECT"),
	}
	return cfg
}
