package config

import (
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

const defaultSeasonWeeks = 5

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

	// Optional env vars fall back to the zero value.
	lookupEnv := func(key string) string {
		value, _ := os.LookupEnv(key)
		return value
	}

	seasonWeeks := defaultSeasonWeeks
	if raw := lookupEnv("SEASON_WEEKS"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			log.Fatalf("Error: SEASON_WEEKS must be a positive integer, got %q.", raw)
		}
		seasonWeeks = parsed
	}

	cfg := Config{
		DBName:        getEnv("DB_NAME"),
		MigrationsDir: "./migrations",
		Port:          getEnv("PORT"),
		SeasonWeeks:   seasonWeeks,
		Slack: SlackConfig{
			Token:     lookupEnv("SLACK_BOT_TOKEN"),
			ChannelID: lookupEnv("SLACK_CHANNEL_ID"),
		},
		Turso: TursoConfig{
			PrimaryURL: lookupEnv("TURSO_PRIMARY_URL"),
			AuthToken:  lookupEnv("TURSO_AUTH_TOKEN"),
		},
		ProjectID: lookupEnv("GCP_PROJECT"),
	}
	return cfg
}
