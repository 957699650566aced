package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config carries everything the client process needs: where the SwiftShip
// backend lives, where to serve the dashboard, and where the credential
// token is persisted between runs.
type Config struct {
	APIBaseURL   string
	ListenAddr   string
	CredentialDB string
	HTTPTimeout  time.Duration
}

// Load reads .env (if present) and assembles the config from environment
// variables with defaults.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found – relying on env vars")
	}

	timeoutSecs, err := strconv.Atoi(getEnv("HTTP_TIMEOUT_SECONDS", "15"))
	if err != nil || timeoutSecs <= 0 {
		timeoutSecs = 15
	}

	return &Config{
		APIBaseURL:   getEnv("SWIFTSHIP_API_URL", "http://localhost:5001"),
		ListenAddr:   getEnv("LISTEN_ADDR", "0.0.0.0:8080"),
		CredentialDB: getEnv("CREDENTIAL_DB", "./swiftship_session.db"),
		HTTPTimeout:  time.Duration(timeoutSecs) * time.Second,
	}
}

// getEnv reads an environment variable or returns the provided default
func getEnv(key, defaultValue string) string {
	if v, exists := os.LookupEnv(key); exists {
		return v
	}
	return defaultValue
}
