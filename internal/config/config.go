// Package config provides runtime configuration from environment variables,
// with optional .env file support.
package config

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all server configuration knobs.
type Config struct {
	Addr   string
	DBPath string

	// JWTSecret signs session tokens. When empty, a secret is generated at
	// startup and sessions do not survive restarts.
	JWTSecret string

	// WhatsAppNumber is the fixed recipient of requisition deep links.
	WhatsAppNumber string

	// NotifyTransport selects the outbound-message transport:
	// "log", "webhook" or "nats".
	NotifyTransport string
	WebhookURL      string
	NATSURL         string
	NATSSubject     string

	// CategoriesFile optionally overrides the starter category set with a
	// YAML file.
	CategoriesFile string
}

// Load collects configuration from the environment with defaults, reading a
// .env file first when present.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to load .env file", "error", err)
	}

	return &Config{
		Addr:            getenv("GALINHEIRO_ADDR", ":8080"),
		DBPath:          getenv("GALINHEIRO_DB", "galinheiro.sqlite3"),
		JWTSecret:       getenv("GALINHEIRO_JWT_SECRET", ""),
		WhatsAppNumber:  getenv("GALINHEIRO_WHATSAPP_NUMBER", "553221040257"),
		NotifyTransport: getenv("GALINHEIRO_NOTIFY_TRANSPORT", "log"),
		WebhookURL:      getenv("GALINHEIRO_WEBHOOK_URL", ""),
		NATSURL:         getenv("GALINHEIRO_NATS_URL", "nats://localhost:4222"),
		NATSSubject:     getenv("GALINHEIRO_NATS_SUBJECT", "galinheiro.requisitions"),
		CategoriesFile:  getenv("GALINHEIRO_CATEGORIES_FILE", ""),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
