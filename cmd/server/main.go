package main

import (
	"context"
	"crypto/rand"
	"flag"
	"fmt"
	"log"
	"math/big"
	"net/http"
	"os"

	"github.com/ativahospitalar/galinheiro/internal/api"
	"github.com/ativahospitalar/galinheiro/internal/cart"
	"github.com/ativahospitalar/galinheiro/internal/config"
	"github.com/ativahospitalar/galinheiro/internal/db"
	"github.com/ativahospitalar/galinheiro/internal/notify"
	"github.com/ativahospitalar/galinheiro/internal/store"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: galinheiro <init|serve>")
		os.Exit(1)
	}

	switch os.Args[1] {
	case "init":
		cmdInit(os.Args[2:])
	case "serve":
		cmdServe(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\nUsage: galinheiro <init|serve>\n", os.Args[1])
		os.Exit(1)
	}
}

func cmdInit(args []string) {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	dbPath := fs.String("db", "galinheiro.sqlite3", "path to SQLite database file")
	fs.Parse(args)

	if _, err := os.Stat(*dbPath); err == nil {
		fmt.Fprintf(os.Stderr, "Error: database file %s already exists\n", *dbPath)
		os.Exit(1)
	}

	if err := initDatabase(*dbPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Database created: %s\n", *dbPath)
	fmt.Println("Schema initialized.")
	fmt.Println()
	fmt.Println("Admin account created:")
	fmt.Printf("  Username: %s\n", store.BootstrapAdminUsername)
	fmt.Printf("  Password: %s\n", store.BootstrapAdminPassword)
	fmt.Println()
	fmt.Println("Change this password after the first login.")
}

func cmdServe(args []string) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	fs.Parse(args)

	cfg := config.Load()

	// Auto-generate JWT secret if not provided.
	if cfg.JWTSecret == "" {
		secret, err := randomString(32)
		if err != nil {
			log.Fatalf("Failed to generate JWT secret: %v", err)
		}
		cfg.JWTSecret = secret
		log.Println("JWT secret auto-generated (sessions will be invalidated on restart)")
	}

	// Check if DB exists, auto-init if not.
	if _, err := os.Stat(cfg.DBPath); os.IsNotExist(err) {
		if err := initDatabase(cfg.DBPath); err != nil {
			log.Fatalf("Failed to initialize database: %v", err)
		}
		fmt.Printf("Database created: %s\n", cfg.DBPath)
		fmt.Println("Admin account created:")
		fmt.Printf("  Username: %s\n", store.BootstrapAdminUsername)
		fmt.Printf("  Password: %s\n", store.BootstrapAdminPassword)
		fmt.Println()
	}

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer database.Close()

	if err := db.EnsureSchema(database); err != nil {
		log.Fatalf("Failed to ensure database schema: %v", err)
	}
	if _, err := store.Bootstrap(context.Background(), database); err != nil {
		log.Fatalf("Failed to bootstrap collections: %v", err)
	}

	categories, err := cfg.Categories()
	if err != nil {
		log.Fatalf("Failed to load categories: %v", err)
	}

	notifier, cleanup, err := buildNotifier(cfg)
	if err != nil {
		log.Fatalf("Failed to set up notifier: %v", err)
	}
	defer cleanup()

	router := api.NewRouter(database, api.Options{
		JWTSecret:      cfg.JWTSecret,
		WhatsAppNumber: cfg.WhatsAppNumber,
		Categories:     categories,
		Carts:          cart.NewStore(),
		Notifier:       notifier,
	})
	handler := api.LoggingMiddleware(router)

	fmt.Printf("Server listening on %s\n", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, handler); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// buildNotifier selects the notification transport from configuration.
func buildNotifier(cfg *config.Config) (notify.Notifier, func(), error) {
	switch cfg.NotifyTransport {
	case "log", "":
		return notify.LogNotifier{}, func() {}, nil
	case "webhook":
		if cfg.WebhookURL == "" {
			return nil, nil, fmt.Errorf("webhook transport requires GALINHEIRO_WEBHOOK_URL")
		}
		return notify.NewWebhookNotifier(cfg.WebhookURL), func() {}, nil
	case "nats":
		n, err := notify.NewNATSNotifier(cfg.NATSURL, cfg.NATSSubject)
		if err != nil {
			return nil, nil, err
		}
		return n, n.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown notify transport %q", cfg.NotifyTransport)
	}
}

// initDatabase creates a new database, applies the schema, and seeds the
// fixed administrator account.
func initDatabase(path string) error {
	database, err := db.Open(path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	if err := db.EnsureSchema(database); err != nil {
		os.Remove(path)
		return fmt.Errorf("creating schema: %w", err)
	}

	if _, err := store.Bootstrap(context.Background(), database); err != nil {
		os.Remove(path)
		return fmt.Errorf("bootstrapping collections: %w", err)
	}

	return nil
}

// randomString creates a random string of the given length.
func randomString(length int) (string, error) {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%&*"
	result := make([]byte, length)
	for i := range result {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", err
		}
		result[i] = charset[n.Int64()]
	}
	return string(result), nil
}
