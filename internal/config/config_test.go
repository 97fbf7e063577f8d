package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Addr != ":8080" {
		t.Errorf("expected default addr :8080, got %q", cfg.Addr)
	}
	if cfg.WhatsAppNumber != "553221040257" {
		t.Errorf("unexpected default WhatsApp number %q", cfg.WhatsAppNumber)
	}
	if cfg.NotifyTransport != "log" {
		t.Errorf("expected default notify transport log, got %q", cfg.NotifyTransport)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("GALINHEIRO_ADDR", ":9090")
	t.Setenv("GALINHEIRO_NOTIFY_TRANSPORT", "webhook")

	cfg := Load()
	if cfg.Addr != ":9090" {
		t.Errorf("expected addr from environment, got %q", cfg.Addr)
	}
	if cfg.NotifyTransport != "webhook" {
		t.Errorf("expected transport from environment, got %q", cfg.NotifyTransport)
	}
}

func TestCategoriesDefault(t *testing.T) {
	cfg := &Config{}

	cats, err := cfg.Categories()
	if err != nil {
		t.Fatalf("Categories: %v", err)
	}
	if len(cats) != len(DefaultCategories) {
		t.Errorf("expected starter categories, got %v", cats)
	}
}

func TestCategoriesFromYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "categories.yaml")
	content := "categories:\n  - Enfermagem\n  - Laboratório\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing categories file: %v", err)
	}

	cfg := &Config{CategoriesFile: path}
	cats, err := cfg.Categories()
	if err != nil {
		t.Fatalf("Categories: %v", err)
	}
	if len(cats) != 2 || cats[0] != "Enfermagem" || cats[1] != "Laboratório" {
		t.Errorf("unexpected categories: %v", cats)
	}
}

func TestCategoriesMissingFile(t *testing.T) {
	cfg := &Config{CategoriesFile: "/nonexistent/categories.yaml"}
	if _, err := cfg.Categories(); err == nil {
		t.Error("expected an error for a missing categories file")
	}
}
