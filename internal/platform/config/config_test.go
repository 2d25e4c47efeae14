package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"homedash/internal/platform/config"
	apperrors "homedash/internal/platform/errors"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	cfg, err := config.Load(filepath.Join(dir, "homedash.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != config.DefaultAddr || cfg.Anki.URL != config.DefaultAnkiURL {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.Data.IdeasPath != filepath.Join(dir, "data", "music-ideas.json") {
		t.Fatalf("unexpected ideas path %q", cfg.Data.IdeasPath)
	}
	if cfg.Cache.Reading != config.DefaultReadingCache || cfg.Cache.Anki != "no-store" {
		t.Fatalf("unexpected cache defaults %+v", cfg.Cache)
	}
}

func TestLoadMergesYAMLAndResolvesRelativePaths(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "homedash.yaml")
	raw := `
addr: ":9000"
timezone: Europe/Berlin
site:
  title: Studio
data:
  ideas: content/ideas.json
  books: /srv/books.json
cache:
  anki: "private, max-age=30"
`
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":9000" || cfg.Site.Title != "Studio" {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.Data.IdeasPath != filepath.Join(dir, "content", "ideas.json") {
		t.Fatalf("relative path not resolved: %q", cfg.Data.IdeasPath)
	}
	if cfg.Data.BooksPath != "/srv/books.json" {
		t.Fatalf("absolute path changed: %q", cfg.Data.BooksPath)
	}
	if cfg.Cache.Anki != "private, max-age=30" || cfg.Cache.Reading != config.DefaultReadingCache {
		t.Fatalf("unexpected cache %+v", cfg.Cache)
	}
	if cfg.Location().String() != "Europe/Berlin" {
		t.Fatalf("unexpected location %s", cfg.Location())
	}
}

func TestLoadRejectsBadInput(t *testing.T) {
	t.Parallel()
	if _, err := config.Load(" "); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input for empty path, got %v", err)
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "homedash.yaml")
	if err := os.WriteFile(path, []byte("timezone: Mars/Olympus\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := config.Load(path); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input for unknown zone, got %v", err)
	}
}

func TestEnvironmentOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "homedash.yaml")
	raw := "goodreads:\n  key: from-file\n  user_id: \"7\"\n"
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("GOODREADS_KEY", "from-env")
	t.Setenv("ANKI_URL", "http://anki.local:8765")

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Goodreads.Key != "from-env" || cfg.Goodreads.UserID != "7" {
		t.Fatalf("unexpected goodreads %+v", cfg.Goodreads)
	}
	if cfg.Anki.URL != "http://anki.local:8765" {
		t.Fatalf("unexpected anki url %q", cfg.Anki.URL)
	}
}

func TestDotEnvIsLoaded(t *testing.T) {
	// Registers cleanup so the variable does not leak once godotenv sets it.
	t.Setenv("GOODREADS_TOKEN_SECRET", "placeholder")
	if err := os.Unsetenv("GOODREADS_TOKEN_SECRET"); err != nil {
		t.Fatalf("unset: %v", err)
	}

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("GOODREADS_TOKEN_SECRET=shh\n"), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	cfg, err := config.Load(filepath.Join(dir, "homedash.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Goodreads.TokenSecret != "shh" {
		t.Fatalf("expected token secret from .env, got %q", cfg.Goodreads.TokenSecret)
	}
}
