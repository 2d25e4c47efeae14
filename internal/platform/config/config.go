package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	apperrors "homedash/internal/platform/errors"
)

const (
	DefaultAddr         = ":8080"
	DefaultGoodreadsURL = "https://www.goodreads.com"
	DefaultShelf        = "currently-reading"
	DefaultAnkiURL      = "http://127.0.0.1:8765"
	DefaultReadingCache = "public, s-maxage=3600, stale-while-revalidate=86400"
	DefaultAnkiCache    = "no-store"
)

type Config struct {
	Addr      string    `yaml:"addr"`
	Timezone  string    `yaml:"timezone"`
	Site      Site      `yaml:"site"`
	Data      Data      `yaml:"data"`
	Goodreads Goodreads `yaml:"goodreads"`
	Anki      Anki      `yaml:"anki"`
	Cache     Cache     `yaml:"cache"`

	location *time.Location
}

type Site struct {
	Title string `yaml:"title"`
}

type Data struct {
	IdeasPath string `yaml:"ideas"`
	BooksPath string `yaml:"books"`
	DBPath    string `yaml:"history_db"`
}

type Goodreads struct {
	BaseURL     string `yaml:"base_url"`
	Key         string `yaml:"key"`
	Secret      string `yaml:"secret"`
	UserID      string `yaml:"user_id"`
	Token       string `yaml:"token"`
	TokenSecret string `yaml:"token_secret"`
	Shelf       string `yaml:"shelf"`
}

type Anki struct {
	URL string `yaml:"url"`
}

type Cache struct {
	Reading string `yaml:"reading"`
	Anki    string `yaml:"anki"`
}

// Default returns a config rooted at dir with no remote credentials.
func Default(dir string) Config {
	return Config{
		Addr: DefaultAddr,
		Site: Site{Title: "Dashboard"},
		Data: Data{
			IdeasPath: filepath.Join(dir, "data", "music-ideas.json"),
			BooksPath: filepath.Join(dir, "data", "books.json"),
			DBPath:    filepath.Join(dir, ".homedash", "homedash.db"),
		},
		Goodreads: Goodreads{BaseURL: DefaultGoodreadsURL, Shelf: DefaultShelf},
		Anki:      Anki{URL: DefaultAnkiURL},
		Cache:     Cache{Reading: DefaultReadingCache, Anki: DefaultAnkiCache},
		location:  time.Local,
	}
}

// Load reads the YAML file at path (a missing file means defaults), loads
// a sibling .env, then applies environment overrides.
func Load(path string) (Config, error) {
	if strings.TrimSpace(path) == "" {
		return Config{}, fmt.Errorf("config path is required: %w", apperrors.ErrInvalidInput)
	}
	dir := filepath.Dir(path)
	cfg := Default(dir)

	raw, err := os.ReadFile(path)
	switch {
	case err == nil:
		fileCfg := Config{}
		if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
		cfg.merge(fileCfg, dir)
	case errors.Is(err, fs.ErrNotExist):
	default:
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	// .env is optional; real environment variables still win over it.
	_ = godotenv.Load(filepath.Join(dir, ".env"))
	cfg.applyEnv()

	if err := cfg.finalize(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Location is the zone used to decide what "today" is.
func (c Config) Location() *time.Location {
	if c.location == nil {
		return time.Local
	}
	return c.location
}

func (c *Config) merge(in Config, dir string) {
	setString(&c.Addr, in.Addr)
	setString(&c.Timezone, in.Timezone)
	setString(&c.Site.Title, in.Site.Title)
	setPath(&c.Data.IdeasPath, in.Data.IdeasPath, dir)
	setPath(&c.Data.BooksPath, in.Data.BooksPath, dir)
	setPath(&c.Data.DBPath, in.Data.DBPath, dir)
	setString(&c.Goodreads.BaseURL, in.Goodreads.BaseURL)
	setString(&c.Goodreads.Key, in.Goodreads.Key)
	setString(&c.Goodreads.Secret, in.Goodreads.Secret)
	setString(&c.Goodreads.UserID, in.Goodreads.UserID)
	setString(&c.Goodreads.Token, in.Goodreads.Token)
	setString(&c.Goodreads.TokenSecret, in.Goodreads.TokenSecret)
	setString(&c.Goodreads.Shelf, in.Goodreads.Shelf)
	setString(&c.Anki.URL, in.Anki.URL)
	setString(&c.Cache.Reading, in.Cache.Reading)
	setString(&c.Cache.Anki, in.Cache.Anki)
}

func (c *Config) applyEnv() {
	setString(&c.Addr, os.Getenv("HOMEDASH_ADDR"))
	setString(&c.Goodreads.Key, os.Getenv("GOODREADS_KEY"))
	setString(&c.Goodreads.Secret, os.Getenv("GOODREADS_SECRET"))
	setString(&c.Goodreads.UserID, os.Getenv("GOODREADS_USER_ID"))
	setString(&c.Goodreads.Token, os.Getenv("GOODREADS_TOKEN"))
	setString(&c.Goodreads.TokenSecret, os.Getenv("GOODREADS_TOKEN_SECRET"))
	setString(&c.Anki.URL, os.Getenv("ANKI_URL"))
}

func (c *Config) finalize() error {
	c.location = time.Local
	if c.Timezone != "" {
		loc, err := time.LoadLocation(c.Timezone)
		if err != nil {
			return fmt.Errorf("timezone %q: %w", c.Timezone, apperrors.ErrInvalidInput)
		}
		c.location = loc
	}
	if strings.TrimSpace(c.Anki.URL) == "" {
		return fmt.Errorf("anki url is required: %w", apperrors.ErrInvalidInput)
	}
	if strings.TrimSpace(c.Goodreads.BaseURL) == "" {
		return fmt.Errorf("goodreads base url is required: %w", apperrors.ErrInvalidInput)
	}
	return nil
}

func setString(dst *string, v string) {
	if strings.TrimSpace(v) != "" {
		*dst = strings.TrimSpace(v)
	}
}

func setPath(dst *string, v, dir string) {
	v = strings.TrimSpace(v)
	if v == "" {
		return
	}
	if !filepath.IsAbs(v) {
		v = filepath.Join(dir, v)
	}
	*dst = v
}
