package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

// Emote data sources.
const (
	SourceDatabase = "database"
	SourceFile     = "file"
	SourceXIVAPI   = "xivapi"
)

const defaultDatabaseURL = "postgres://localhost:5432/emotebot?sslmode=disable"

type Config struct {
	Token          string
	GuildID        string
	DatabaseURL    string
	MigrationsPath string
	EmoteSource    string
	EmoteDataFile  string
	XIVAPIKey      string
	DefaultLocale  string
	WorldNames     bool

	worldNames string
}

// Load reads the configuration from the environment (and an optional .env
// file) and validates it.
func Load() (*Config, error) {
	// .env is optional when variables come from the environment (Docker, CI, etc.).
	_ = godotenv.Load()

	cfg := FromEnv(os.Getenv)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FromEnv builds an unvalidated Config from getenv.
func FromEnv(getenv func(string) string) *Config {
	return &Config{
		Token:          getenv("TOKEN"),
		GuildID:        getenv("GUILD_ID"),
		DatabaseURL:    getenv("DATABASE_URL"),
		MigrationsPath: getenv("MIGRATIONS_PATH"),
		EmoteSource:    getenv("EMOTE_SOURCE"),
		EmoteDataFile:  getenv("EMOTE_DATA_FILE"),
		XIVAPIKey:      getenv("XIVAPI_KEY"),
		DefaultLocale:  getenv("DEFAULT_LOCALE"),
		worldNames:     getenv("WORLD_NAMES"),
	}
}

// validate fills defaults and checks every setting.
func (c *Config) validate() error {
	if strings.TrimSpace(c.Token) == "" {
		return fmt.Errorf("config: TOKEN is required")
	}

	for _, r := range c.GuildID {
		if r < '0' || r > '9' {
			return fmt.Errorf("config: GUILD_ID must be a Discord guild ID (digits only)")
		}
	}

	if strings.TrimSpace(c.DatabaseURL) == "" {
		c.DatabaseURL = defaultDatabaseURL
	}
	parsed, err := url.Parse(c.DatabaseURL)
	if err != nil {
		return fmt.Errorf("config: invalid DATABASE_URL (%q): %w", c.DatabaseURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: invalid DATABASE_URL (%q): missing scheme or host", c.DatabaseURL)
	}

	if strings.TrimSpace(c.MigrationsPath) == "" {
		c.MigrationsPath = "migrations"
	}

	c.EmoteSource = strings.ToLower(strings.TrimSpace(c.EmoteSource))
	switch c.EmoteSource {
	case "":
		c.EmoteSource = SourceDatabase
	case SourceDatabase, SourceXIVAPI:
	case SourceFile:
		if strings.TrimSpace(c.EmoteDataFile) == "" {
			return fmt.Errorf("config: EMOTE_DATA_FILE is required when EMOTE_SOURCE=file")
		}
	default:
		return fmt.Errorf("config: EMOTE_SOURCE must be one of database, file, xivapi (got %q)", c.EmoteSource)
	}

	if strings.TrimSpace(c.DefaultLocale) == "" {
		c.DefaultLocale = "en"
	}
	if _, err := language.Parse(c.DefaultLocale); err != nil {
		return fmt.Errorf("config: invalid DEFAULT_LOCALE (%q): %w", c.DefaultLocale, err)
	}

	if v := strings.TrimSpace(c.worldNames); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: invalid WORLD_NAMES (%q): %w", v, err)
		}
		c.WorldNames = b
	}

	return nil
}
