package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/kova98/redd/enums"
)

const (
	EnvDevelopment = "DEV"
	EnvProduction  = "PROD"
)

type AppConfig struct {
	RedditClientID      string
	RedditClientSecret  string
	RedditUserAgent     string
	RedditBaseURL       string
	RedditTokenURL      string
	ProxyURL            string
	PostgresURL         string // empty disables the inbox archive
	KeycloakURL         string // empty leaves the API unauthenticated
	KeycloakRealm       string
	PollIntervalSeconds int
	PollCategories      []enums.MessageCategory
	MarkRead            bool
	ListenAddr          string
	AppEnv              string // EnvDevelopment or EnvProduction
	LogLevel            slog.Level
}

var Config AppConfig

// LoadConfig fills Config from the environment and exits when a required
// variable is missing or malformed.
func LoadConfig() {
	cfg, err := Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	Config = cfg
}

func Load() (AppConfig, error) {
	cfg := AppConfig{}
	var err error

	cfg.AppEnv = os.Getenv("APP_ENV")
	if cfg.RedditClientID, err = loadRequired("REDDIT_CLIENT_ID"); err != nil {
		return cfg, err
	}
	if cfg.RedditClientSecret, err = loadRequired("REDDIT_CLIENT_SECRET"); err != nil {
		return cfg, err
	}
	cfg.RedditUserAgent = loadOptional("REDDIT_USER_AGENT", "redd/1.0")
	cfg.RedditBaseURL = strings.TrimRight(loadOptional("REDDIT_BASE_URL", "https://oauth.reddit.com"), "/")
	cfg.RedditTokenURL = loadOptional("REDDIT_TOKEN_URL", "https://www.reddit.com/api/v1/access_token")
	cfg.ProxyURL = os.Getenv("PROXY_URL")
	cfg.PostgresURL = os.Getenv("POSTGRES_URL")
	cfg.KeycloakURL = os.Getenv("KEYCLOAK_URL")
	cfg.KeycloakRealm = loadOptional("KEYCLOAK_REALM", "redd")
	cfg.ListenAddr = loadOptional("LISTEN_ADDR", ":8080")

	cfg.PollIntervalSeconds, err = strconv.Atoi(loadOptional("POLL_INTERVAL_SECONDS", "60"))
	if err != nil || cfg.PollIntervalSeconds <= 0 {
		return cfg, fmt.Errorf("POLL_INTERVAL_SECONDS must be a positive integer")
	}

	cfg.PollCategories, err = parseCategories(loadOptional("POLL_CATEGORIES", "unread"))
	if err != nil {
		return cfg, err
	}

	cfg.MarkRead, err = strconv.ParseBool(loadOptional("MARK_READ", "false"))
	if err != nil {
		return cfg, fmt.Errorf("MARK_READ: %w", err)
	}

	lvlString := loadOptional("LOG_LEVEL", "INFO")
	cfg.LogLevel, err = parseLogLevel(lvlString)
	if err != nil {
		slog.Error("Invalid LOG_LEVEL", "error", err)
		cfg.LogLevel = slog.LevelInfo
	}

	return cfg, nil
}

func parseCategories(s string) ([]enums.MessageCategory, error) {
	var categories []enums.MessageCategory
	for _, part := range strings.Split(s, ",") {
		category := enums.MessageCategory(strings.TrimSpace(strings.ToLower(part)))
		if category == "" {
			continue
		}
		if !category.Valid() {
			return nil, fmt.Errorf("POLL_CATEGORIES: unknown category %q", category)
		}
		categories = append(categories, category)
	}
	if len(categories) == 0 {
		return nil, fmt.Errorf("POLL_CATEGORIES: no categories set")
	}
	return categories, nil
}

func parseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	var err = level.UnmarshalText([]byte(s))
	return level, err
}

func loadRequired(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("required env var %s not set", key)
	}
	return value, nil
}

func loadOptional(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func (c AppConfig) IsProduction() bool {
	return c.AppEnv == EnvProduction
}

func (c AppConfig) ArchiveEnabled() bool {
	return c.PostgresURL != ""
}
