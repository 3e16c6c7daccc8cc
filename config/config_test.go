package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kova98/redd/enums"
)

func setRequired(t *testing.T) {
	t.Setenv("REDDIT_CLIENT_ID", "id")
	t.Setenv("REDDIT_CLIENT_SECRET", "secret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://oauth.reddit.com", cfg.RedditBaseURL)
	assert.Equal(t, "redd/1.0", cfg.RedditUserAgent)
	assert.Equal(t, 60, cfg.PollIntervalSeconds)
	assert.Equal(t, []enums.MessageCategory{enums.MessageCategoryUnread}, cfg.PollCategories)
	assert.False(t, cfg.MarkRead)
	assert.False(t, cfg.ArchiveEnabled())
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("REDDIT_CLIENT_ID", "")
	t.Setenv("REDDIT_CLIENT_SECRET", "secret")

	_, err := Load()
	assert.ErrorContains(t, err, "REDDIT_CLIENT_ID")
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("REDDIT_BASE_URL", "http://localhost:9000/")
	t.Setenv("POLL_CATEGORIES", "Inbox, sent")
	t.Setenv("MARK_READ", "true")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("POSTGRES_URL", "postgres://localhost/redd")
	t.Setenv("APP_ENV", EnvProduction)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9000", cfg.RedditBaseURL)
	assert.Equal(t, []enums.MessageCategory{enums.MessageCategoryInbox, enums.MessageCategorySent}, cfg.PollCategories)
	assert.True(t, cfg.MarkRead)
	assert.True(t, cfg.ArchiveEnabled())
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestLoad_InvalidValues(t *testing.T) {
	setRequired(t)

	t.Setenv("POLL_CATEGORIES", "inbox,spam")
	_, err := Load()
	assert.ErrorContains(t, err, "spam")

	t.Setenv("POLL_CATEGORIES", "inbox")
	t.Setenv("POLL_INTERVAL_SECONDS", "-5")
	_, err = Load()
	assert.Error(t, err)
}
