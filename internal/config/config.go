package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds the configuration for the application.
type Config struct {
	ListenAddr  string
	DBPath      string
	AuthSecret  string
	CORSOrigins []string

	// Telegram Config
	TelegramBotToken     string
	TelegramAllowUserIDs []int64
}

// NewFromEnv creates a new Config object from environment variables.
// Everything has a workable default: without MEALER_DB_PATH state is kept in
// memory, and without MEALER_AUTH_SECRET requests are served unauthenticated
// under a shared default user.
func NewFromEnv() (*Config, error) {
	listenAddr := os.Getenv("MEALER_ADDR")
	if listenAddr == "" {
		listenAddr = ":5000"
	}

	corsOrigins := []string{"*"}
	if raw := os.Getenv("MEALER_CORS_ORIGINS"); raw != "" {
		corsOrigins = nil
		for _, origin := range strings.Split(raw, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				corsOrigins = append(corsOrigins, origin)
			}
		}
	}

	// Telegram Config (only required when running the bot)
	var allowUserIDs []int64
	if raw := os.Getenv("TELEGRAM_ALLOW_USER_IDS"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := strconv.ParseInt(part, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("TELEGRAM_ALLOW_USER_IDS contains invalid user id %q", part)
			}
			allowUserIDs = append(allowUserIDs, id)
		}
	}

	return &Config{
		ListenAddr:           listenAddr,
		DBPath:               os.Getenv("MEALER_DB_PATH"),
		AuthSecret:           os.Getenv("MEALER_AUTH_SECRET"),
		CORSOrigins:          corsOrigins,
		TelegramBotToken:     os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramAllowUserIDs: allowUserIDs,
	}, nil
}
