// Package config loads application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	ListenAddr    string
	DBPath        string
	DefaultLocale string
	Location      *time.Location
	LogLevel      slog.Level
	LogFormat     string
}

// Load reads configuration from environment variables and returns a validated
// Config. Variables already set in the environment win over values from the
// env files; with no files given, a .env in the working directory is read if
// present. Optional variables with defaults: REVIEWREPORT_LISTEN_ADDR
// (127.0.0.1:8080), REVIEWREPORT_DB_PATH (reviewreport.db),
// REVIEWREPORT_DEFAULT_LOCALE (en), REVIEWREPORT_TIMEZONE (UTC),
// REVIEWREPORT_LOG_LEVEL (info), REVIEWREPORT_LOG_FORMAT (text).
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		if len(envFiles) > 0 || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load env file: %w", err)
		}
	}

	listenAddr := "127.0.0.1:8080"
	if v, ok := os.LookupEnv("REVIEWREPORT_LISTEN_ADDR"); ok {
		listenAddr = v
	}

	dbPath := "reviewreport.db"
	if v, ok := os.LookupEnv("REVIEWREPORT_DB_PATH"); ok {
		dbPath = v
	}

	defaultLocale := "en"
	if v, ok := os.LookupEnv("REVIEWREPORT_DEFAULT_LOCALE"); ok && v != "" {
		defaultLocale = v
	}

	location := time.UTC
	if v, ok := os.LookupEnv("REVIEWREPORT_TIMEZONE"); ok && v != "" {
		loc, err := time.LoadLocation(v)
		if err != nil {
			return nil, fmt.Errorf("REVIEWREPORT_TIMEZONE has invalid location %q: %w", v, err)
		}
		location = loc
	}

	logLevel := slog.LevelInfo
	if v, ok := os.LookupEnv("REVIEWREPORT_LOG_LEVEL"); ok && v != "" {
		if err := logLevel.UnmarshalText([]byte(v)); err != nil {
			return nil, fmt.Errorf("REVIEWREPORT_LOG_LEVEL has invalid level %q: %w", v, err)
		}
	}

	logFormat := "text"
	if v, ok := os.LookupEnv("REVIEWREPORT_LOG_FORMAT"); ok && v != "" {
		logFormat = strings.ToLower(v)
		if logFormat != "text" && logFormat != "json" {
			return nil, fmt.Errorf("REVIEWREPORT_LOG_FORMAT must be text or json, got %q", v)
		}
	}

	return &Config{
		ListenAddr:    listenAddr,
		DBPath:        dbPath,
		DefaultLocale: defaultLocale,
		Location:      location,
		LogLevel:      logLevel,
		LogFormat:     logFormat,
	}, nil
}
