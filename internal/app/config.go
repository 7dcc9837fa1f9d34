package app

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Round store backends
const (
	RoundStoreMemory   = "memory"
	RoundStorePostgres = "postgres"
	RoundStoreSheets   = "sheets"
)

// Bag store backends
const (
	BagStoreMemory = "memory"
	BagStoreRedis  = "redis"
	BagStoreSQLite = "sqlite"
)

// Config holds application configuration
type Config struct {
	HTTPAddr        string
	RoundStore      string
	DatabaseURL     string
	SpreadsheetID   string
	CredentialsFile string
	BagStore        string
	RedisAddr       string
	SQLitePath      string
	RoundCacheTTL   time.Duration
	TrendWindow     int
	AllowedOrigins  []string
}

// SetupEnvironment loads .env file and configures zerolog output and log level.
func SetupEnvironment() {
	err := godotenv.Load()

	if os.Getenv("ENV") == "production" {
		zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
		log.Logger = log.Output(os.Stderr)
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	levelStr := strings.ToLower(os.Getenv("LOGLEVEL"))
	switch levelStr {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn", "warning":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case "disabled":
		zerolog.SetGlobalLevel(zerolog.Disabled)
	case "":
		if os.Getenv("ENV") == "production" {
			zerolog.SetGlobalLevel(zerolog.WarnLevel)
		} else {
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
		}
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		log.Warn().Msgf("Unknown LOGLEVEL '%s', defaulting to info.", levelStr)
	}

	// wait until now to report on the .env file so we have the chance to set up logging first
	if err == nil {
		log.Debug().Msg("Loaded environment variables from .env file.")
	} else {
		log.Debug().Msg("No .env file found or error loading .env file; proceeding with existing environment variables.")
	}
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	config := &Config{
		HTTPAddr:        getEnv("HTTP_ADDR", ":8080"),
		RoundStore:      strings.ToLower(getEnv("ROUND_STORE", RoundStoreMemory)),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		SpreadsheetID:   os.Getenv("SPREADSHEET_ID"),
		CredentialsFile: getEnv("GOOGLE_CREDENTIALS_FILE", "credentials.json"),
		BagStore:        strings.ToLower(getEnv("BAG_STORE", BagStoreMemory)),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		SQLitePath:      getEnv("SQLITE_PATH", "golfapp.db"),
		RoundCacheTTL:   time.Minute,
		TrendWindow:     3,
		AllowedOrigins:  splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
	}

	switch config.RoundStore {
	case RoundStoreMemory:
	case RoundStorePostgres:
		if config.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL environment variable is required when ROUND_STORE=%s", RoundStorePostgres)
		}
	case RoundStoreSheets:
		if config.SpreadsheetID == "" {
			return nil, fmt.Errorf("SPREADSHEET_ID environment variable is required when ROUND_STORE=%s", RoundStoreSheets)
		}
	default:
		return nil, fmt.Errorf("unsupported ROUND_STORE %q", config.RoundStore)
	}

	switch config.BagStore {
	case BagStoreMemory, BagStoreRedis, BagStoreSQLite:
	default:
		return nil, fmt.Errorf("unsupported BAG_STORE %q", config.BagStore)
	}

	if raw := os.Getenv("ROUND_CACHE_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil || ttl < 0 {
			return nil, fmt.Errorf("invalid ROUND_CACHE_TTL %q", raw)
		}
		config.RoundCacheTTL = ttl
	}

	if raw := os.Getenv("TREND_WINDOW"); raw != "" {
		window, err := strconv.Atoi(raw)
		if err != nil || window < 2 {
			return nil, fmt.Errorf("TREND_WINDOW must be an integer >= 2, got %q", raw)
		}
		config.TrendWindow = window
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
