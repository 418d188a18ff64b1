package config

import (
	"log"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"github.com/ulule/limiter/v3"
)

// Config holds application configuration.
type Config struct {
	DataFile               string
	Port                   string
	IsProduction           bool
	DefaultTaxPercent      decimal.Decimal
	DefaultDiscountPercent decimal.Decimal
	SeedDemoRooms          bool
	RateLimit              string
	CORSAllowedOrigins     []string
	LogLevel               slog.Level
	LogFormat              string // "json" or "text"
}

const (
	defaultDataFile        = "bookings.csv"
	defaultPort            = "8080"
	defaultTaxPercent      = "5"
	defaultDiscountPercent = "0"
	defaultRateLimit       = "120-M"
	defaultLogFormat       = "json"
)

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("DATA_FILE", defaultDataFile)
	v.SetDefault("PORT", defaultPort)
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("DEFAULT_TAX_PERCENT", defaultTaxPercent)
	v.SetDefault("DEFAULT_DISCOUNT_PERCENT", defaultDiscountPercent)
	v.SetDefault("SEED_DEMO_ROOMS", true)
	v.SetDefault("RATE_LIMIT", defaultRateLimit)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", defaultLogFormat)

	// Environment variables override defaults and .env values.
	v.AutomaticEnv()

	cfg := &Config{}

	cfg.DataFile = strings.TrimSpace(v.GetString("DATA_FILE"))
	if cfg.DataFile == "" {
		cfg.DataFile = defaultDataFile
		log.Printf("Warning: DATA_FILE is empty. Defaulting to %s\n", cfg.DataFile)
	}

	cfg.Port = strings.TrimSpace(v.GetString("PORT"))
	if cfg.Port == "" {
		cfg.Port = defaultPort
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = v.GetBool("IS_PRODUCTION")
	cfg.SeedDemoRooms = v.GetBool("SEED_DEMO_ROOMS")

	cfg.DefaultTaxPercent = percentOrDefault("DEFAULT_TAX_PERCENT", v.GetString("DEFAULT_TAX_PERCENT"), defaultTaxPercent)
	cfg.DefaultDiscountPercent = percentOrDefault("DEFAULT_DISCOUNT_PERCENT", v.GetString("DEFAULT_DISCOUNT_PERCENT"), defaultDiscountPercent)

	cfg.RateLimit = strings.TrimSpace(v.GetString("RATE_LIMIT"))
	if _, err := limiter.NewRateFromFormatted(cfg.RateLimit); err != nil {
		log.Printf("Warning: Invalid value for RATE_LIMIT ('%s'). Defaulting to %s.\n", cfg.RateLimit, defaultRateLimit)
		cfg.RateLimit = defaultRateLimit
	}

	cfg.CORSAllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))

	levelStr := v.GetString("LOG_LEVEL")
	if err := cfg.LogLevel.UnmarshalText([]byte(levelStr)); err != nil {
		log.Printf("Warning: Invalid value for LOG_LEVEL ('%s'). Defaulting to info.\n", levelStr)
		cfg.LogLevel = slog.LevelInfo
	}

	cfg.LogFormat = strings.ToLower(strings.TrimSpace(v.GetString("LOG_FORMAT")))
	if cfg.LogFormat != "json" && cfg.LogFormat != "text" {
		log.Printf("Warning: Invalid value for LOG_FORMAT ('%s'). Defaulting to %s.\n", cfg.LogFormat, defaultLogFormat)
		cfg.LogFormat = defaultLogFormat
	}

	return cfg, nil
}

func percentOrDefault(key, raw, fallback string) decimal.Decimal {
	pct, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || pct.IsNegative() {
		log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback)
		return decimal.RequireFromString(fallback)
	}
	return pct
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
