package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// Example ENV equivalent:
//
//	SERVER_PORT=8080
//	HOLIDAYS_TIMEZONE=Europe/Paris
//	RATE_LIMIT_PER_MINUTE=60
//	REQUEST_TIMEOUT=10s
//	RANGE_PARALLELISM=4
type Config struct {
	Server   ServerConfig   // HTTP server configuration
	Holidays HolidaysConfig // Holiday engine boundary settings
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port               string        // The TCP port the HTTP server will listen on (e.g., "8080")
	RateLimitPerMinute int           // Requests allowed per client IP per minute
	RequestTimeout     time.Duration // Per-request context deadline
}

// HolidaysConfig controls how caller input is turned into calendar dates.
//
// Fields:
//   - Timezone: IANA zone used to normalise timestamps and resolve "today".
//   - RangeParallelism: max years computed concurrently for range queries.
type HolidaysConfig struct {
	Timezone         string
	RangeParallelism int
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the application.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Fatal exit:
//   - If required variables are missing or invalid, validateConfig() terminates
//     the app with a descriptive log message.
func LoadConfig() {
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("RATE_LIMIT_PER_MINUTE", 60)
	viper.SetDefault("REQUEST_TIMEOUT", "10s")

	viper.SetDefault("HOLIDAYS_TIMEZONE", "Europe/Paris")
	viper.SetDefault("RANGE_PARALLELISM", 4)

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	viper.AutomaticEnv()

	AppConfig = Config{
		Server: ServerConfig{
			Port:               viper.GetString("SERVER_PORT"),
			RateLimitPerMinute: viper.GetInt("RATE_LIMIT_PER_MINUTE"),
			RequestTimeout:     viper.GetDuration("REQUEST_TIMEOUT"),
		},
		Holidays: HolidaysConfig{
			Timezone:         viper.GetString("HOLIDAYS_TIMEZONE"),
			RangeParallelism: viper.GetInt("RANGE_PARALLELISM"),
		},
	}

	validateConfig()
}

// problemsOf lists the keys that are missing or unusable in cfg.
func problemsOf(cfg Config) []string {
	var problems []string

	if cfg.Server.Port == "" {
		problems = append(problems, "SERVER_PORT")
	}
	if cfg.Server.RateLimitPerMinute <= 0 {
		problems = append(problems, "RATE_LIMIT_PER_MINUTE")
	}
	if cfg.Server.RequestTimeout <= 0 {
		problems = append(problems, "REQUEST_TIMEOUT")
	}
	if cfg.Holidays.Timezone == "" {
		problems = append(problems, "HOLIDAYS_TIMEZONE")
	} else if _, err := time.LoadLocation(cfg.Holidays.Timezone); err != nil {
		problems = append(problems, "HOLIDAYS_TIMEZONE (unknown zone "+cfg.Holidays.Timezone+")")
	}
	if cfg.Holidays.RangeParallelism <= 0 {
		problems = append(problems, "RANGE_PARALLELISM")
	}
	return problems
}

// validateConfig terminates the application if AppConfig is incomplete.
func validateConfig() {
	if problems := problemsOf(AppConfig); len(problems) > 0 {
		log.Fatalf("❌ Missing or invalid environment variables: %v\n", problems)
	}
}
