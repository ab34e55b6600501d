package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds everything the process reads from the environment.
type Config struct {
	App         AppConfig
	HTTP        HTTPConfig
	Seed        SeedConfig
	OpenLibrary OpenLibraryConfig
	Log         LogConfig
}

type AppConfig struct {
	Environment string // development, production
}

type HTTPConfig struct {
	Addr           string
	AllowedOrigins []string
	RateLimitRPS   float64
	RateLimitBurst int
	MaxBodyBytes   int64
}

type SeedConfig struct {
	File   string // YAML seed; empty means none
	Sample bool   // load the built-in sample books
}

type OpenLibraryConfig struct {
	Subjects   []string // empty disables the import
	BooksMax   int
	RPS        int
	MaxRetries int
	UserAgent  string
}

type LogConfig struct {
	Level  string
	Format string // json or console
}

// LoadEnvFiles reads .env and .env.local. Variables already present in the
// environment win.
func LoadEnvFiles() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}

// Load builds a Config from the environment.
func Load() (*Config, error) {
	rps, err := getEnvFloat("RATE_LIMIT_RPS", 20)
	if err != nil {
		return nil, err
	}
	burst, err := getEnvInt("RATE_LIMIT_BURST", 40)
	if err != nil {
		return nil, err
	}
	maxBody, err := getEnvInt("MAX_BODY_BYTES", 1<<20)
	if err != nil {
		return nil, err
	}
	sample, err := getEnvBool("SEED_SAMPLE", true)
	if err != nil {
		return nil, err
	}
	booksMax, err := getEnvInt("OPENLIBRARY_BOOKS_MAX", 25)
	if err != nil {
		return nil, err
	}
	olRPS, err := getEnvInt("OPENLIBRARY_RPS", 1)
	if err != nil {
		return nil, err
	}
	olRetries, err := getEnvInt("OPENLIBRARY_MAX_RETRIES", 2)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
		},
		HTTP: HTTPConfig{
			Addr:           getEnv("APP_ADDR", ":8080"),
			AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000")),
			RateLimitRPS:   rps,
			RateLimitBurst: burst,
			MaxBodyBytes:   int64(maxBody),
		},
		Seed: SeedConfig{
			File:   getEnv("SEED_FILE", ""),
			Sample: sample,
		},
		OpenLibrary: OpenLibraryConfig{
			Subjects:   splitList(getEnv("OPENLIBRARY_SUBJECTS", "")),
			BooksMax:   booksMax,
			RPS:        olRPS,
			MaxRetries: olRetries,
			UserAgent:  getEnv("OPENLIBRARY_USER_AGENT", "booklibrary/1.0"),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "console"),
		},
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.HTTP.RateLimitRPS <= 0 {
		errs = append(errs, errors.New("RATE_LIMIT_RPS must be positive"))
	}
	if c.HTTP.RateLimitBurst <= 0 {
		errs = append(errs, errors.New("RATE_LIMIT_BURST must be positive"))
	}
	if c.HTTP.MaxBodyBytes <= 0 {
		errs = append(errs, errors.New("MAX_BODY_BYTES must be positive"))
	}
	if c.OpenLibrary.RPS <= 0 {
		errs = append(errs, errors.New("OPENLIBRARY_RPS must be positive"))
	}
	if c.OpenLibrary.MaxRetries < 0 {
		errs = append(errs, errors.New("OPENLIBRARY_MAX_RETRIES must not be negative"))
	}
	if c.Log.Format != "json" && c.Log.Format != "console" {
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Log.Format))
	}
	return errors.Join(errs...)
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func getEnvFloat(key string, def float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return f, nil
}

func getEnvBool(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
