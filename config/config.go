package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultHTTPAddr        = ":8000"
	DefaultTimezone        = "Asia/Almaty"
	DefaultJWTTTL          = 24 * time.Hour
	DefaultMaxOccurrences  = 5000
	DefaultAPIBaseURL      = "http://127.0.0.1:8000"
	DefaultAuthRatePerSec  = 5
	DefaultAuthRateBurst   = 10
	DefaultAllowedOrigin   = "*"
	developmentEnvironment = "development"
)

// Config struct to hold the configuration settings
type Config struct {
	Postgres      PostgresConfig      `yaml:"postgres"`
	HTTP          HTTPConfig          `yaml:"http"`
	JWT           JWTConfig           `yaml:"jwt"`
	Auth          AuthConfig          `yaml:"auth"`
	Calendar      CalendarConfig      `yaml:"calendar"`
	Observability ObservabilityConfig `yaml:"observability"`
}

// PostgresConfig holds Postgres configuration.
type PostgresConfig struct {
	DSN string `yaml:"dsn"`
}

// HTTPConfig holds the API listener configuration.
type HTTPConfig struct {
	Addr           string   `yaml:"addr"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	StaticDir      string   `yaml:"static_dir"`
}

// JWTConfig holds JWT configuration.
type JWTConfig struct {
	Secret     string        `yaml:"secret"`
	DefaultTTL time.Duration `yaml:"default_ttl"`
}

// AuthConfig holds Telegram login and bot endpoint secrets.
type AuthConfig struct {
	BotToken       string        `yaml:"bot_token"`
	BotAdminToken  string        `yaml:"bot_admin_token"`
	InitDataMaxAge time.Duration `yaml:"init_data_max_age"`
	RatePerSecond  float64       `yaml:"rate_per_second"`
	RateBurst      int           `yaml:"rate_burst"`
}

// CalendarConfig holds calendar behaviour settings.
type CalendarConfig struct {
	Timezone       string `yaml:"timezone"`
	MaxOccurrences int    `yaml:"max_occurrences"`
}

// ObservabilityConfig holds configuration for observability components
type ObservabilityConfig struct {
	Environment    string `yaml:"environment"`
	LogLevel       string `yaml:"log_level"`
	MetricsAddress string `yaml:"metrics_address"`
}

// IsDevelopment reports whether the service runs in the development environment.
func (o ObservabilityConfig) IsDevelopment() bool {
	return o.Environment == developmentEnvironment
}

// Location resolves the configured application timezone.
func (c CalendarConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// LoadConfig loads the configuration from a YAML file. A .env file in the
// working directory is loaded into the environment first.
func LoadConfig(filename string) (*Config, error) {
	_ = godotenv.Load()

	// Try reading configuration from the file first
	data, err := os.ReadFile(filename)
	if err != nil {
		// If the file is not found, try loading from environment variables
		return loadConfigFromEnv()
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)

	return &cfg, nil
}

// loadConfigFromEnv loads the configuration from environment variables.
func loadConfigFromEnv() (*Config, error) {
	var cfg Config

	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}
	if cfg.Postgres.DSN == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable not set")
	}
	applyDefaults(&cfg)

	return &cfg, nil
}

// applyEnv overrides cfg with any environment variables that are set.
func applyEnv(cfg *Config) error {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Postgres.DSN = v
	}
	if v := os.Getenv("HTTP_ADDR"); v != "" {
		cfg.HTTP.Addr = v
	}
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		cfg.HTTP.AllowedOrigins = splitList(v)
	}
	if v := os.Getenv("STATIC_DIR"); v != "" {
		cfg.HTTP.StaticDir = v
	}
	if v := os.Getenv("BOT_TOKEN"); v != "" {
		cfg.Auth.BotToken = v
	}
	if v := os.Getenv("BOT_ADMIN_TOKEN"); v != "" {
		cfg.Auth.BotAdminToken = v
	}
	if v := os.Getenv("INIT_DATA_MAX_AGE"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid INIT_DATA_MAX_AGE value: %w", err)
		}
		cfg.Auth.InitDataMaxAge = d
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.JWT.Secret = v
	}
	if v := os.Getenv("JWT_DEFAULT_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid JWT_DEFAULT_TTL value: %w", err)
		}
		cfg.JWT.DefaultTTL = d
	}
	// JWT_EXPIRES_MINUTES wins over JWT_DEFAULT_TTL when both are set.
	if v := os.Getenv("JWT_EXPIRES_MINUTES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid JWT_EXPIRES_MINUTES value: %w", err)
		}
		cfg.JWT.DefaultTTL = time.Duration(n) * time.Minute
	}
	if v := os.Getenv("APP_TZ"); v != "" {
		cfg.Calendar.Timezone = v
	}
	if v := os.Getenv("ENV"); v != "" {
		cfg.Observability.Environment = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Observability.LogLevel = v
	}
	if v := os.Getenv("METRICS_ADDRESS"); v != "" {
		cfg.Observability.MetricsAddress = v
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.HTTP.Addr == "" {
		cfg.HTTP.Addr = DefaultHTTPAddr
	}
	if len(cfg.HTTP.AllowedOrigins) == 0 {
		cfg.HTTP.AllowedOrigins = []string{DefaultAllowedOrigin}
	}
	if cfg.JWT.Secret == "" {
		cfg.JWT.Secret = "change-me"
	}
	if cfg.JWT.DefaultTTL <= 0 {
		cfg.JWT.DefaultTTL = DefaultJWTTTL
	}
	if cfg.Calendar.Timezone == "" {
		cfg.Calendar.Timezone = DefaultTimezone
	}
	if cfg.Calendar.MaxOccurrences <= 0 {
		cfg.Calendar.MaxOccurrences = DefaultMaxOccurrences
	}
	if cfg.Auth.RatePerSecond <= 0 {
		cfg.Auth.RatePerSecond = DefaultAuthRatePerSec
	}
	if cfg.Auth.RateBurst <= 0 {
		cfg.Auth.RateBurst = DefaultAuthRateBurst
	}
	if cfg.Observability.LogLevel == "" {
		cfg.Observability.LogLevel = "info"
	}
}

// BotConfig holds the Telegram relay settings.
type BotConfig struct {
	APIBaseURL string
	Token      string
	AdminToken string
	AdminIDs   []int64
	VerifySSL  bool
	LogLevel   string
}

// LoadBotConfig reads the relay settings from the environment (and .env).
func LoadBotConfig() (*BotConfig, error) {
	_ = godotenv.Load()

	cfg := &BotConfig{
		APIBaseURL: strings.TrimRight(os.Getenv("API_BASE_URL"), "/"),
		Token:      os.Getenv("TELEGRAM_BOT_TOKEN"),
		AdminToken: os.Getenv("BOT_ADMIN_TOKEN"),
		VerifySSL:  true,
		LogLevel:   os.Getenv("LOG_LEVEL"),
	}
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = DefaultAPIBaseURL
	}
	if cfg.Token == "" {
		cfg.Token = os.Getenv("BOT_TOKEN")
	}
	if v := strings.ToLower(strings.TrimSpace(os.Getenv("API_VERIFY_SSL"))); v == "0" || v == "false" || v == "no" {
		cfg.VerifySSL = false
	}
	cfg.AdminIDs = parseAdminIDs(os.Getenv("BOT_ADMIN_IDS"))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings the relay cannot start without.
func (c *BotConfig) Validate() error {
	switch {
	case c.Token == "":
		return errors.New("TELEGRAM_BOT_TOKEN is required")
	case c.AdminToken == "":
		return errors.New("BOT_ADMIN_TOKEN is required")
	case len(c.AdminIDs) == 0:
		return errors.New("BOT_ADMIN_IDS is required")
	}
	return nil
}

// parseAdminIDs keeps only purely numeric entries.
func parseAdminIDs(raw string) []int64 {
	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" || strings.Trim(part, "0123456789") != "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
