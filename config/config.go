package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ironman07017-lang/vibeosys-inventory/internal/idgen"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

type Config struct {
	HTTPPort       string `envconfig:"HTTP_PORT"       default:":8081"`
	LogLevel       string `envconfig:"LOG_LEVEL"       default:"info"`
	IDStrategy     string `envconfig:"ID_STRATEGY"     default:"counter"` // counter or uuid
	SeedDemoData   bool   `envconfig:"SEED_DEMO_DATA"  default:"true"`
	CurrencySymbol string `envconfig:"CURRENCY_SYMBOL" default:"₹"`
	DisplayLocale  string `envconfig:"DISPLAY_LOCALE"  default:"en"`
	DateLayout     string `envconfig:"DATE_LAYOUT"     default:"02 Jan 2006"`
	MetricsEnabled bool   `envconfig:"METRICS_ENABLED" default:"true"`

	SessionIdleTTL time.Duration `envconfig:"SESSION_IDLE_TTL" default:"30m"` // 0 disables expiry
}

// LoadConfig reads an optional .env file, then the process environment.
func LoadConfig(logger *logrus.Logger) (*Config, error) {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		logger.Warnf("Error loading .env file (but continuing): %v", err)
	} else if err == nil {
		logger.Info("Loaded configuration from .env file")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process configuration from environment variables: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	logger.Infof("Configuration loaded: HTTP Port=%s, LogLevel=%s, IDStrategy=%s, SeedDemoData=%t",
		cfg.HTTPPort, cfg.LogLevel, cfg.IDStrategy, cfg.SeedDemoData)
	return &cfg, nil
}

func (c *Config) validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("configuration error: LOG_LEVEL: %w", err)
	}
	if _, err := idgen.New(c.IDStrategy); err != nil {
		return fmt.Errorf("configuration error: ID_STRATEGY: %w", err)
	}
	if c.SessionIdleTTL < 0 {
		return fmt.Errorf("configuration error: SESSION_IDLE_TTL must not be negative")
	}
	if c.HTTPPort == "" {
		return fmt.Errorf("configuration error: HTTP_PORT is empty")
	}
	return nil
}

// Level returns the configured log level; LoadConfig has validated it.
func (c *Config) Level() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}
