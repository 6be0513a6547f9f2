// Package common provides shared utilities for the valuation agent
package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all configuration for the valuation agent
type Config struct {
	Environment string          `toml:"environment"`
	Server      ServerConfig    `toml:"server"`
	Storage     StorageConfig   `toml:"storage"`
	Clients     ClientsConfig   `toml:"clients"`
	Valuation   ValuationConfig `toml:"valuation"`
	Logging     LoggingConfig   `toml:"logging"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host string `toml:"host" validate:"required"`
	Port int    `toml:"port" validate:"gte=1,lte=65535"`
}

// StorageConfig holds the fundamentals cache configuration
type StorageConfig struct {
	Path     string `toml:"path" validate:"required"`
	CacheTTL string `toml:"cache_ttl"`
}

// GetCacheTTL parses and returns the cache TTL duration
func (c *StorageConfig) GetCacheTTL() time.Duration {
	d, err := time.ParseDuration(c.CacheTTL)
	if err != nil {
		return time.Hour
	}
	return d
}

// ClientsConfig holds API client configurations
type ClientsConfig struct {
	EODHD EODHDConfig `toml:"eodhd"`
}

// EODHDConfig holds EODHD API configuration
type EODHDConfig struct {
	BaseURL   string `toml:"base_url" validate:"required,url"`
	APIKey    string `toml:"api_key"`
	RateLimit int    `toml:"rate_limit" validate:"gte=1"`
	Timeout   string `toml:"timeout"`
}

// GetTimeout parses and returns the timeout duration
func (c *EODHDConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// ValuationConfig holds the model assumptions for the DCF and blending
// stages. Weights must sum to 1 before renormalization over available
// methods.
type ValuationConfig struct {
	RiskFreeRate      float64 `toml:"risk_free_rate" validate:"gte=0,lte=0.2"`
	EquityRiskPremium float64 `toml:"equity_risk_premium" validate:"gte=0,lte=0.2"`
	TerminalGrowth    float64 `toml:"terminal_growth" validate:"gte=0,lte=0.1"`
	ProjectionYears   int     `toml:"projection_years" validate:"gte=1,lte=20"`
	TaxRate           float64 `toml:"tax_rate" validate:"gte=0,lte=1"`
	FallbackGrowth    float64 `toml:"fallback_growth" validate:"gte=0"`
	MinFCFGrowth      float64 `toml:"min_fcf_growth"`
	MaxFCFGrowth      float64 `toml:"max_fcf_growth" validate:"gtefield=MinFCFGrowth"`
	DCFWeight         float64 `toml:"dcf_weight" validate:"gte=0,lte=1"`
	RelativeWeight    float64 `toml:"relative_weight" validate:"gte=0,lte=1"`
	DCFBandPct        float64 `toml:"dcf_band_pct" validate:"gt=0,lte=0.5"`
	MultipleBandPct   float64 `toml:"multiple_band_pct" validate:"gt=0,lte=0.5"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `toml:"level" validate:"oneof=debug info warn error"`
	Format string `toml:"format"`
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Storage: StorageConfig{
			Path:     "data/cache",
			CacheTTL: "1h",
		},
		Clients: ClientsConfig{
			EODHD: EODHDConfig{
				BaseURL:   "https://eodhd.com/api",
				RateLimit: 10,
				Timeout:   "30s",
			},
		},
		Valuation: ValuationConfig{
			RiskFreeRate:      0.045,
			EquityRiskPremium: 0.055,
			TerminalGrowth:    0.025,
			ProjectionYears:   5,
			TaxRate:           0.21,
			FallbackGrowth:    0.05,
			MinFCFGrowth:      0.02,
			MaxFCFGrowth:      0.20,
			DCFWeight:         0.5,
			RelativeWeight:    0.5,
			DCFBandPct:        0.15,
			MultipleBandPct:   0.10,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// LoadConfig loads configuration from files with environment overrides
func LoadConfig(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	// Load and merge each config file in order (later files override earlier)
	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue // Skip missing files
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks the config against its struct tags plus the cross-field
// constraints the tags cannot express.
func (c *Config) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	weightSum := c.Valuation.DCFWeight + c.Valuation.RelativeWeight
	if weightSum < 0.999 || weightSum > 1.001 {
		return fmt.Errorf("invalid configuration: dcf_weight and relative_weight must sum to 1, got %.3f", weightSum)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("VALUATION_ENV"); env != "" {
		config.Environment = env
	}

	if host := os.Getenv("VALUATION_HOST"); host != "" {
		config.Server.Host = host
	}

	if port := os.Getenv("VALUATION_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}

	if level := os.Getenv("VALUATION_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}

	if path := os.Getenv("VALUATION_DATA_PATH"); path != "" {
		config.Storage.Path = path
	}

	if key := resolveAPIKeyEnv(); key != "" {
		config.Clients.EODHD.APIKey = key
	}
}

// resolveAPIKeyEnv checks the supported API key environment variables in
// priority order.
func resolveAPIKeyEnv() string {
	for _, name := range []string{"EODHD_API_KEY", "VALUATION_EODHD_API_KEY"} {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	env := strings.ToLower(strings.TrimSpace(c.Environment))
	return env == "production" || env == "prod"
}
