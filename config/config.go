package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ErrMissingConfig is returned by Validate when a required setting is absent.
var ErrMissingConfig = errors.New("missing required configuration")

// Result shapes understood by the search service.
const (
	ResultShapeFull   = "full"
	ResultShapeLegacy = "legacy"
)

// Config holds all configuration values.
type Config struct {
	AppPort  string `mapstructure:"APP_PORT"`
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// Amadeus credentials and endpoint.
	AmadeusAPIKey    string        `mapstructure:"AMADEUS_API_KEY"`
	AmadeusAPISecret string        `mapstructure:"AMADEUS_API_SECRET"`
	AmadeusBaseURL   string        `mapstructure:"AMADEUS_BASE_URL"`
	UpstreamTimeout  time.Duration `mapstructure:"UPSTREAM_TIMEOUT"`

	// Comma-separated list of origins allowed by CORS. Empty allows every origin.
	CORSAllowedOrigins string `mapstructure:"CORS_ALLOWED_ORIGINS"`

	ResultShape string `mapstructure:"RESULT_SHAPE"`

	// OTLP/HTTP collector, host:port. Empty disables span export.
	OTelExporterEndpoint string `mapstructure:"OTEL_EXPORTER_ENDPOINT"`
}

var AppConfig Config

// LoadConfig populates AppConfig or terminates the process.
func LoadConfig() {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	AppConfig = cfg
}

// Load reads configuration from an optional config.yaml and the environment.
func Load() (Config, error) {
	v := viper.New()

	// Look for a config file named "config.yaml" in the current and "config" directory.
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()

	// PORT is what most PaaS hosts inject.
	if err := v.BindEnv("APP_PORT", "APP_PORT", "PORT"); err != nil {
		return Config{}, err
	}

	v.SetDefault("APP_PORT", "3000")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("AMADEUS_API_KEY", "")
	v.SetDefault("AMADEUS_API_SECRET", "")
	v.SetDefault("AMADEUS_BASE_URL", "https://test.api.amadeus.com")
	v.SetDefault("UPSTREAM_TIMEOUT", "10s")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "")
	v.SetDefault("RESULT_SHAPE", ResultShapeFull)
	v.SetDefault("OTEL_EXPORTER_ENDPOINT", "")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
		log.Println("No config file found, using environment variables only")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}

// Validate checks the settings the service cannot start without.
func (c Config) Validate() error {
	var missing []string
	if c.AmadeusAPIKey == "" {
		missing = append(missing, "AMADEUS_API_KEY")
	}
	if c.AmadeusAPISecret == "" {
		missing = append(missing, "AMADEUS_API_SECRET")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingConfig, strings.Join(missing, ", "))
	}

	switch c.ResultShape {
	case ResultShapeFull, ResultShapeLegacy:
	default:
		return fmt.Errorf("invalid RESULT_SHAPE %q: want %q or %q", c.ResultShape, ResultShapeFull, ResultShapeLegacy)
	}
	for _, origin := range c.AllowedOrigins() {
		if origin != "*" && !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return fmt.Errorf("invalid CORS origin %q: must be * or start with http:// or https://", origin)
		}
	}
	if c.UpstreamTimeout <= 0 {
		return fmt.Errorf("invalid UPSTREAM_TIMEOUT %s: must be positive", c.UpstreamTimeout)
	}
	return nil
}

// AllowedOrigins splits CORSAllowedOrigins into a clean list.
func (c Config) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSAllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
