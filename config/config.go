package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Recognition provider names
const (
	ProviderRemote    = "remote"
	ProviderTesseract = "tesseract"
)

// Config holds all configuration for the application
type Config struct {
	Server       ServerConfig
	Recognition  RecognitionConfig
	Cache        CacheConfig
	RateLimit    RateLimitConfig
	Verification VerificationConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// RecognitionConfig holds text-recognition provider configuration
type RecognitionConfig struct {
	Provider  string   `mapstructure:"provider"` // "remote" or "tesseract"
	APIKey    string   `mapstructure:"api_key"`
	BaseURL   string   `mapstructure:"base_url"`
	Languages []string `mapstructure:"languages"` // tesseract trained-data hints
}

// CacheConfig holds recognition-cache configuration
type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIP    int `mapstructure:"per_ip"`   // requests per minute per client IP
	Provider int `mapstructure:"provider"` // requests per hour to the recognition provider
}

// VerificationConfig holds verification policy configuration
type VerificationConfig struct {
	RequireWarning     bool `mapstructure:"require_warning"`
	EnableDebugLogging bool `mapstructure:"debug_logging"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/labelproof/")

	// Environment variable settings
	v.SetEnvPrefix("LABELPROOF")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	// Recognition defaults. The api_key default is empty but must be
	// registered: AutomaticEnv only surfaces env values for keys viper
	// already knows about, so without it LABELPROOF_RECOGNITION_API_KEY
	// would never reach Unmarshal.
	v.SetDefault("recognition.provider", ProviderRemote)
	v.SetDefault("recognition.api_key", "")
	v.SetDefault("recognition.base_url", "https://recognition.labelproof.io")
	v.SetDefault("recognition.languages", []string{"eng"})

	// Cache defaults
	v.SetDefault("cache.ttl", "24h")

	// Rate limit defaults
	v.SetDefault("ratelimit.per_ip", 60)
	v.SetDefault("ratelimit.provider", 3600)

	// Verification defaults
	v.SetDefault("verification.require_warning", false)
	v.SetDefault("verification.debug_logging", false)
}

// validate validates the configuration
func validate(config *Config) error {
	switch config.Recognition.Provider {
	case ProviderRemote:
		if config.Recognition.APIKey == "" {
			return fmt.Errorf("recognition API key is required for the remote provider (set LABELPROOF_RECOGNITION_API_KEY)")
		}
		if config.Recognition.BaseURL == "" {
			return fmt.Errorf("recognition base URL is required for the remote provider")
		}
	case ProviderTesseract:
		// Local engine needs no credentials
	default:
		return fmt.Errorf("recognition provider must be %q or %q, got: %s", ProviderRemote, ProviderTesseract, config.Recognition.Provider)
	}

	if config.Cache.TTL <= 0 {
		return fmt.Errorf("cache TTL must be positive, got: %s", config.Cache.TTL)
	}

	if config.RateLimit.PerIP <= 0 {
		return fmt.Errorf("per-IP rate limit must be positive, got: %d", config.RateLimit.PerIP)
	}

	if config.RateLimit.Provider <= 0 {
		return fmt.Errorf("provider rate limit must be positive, got: %d", config.RateLimit.Provider)
	}

	return nil
}
