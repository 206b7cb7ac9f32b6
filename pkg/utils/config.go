package utils

import (
	"errors"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Backend   BackendConfig
	Pricing   PricingConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Name        string
	Port        string
	Debug       bool
	LogPath     string
	CORSOrigins []string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	MaxConns int32
}

// BackendConfig points at the REST backend that owns user packages.
type BackendConfig struct {
	BaseURL    string
	APIKey     string
	Timeout    time.Duration
	RatePerSec float64
	Burst      int
}

type PricingConfig struct {
	SettingsCacheTTL time.Duration
}

type RateLimitConfig struct {
	Enabled       bool
	RequestsPerMn int
	Burst         int
	IdleTTL       time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "cowork-booking")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("CORS_ORIGINS", "*")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_SSLMODE", "require")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("BACKEND_TIMEOUT", "8s")
	viper.SetDefault("BACKEND_RATE_PER_SEC", 20)
	viper.SetDefault("BACKEND_BURST", 40)
	viper.SetDefault("SETTINGS_CACHE_TTL", "5m")
	viper.SetDefault("RATE_LIMIT_ENABLED", true)
	viper.SetDefault("RATE_LIMIT_PER_MINUTE", 120)
	viper.SetDefault("RATE_LIMIT_BURST", 30)
	viper.SetDefault("RATE_LIMIT_IDLE_TTL", "10m")

	// .env is optional, the environment alone is enough in containers
	if err := viper.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:        viper.GetString("APP_NAME"),
			Port:        viper.GetString("PORT"),
			Debug:       viper.GetBool("DEBUG"),
			LogPath:     viper.GetString("LOG_PATH"),
			CORSOrigins: SplitCSV(viper.GetString("CORS_ORIGINS")),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			SSLMode:  viper.GetString("DB_SSLMODE"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Backend: BackendConfig{
			BaseURL:    viper.GetString("BACKEND_URL"),
			APIKey:     viper.GetString("BACKEND_API_KEY"),
			Timeout:    viper.GetDuration("BACKEND_TIMEOUT"),
			RatePerSec: viper.GetFloat64("BACKEND_RATE_PER_SEC"),
			Burst:      viper.GetInt("BACKEND_BURST"),
		},
		Pricing: PricingConfig{
			SettingsCacheTTL: viper.GetDuration("SETTINGS_CACHE_TTL"),
		},
		RateLimit: RateLimitConfig{
			Enabled:       viper.GetBool("RATE_LIMIT_ENABLED"),
			RequestsPerMn: viper.GetInt("RATE_LIMIT_PER_MINUTE"),
			Burst:         viper.GetInt("RATE_LIMIT_BURST"),
			IdleTTL:       viper.GetDuration("RATE_LIMIT_IDLE_TTL"),
		},
	}

	return config, nil
}
