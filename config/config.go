package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"shareit/pkg/postgres"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage
	Postgres postgres.Config

	// HTTP policies
	RateLimit RateLimitConfig
	Cache     CacheConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	PerMin           int
	Burst            int
	ClientSize       int
	ClientTTLSeconds int
}

type CacheConfig struct {
	UserSize       int
	UserTTLSeconds int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/shareit/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/shareit/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Postgres
	cfg.Postgres.Host = viper.GetString("postgres.host")
	cfg.Postgres.Port = viper.GetInt("postgres.port")
	cfg.Postgres.User = viper.GetString("postgres.user")
	cfg.Postgres.Password = viper.GetString("postgres.password")
	cfg.Postgres.Database = viper.GetString("postgres.database")
	cfg.Postgres.SSLMode = viper.GetString("postgres.sslmode")
	cfg.Postgres.MaxConns = viper.GetInt32("postgres.max_conns")

	// Rate limiting
	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")
	cfg.RateLimit.Burst = viper.GetInt("rate_limit.burst")
	cfg.RateLimit.ClientSize = viper.GetInt("rate_limit.client_size")
	cfg.RateLimit.ClientTTLSeconds = viper.GetInt("rate_limit.client_ttl_seconds")

	// Identity cache
	cfg.Cache.UserSize = viper.GetInt("cache.user_size")
	cfg.Cache.UserTTLSeconds = viper.GetInt("cache.user_ttl_seconds")

	if cfg.Postgres.Database == "" {
		return nil, fmt.Errorf("postgres.database is required")
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.user", "shareit")
	viper.SetDefault("postgres.database", "shareit")
	viper.SetDefault("postgres.sslmode", "disable")
	viper.SetDefault("postgres.max_conns", 10)

	viper.SetDefault("rate_limit.per_min", 600)
	viper.SetDefault("rate_limit.burst", 60)
	viper.SetDefault("rate_limit.client_size", 4096)
	viper.SetDefault("rate_limit.client_ttl_seconds", 600)

	viper.SetDefault("cache.user_size", 4096)
	viper.SetDefault("cache.user_ttl_seconds", 30)
}
