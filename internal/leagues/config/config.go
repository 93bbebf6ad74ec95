package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

// RedisConfig holds the optional team-name cache settings. The cache is
// disabled unless REDIS_ENABLED is set; the backend runs fine without it.
type RedisConfig struct {
	Enabled  bool          `env:"REDIS_ENABLED" envDefault:"false"`
	Host     string        `env:"REDIS_HOST" envDefault:"localhost"`
	Port     string        `env:"REDIS_PORT" envDefault:"6379"`
	Password string        `env:"REDIS_PASSWORD"`
	Database int           `env:"REDIS_DATABASE" envDefault:"0"`
	CacheTTL time.Duration `env:"REDIS_CACHE_TTL" envDefault:"5m"`
}

// Addr returns the host:port address for the Redis client.
func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// Config holds all configuration for the leagues backend.
type Config struct {
	ServerHost string `env:"SERVER_HOST" envDefault:"localhost"`
	ServerPort string `env:"SERVER_PORT" envDefault:"3000"`

	MongoURI      string `env:"MONGODB_URI" envDefault:"mongodb://localhost:27017"`
	MongoDatabase string `env:"MONGODB_DATABASE" envDefault:"league_backend"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	Redis RedisConfig
}

// Load reads configuration from environment variables and applies defaults.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.New("failed to load configuration from environment: " + err.Error())
	}
	if err := env.Parse(&cfg.Redis); err != nil {
		return nil, errors.New("failed to load redis configuration from environment: " + err.Error())
	}

	if cfg.MongoURI == "" {
		return nil, errors.New("MONGODB_URI must not be empty")
	}
	if cfg.MongoDatabase == "" {
		return nil, errors.New("MONGODB_DATABASE must not be empty")
	}
	return cfg, nil
}

// ServerAddr returns the host:port address the HTTP server listens on.
func (c *Config) ServerAddr() string {
	return fmt.Sprintf("%s:%s", c.ServerHost, c.ServerPort)
}
