package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	Addr                string `yaml:"addr"`
	ReadTimeoutSeconds  int    `yaml:"read_timeout_seconds"`
	WriteTimeoutSeconds int    `yaml:"write_timeout_seconds"`
	IdleTimeoutSeconds  int    `yaml:"idle_timeout_seconds"`
}

// RedisConfig selects the sweep cache backend. An empty address disables
// Redis and an in-memory cache is used instead.
type RedisConfig struct {
	Addr string `yaml:"addr"`
}

// DatabaseConfig selects the sweep persistence backend. An empty path keeps
// the results in memory only.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// RateLimitConfig bounds requests per client.
type RateLimitConfig struct {
	Requests      int `yaml:"requests"`
	WindowMinutes int `yaml:"window_minutes"`
}

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Redis     RedisConfig     `yaml:"redis"`
	Database  DatabaseConfig  `yaml:"database"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:                ":8080",
			ReadTimeoutSeconds:  15,
			WriteTimeoutSeconds: 15,
			IdleTimeoutSeconds:  60,
		},
		RateLimit: RateLimitConfig{
			Requests:      5,
			WindowMinutes: 1,
		},
	}
}

// Load reads the YAML configuration file at path. A missing file is not an
// error; the defaults apply.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("no se pudo leer la configuración: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("configuración YAML inválida: %w", err)
	}

	return cfg, nil
}
