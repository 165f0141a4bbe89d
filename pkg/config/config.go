// Package config resolves server settings from defaults, an optional YAML
// file and the environment, in that order of precedence.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr            string        `yaml:"addr"`
	AdminAddr       string        `yaml:"admin_addr"`
	DatabaseURL     string        `yaml:"database_url"`
	MaxPoolSize     int           `yaml:"max_pool_size"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
	CORSOrigins     []string      `yaml:"cors_origins"`
}

// Default returns the settings used when nothing else is configured.
func Default() *Config {
	return &Config{
		Addr:            ":50051",
		AdminAddr:       ":8081",
		MaxPoolSize:     10,
		MaxIdleConns:    5,
		ConnMaxLifetime: 5 * time.Minute,
		CORSOrigins:     []string{"*"},
	}
}

// LoadEnvFile exports the variables of a .env file without overriding the
// ones already set.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		return errors.Wrapf(err, "failed to load env file %s", path)
	}
	return nil
}

// Load reads path (when not empty) over the defaults and applies the
// environment on top.
func Load(path string) (*Config, error) {
	c := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "failed to read config file")
		}
		if err := yaml.Unmarshal(data, c); err != nil {
			return nil, errors.Wrap(err, "failed to parse config file")
		}
	}
	c.Addr = getEnv("ADDR", c.Addr)
	c.AdminAddr = getEnv("ADMIN_ADDR", c.AdminAddr)
	c.DatabaseURL = getEnv("DATABASE_URL", c.DatabaseURL)
	c.MaxPoolSize = getEnvInt("MAX_POOL_SIZE", c.MaxPoolSize)
	c.MaxIdleConns = getEnvInt("MAX_IDLE_CONNS", c.MaxIdleConns)
	c.ConnMaxLifetime = getEnvDuration("CONN_MAX_LIFETIME", c.ConnMaxLifetime)
	c.CORSOrigins = getEnvList("CORS_ORIGINS", c.CORSOrigins)
	return c, nil
}

// Validate checks the settings the server cannot start without.
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return errors.New("database url is required")
	}
	if c.Addr == "" {
		return errors.New("addr is required")
	}
	if c.AdminAddr == "" {
		return errors.New("admin addr is required")
	}
	if c.MaxPoolSize <= 0 {
		return errors.Errorf("max pool size must be positive, got %d", c.MaxPoolSize)
	}
	if c.MaxIdleConns < 0 {
		return errors.Errorf("max idle conns must not be negative, got %d", c.MaxIdleConns)
	}
	for _, origin := range c.CORSOrigins {
		if origin != "*" && !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return errors.Errorf("cors origin %q must start with http:// or https://", origin)
		}
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

func getEnvList(key string, fallback []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	var list []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			list = append(list, item)
		}
	}
	return list
}
