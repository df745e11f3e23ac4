package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"
)

type Config struct {
	Server struct {
		Host      string `json:"host"`
		Port      int    `json:"port"`
		JWTSecret string `json:"jwtSecret"`
	} `json:"server"`
	Database struct {
		Driver string `json:"driver"` // "sqlite" (default) or "postgres"
		Path   string `json:"path"`   // sqlite database file
		DSN    string `json:"dsn"`    // postgres connection string
	} `json:"database"`
	Redis struct {
		Addr     string `json:"addr"`
		Password string `json:"password"`
		DB       int    `json:"db"`
	} `json:"redis"`
	Session struct {
		TTLMinutes int `json:"ttlMinutes"`
	} `json:"session"`
	Admin struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	} `json:"admin"`
}

// SessionTTL returns the configured session lifetime, defaulting to 30 minutes.
func (c *Config) SessionTTL() time.Duration {
	if c.Session.TTLMinutes <= 0 {
		return 30 * time.Minute
	}
	return time.Duration(c.Session.TTLMinutes) * time.Minute
}

var (
	once   sync.Once
	cfg    *Config
	cfgErr error
)

// LoadConfig reads the JSON config file from disk (singleton)
func LoadConfig(path string) (*Config, error) {
	once.Do(func() {
		raw, err := os.ReadFile(path)
		if err != nil {
			cfgErr = fmt.Errorf("failed to read config file: %w", err)
			return
		}
		var c Config
		if err := json.Unmarshal(raw, &c); err != nil {
			cfgErr = fmt.Errorf("invalid config format: %w", err)
			return
		}
		// Minimal validation
		if c.Server.JWTSecret == "" {
			cfgErr = errors.New("jwtSecret must be set in config")
			return
		}
		if c.Database.Driver == "" {
			c.Database.Driver = "sqlite"
		}
		if c.Database.Driver == "sqlite" && c.Database.Path == "" {
			c.Database.Path = "reqtrack.db"
		}
		if c.Database.Driver == "postgres" && c.Database.DSN == "" {
			cfgErr = errors.New("database dsn must be set for the postgres driver")
			return
		}
		cfg = &c
	})
	return cfg, cfgErr
}

// GetConfig returns the loaded config (must call LoadConfig first)
func GetConfig() *Config {
	return cfg
}

// ResetConfigForTest resets the singleton state (for testing only)
func ResetConfigForTest() {
	once = sync.Once{}
	cfg = nil
	cfgErr = nil
}
