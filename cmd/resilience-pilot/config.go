package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config holds server configuration. Values come from the environment first,
// then the optional YAML config file, then command-line flags, with later
// sources winning.
type Config struct {
	Port            int           `env:"PILOT_PORT" envDefault:"8080"`
	BindAddr        string        `env:"PILOT_BIND_ADDR" envDefault:"0.0.0.0"`
	EnableTLS       bool          `env:"PILOT_ENABLE_TLS" envDefault:"false"`
	CertFile        string        `env:"PILOT_CERT_FILE" envDefault:"server.crt"`
	KeyFile         string        `env:"PILOT_KEY_FILE" envDefault:"server.key"`
	EnableCORS      bool          `env:"PILOT_ENABLE_CORS" envDefault:"false"`
	LogLevel        string        `env:"PILOT_LOG_LEVEL" envDefault:"info"`
	LogJSON         bool          `env:"PILOT_LOG_JSON" envDefault:"false"`
	LogRequests     bool          `env:"PILOT_LOG_REQUESTS" envDefault:"true"`
	RateLimitRPS    float64       `env:"PILOT_RATE_LIMIT_RPS" envDefault:"0"`
	RateLimitBurst  int           `env:"PILOT_RATE_LIMIT_BURST" envDefault:"0"`
	EventHeartbeat  time.Duration `env:"PILOT_EVENT_HEARTBEAT" envDefault:"5s"`
	RecentEvents    int           `env:"PILOT_RECENT_EVENTS" envDefault:"100"`
	ShutdownTimeout time.Duration `env:"PILOT_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	Hostname        string
}

// fileConfig is the subset of settings the optional YAML config file may
// override. Pointer fields distinguish absent keys from zero values.
type fileConfig struct {
	Port           *int     `yaml:"port"`
	BindAddr       *string  `yaml:"bind_addr"`
	EnableTLS      *bool    `yaml:"enable_tls"`
	CertFile       *string  `yaml:"cert_file"`
	KeyFile        *string  `yaml:"key_file"`
	EnableCORS     *bool    `yaml:"enable_cors"`
	LogLevel       *string  `yaml:"log_level"`
	LogJSON        *bool    `yaml:"log_json"`
	LogRequests    *bool    `yaml:"log_requests"`
	RateLimitRPS   *float64 `yaml:"rate_limit_rps"`
	RateLimitBurst *int     `yaml:"rate_limit_burst"`
	RecentEvents   *int     `yaml:"recent_events"`
}

// loadConfig builds a Config from the environment, overlaid with the YAML
// file at configFile when one is given.
func loadConfig(configFile string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	if hostname, _ := os.Hostname(); hostname != "" {
		cfg.Hostname = hostname
	}

	if configFile == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(configFile)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return Config{}, fmt.Errorf("parse config file: %w", err)
	}
	fc.apply(&cfg)
	return cfg, nil
}

// apply overlays the file values onto cfg.
func (fc *fileConfig) apply(cfg *Config) {
	if fc.Port != nil {
		cfg.Port = *fc.Port
	}
	if fc.BindAddr != nil {
		cfg.BindAddr = *fc.BindAddr
	}
	if fc.EnableTLS != nil {
		cfg.EnableTLS = *fc.EnableTLS
	}
	if fc.CertFile != nil {
		cfg.CertFile = *fc.CertFile
	}
	if fc.KeyFile != nil {
		cfg.KeyFile = *fc.KeyFile
	}
	if fc.EnableCORS != nil {
		cfg.EnableCORS = *fc.EnableCORS
	}
	if fc.LogLevel != nil {
		cfg.LogLevel = *fc.LogLevel
	}
	if fc.LogJSON != nil {
		cfg.LogJSON = *fc.LogJSON
	}
	if fc.LogRequests != nil {
		cfg.LogRequests = *fc.LogRequests
	}
	if fc.RateLimitRPS != nil {
		cfg.RateLimitRPS = *fc.RateLimitRPS
	}
	if fc.RateLimitBurst != nil {
		cfg.RateLimitBurst = *fc.RateLimitBurst
	}
	if fc.RecentEvents != nil {
		cfg.RecentEvents = *fc.RecentEvents
	}
}

func (c Config) validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.EnableTLS && (c.CertFile == "" || c.KeyFile == "") {
		return errors.New("TLS enabled but certificate or key file not set")
	}
	return nil
}

func (c Config) listenAddr() string {
	return fmt.Sprintf("%s:%d", c.BindAddr, c.Port)
}
