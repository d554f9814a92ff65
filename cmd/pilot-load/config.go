package main

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the load generator settings, all from the environment.
type Config struct {
	TargetURL   string        `env:"TARGET_URL" envDefault:"http://localhost:8080"`
	Rate        int           `env:"RATE" envDefault:"50"`
	Duration    time.Duration `env:"DURATION" envDefault:"30s"`
	Scenario    string        `env:"SCENARIO" envDefault:"health"`
	Probability float64       `env:"CHAOS_PROBABILITY" envDefault:"0"`
}

func loadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
