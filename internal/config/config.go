package config

import (
	"github.com/caarlos0/env/v11"
)

// Config holds runtime settings read from the environment.
type Config struct {
	DBPath string `env:"DB_PATH"`
	Theme  string `env:"THEME" envDefault:"default"`
	AI     struct {
		Endpoint string `env:"ENDPOINT"`
		APIKey   string `env:"API_KEY"`
		Timeout  int    `env:"TIMEOUT" envDefault:"15"`
	} `envPrefix:"AI_"`
}

// Load parses CHRONOGUARD_* environment variables into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "CHRONOGUARD_"}); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
