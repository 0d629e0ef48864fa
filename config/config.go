// config/config.go
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	defaultPort        = "8080"
	defaultDatabaseURL = "postgres://localhost:5432/noteful?sslmode=disable"
	defaultTestURL     = "postgres://localhost:5432/noteful-test?sslmode=disable"
)

type Config struct {
	Port        string `yaml:"port"`
	DatabaseURL string `yaml:"database_url"`
	TestURL     string `yaml:"test_database_url"`
	Env         string `yaml:"env"`
}

// Load builds the configuration from an optional yaml file overlaid by
// environment variables. Missing values fall back to local-development
// defaults; the test database gets its own default so tests never touch
// development data.
func Load(path string) (Config, error) {
	cfg := Config{
		Port:        defaultPort,
		DatabaseURL: defaultDatabaseURL,
		TestURL:     defaultTestURL,
		Env:         "development",
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, err
			}
		} else if !os.IsNotExist(err) {
			return Config{}, err
		}
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.DatabaseURL = v
	}
	if v := os.Getenv("TEST_DATABASE_URL"); v != "" {
		cfg.TestURL = v
	}
	if v := os.Getenv("ENV"); v != "" {
		cfg.Env = v
	}

	return cfg, nil
}
