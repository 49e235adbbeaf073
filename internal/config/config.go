// internal/config/config.go
//
// Runtime configuration for the solver CLI.
//
// Precedence (lowest → highest):
//   1. Defaults (Default()).
//   2. Optional YAML file (--config).
//   3. Environment variables, after loading `.env` via godotenv.
//   4. Command-line flags (applied by the cli package).
//
// Environment variables:
//   LOG_LEVEL            zerolog level name (debug, info, warn, …)
//   WORDS_ANSWERS_FILE   answer list, one word per line
//   WORDS_ALLOWED_FILE   extra allowed guesses, one word per line
//   SOLVER_STRATEGY      entropy | frequency
//   SOLVER_WORKERS       goroutines for scoring / benchmarking
//   SOLVER_VERBOSE       true to print scoring diagnostics
//   SOLVER_OPENER        fixed first guess for judge/play/bench
//   SOLVER_MAX_GUESSES   win threshold for simulated games
//   DAILY_SALT           salt for the daily answer

package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds every tunable of the CLI.
type Config struct {
	LogLevel    string `yaml:"log_level"`
	AnswersFile string `yaml:"answers_file"`
	AllowedFile string `yaml:"allowed_file"`
	Strategy    string `yaml:"strategy"`
	Workers     int    `yaml:"workers"`
	Verbose     bool   `yaml:"verbose"`
	Opener      string `yaml:"opener"`
	MaxGuesses  int    `yaml:"max_guesses"`
	DailySalt   string `yaml:"daily_salt"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel:   "info",
		Strategy:   "entropy",
		Opener:     "soare",
		MaxGuesses: 6,
		DailySalt:  "local_dev_salt",
	}
}

// Load builds a Config from defaults, the optional YAML file at path and
// the environment. A missing .env file is not an error.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.AnswersFile = getEnv("WORDS_ANSWERS_FILE", c.AnswersFile)
	c.AllowedFile = getEnv("WORDS_ALLOWED_FILE", c.AllowedFile)
	c.Strategy = getEnv("SOLVER_STRATEGY", c.Strategy)
	c.Opener = getEnv("SOLVER_OPENER", c.Opener)
	c.DailySalt = getEnv("DAILY_SALT", c.DailySalt)

	var err error
	if c.Workers, err = envInt("SOLVER_WORKERS", c.Workers); err != nil {
		return err
	}
	if c.MaxGuesses, err = envInt("SOLVER_MAX_GUESSES", c.MaxGuesses); err != nil {
		return err
	}
	if v := os.Getenv("SOLVER_VERBOSE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("SOLVER_VERBOSE: %w", err)
		}
		c.Verbose = b
	}
	return nil
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// envInt parses k as an int, returning def if unset/empty.
func envInt(k string, def int) (int, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def, fmt.Errorf("%s: %w", k, err)
	}
	return n, nil
}
