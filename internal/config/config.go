// Package config persists the CLI's settings: the scheduler service address
// and the default auto-schedule availability and weights.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/importly/scheduler/internal/api"
)

// Config holds the application configuration.
type Config struct {
	APIURL       string                  `json:"api_url"`
	Availability map[string][]api.Window `json:"availability"`
	Weights      map[string]float64      `json:"weights"`
}

// configDir returns the config directory path.
// Exported as a var for testing.
var configDir = defaultConfigDir

func defaultConfigDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "todo")
}

func configPath() string {
	return filepath.Join(configDir(), "config.json")
}

// Default returns the built-in configuration: local service, working hours
// Monday through Friday, shorter weekend windows, and deadline-dominated
// scheduling weights.
func Default() Config {
	weekday := []api.Window{{Start: "09:00", End: "17:00"}}
	weekend := []api.Window{{Start: "10:00", End: "14:00"}}
	return Config{
		APIURL: api.DefaultBaseURL,
		Availability: map[string][]api.Window{
			"0": weekday, "1": weekday, "2": weekday, "3": weekday, "4": weekday,
			"5": weekend, "6": weekend,
		},
		Weights: map[string]float64{"priority": 1.0, "deadline": 100.0},
	}
}

// ScheduleRequest builds the auto-schedule payload from the configured
// availability and weights.
func (c Config) ScheduleRequest() api.ScheduleRequest {
	return api.ScheduleRequest{
		Availability: c.Availability,
		Weights:      c.Weights,
	}
}

// Exists returns true if a config file has been saved.
func Exists() bool {
	_, err := os.Stat(configPath())
	return err == nil
}

// Load reads the config file. Returns the default config if the file
// doesn't exist; saved files with missing fields fall back per-field.
func Load() (Config, error) {
	data, err := os.ReadFile(configPath())
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, err
	}

	cfg := Default()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if cfg.APIURL == "" {
		cfg.APIURL = api.DefaultBaseURL
	}
	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := configDir()
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath(), data, 0o600)
}
