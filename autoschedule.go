package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/importly/scheduler/internal/api"
	"github.com/importly/scheduler/internal/config"
)

// AutoScheduleCmd asks the service to slot all unscheduled todos according
// to availability windows and weights, taken from an explicit JSON file or
// the config defaults.
type AutoScheduleCmd struct {
	Config string `help:"Path to a JSON file with availability and weights." type:"existingfile"`
}

func (cmd *AutoScheduleCmd) Run(globals *Globals) error {
	var req api.ScheduleRequest
	if cmd.Config != "" {
		data, err := os.ReadFile(cmd.Config) //nolint:gosec // user-provided path via CLI flag
		if err != nil {
			return newCLIError(ExitRuntimeError, "read_file_failed",
				fmt.Sprintf("Failed to read config %q: %s", cmd.Config, err))
		}
		if err := json.Unmarshal(data, &req); err != nil {
			return newCLIError(ExitInvalidInput, "invalid_schedule_config",
				fmt.Sprintf("Invalid schedule config %q: %s", cmd.Config, err))
		}
	} else {
		cfg, err := loadConfigOrDefault()
		if err != nil {
			return err
		}
		req = cfg.ScheduleRequest()
	}

	client, err := newClient(globals)
	if err != nil {
		return err
	}

	result, err := client.AutoSchedule(req)
	if err != nil {
		return apiError(err)
	}

	if globals.JSON {
		return json.NewEncoder(os.Stdout).Encode(result)
	}
	fmt.Fprintf(os.Stdout, "Auto-schedule status: %s\n", result.Status)
	return nil
}

// loadConfigOrDefault loads the config file, wrapping failures as CLIErrors.
func loadConfigOrDefault() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, newCLIError(ExitRuntimeError, "config_error",
			"Failed to load config: "+err.Error())
	}
	return cfg, nil
}
