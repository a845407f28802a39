package main

import (
	"fmt"
	"os"
	"time"

	"github.com/importly/scheduler/internal/launchd"
)

// AgentCmd manages the background auto-schedule agent (macOS launchd).
type AgentCmd struct {
	Install   AgentInstallCmd   `cmd:"" help:"Install the launchd agent that periodically auto-schedules."`
	Uninstall AgentUninstallCmd `cmd:"" help:"Remove the launchd agent."`
	Status    AgentStatusCmd    `cmd:"" default:"withargs" help:"Show whether the agent is installed and loaded."`
}

// AgentInstallCmd installs the launchd agent.
type AgentInstallCmd struct {
	Every string `help:"Run interval (e.g. 30m, 1h). Default: 30m." short:"e"`
}

func (cmd *AgentInstallCmd) Run(globals *Globals) error {
	interval := launchd.DefaultInterval
	if cmd.Every != "" {
		dur, err := time.ParseDuration(cmd.Every)
		if err != nil || dur < time.Minute {
			return newCLIError(ExitInvalidInput, "invalid_interval",
				fmt.Sprintf("Invalid --every value %q; use a duration of at least 1m (e.g. 30m, 1h).", cmd.Every))
		}
		interval = int(dur.Seconds())
	}

	binaryPath, err := os.Executable()
	if err != nil {
		return fmt.Errorf("resolve executable path: %w", err)
	}

	if err := launchd.Install(binaryPath, interval); err != nil {
		return newCLIError(ExitRuntimeError, "agent_install_failed", err.Error())
	}

	msg := fmt.Sprintf("Agent installed; auto-schedule runs every %ds.", interval)
	if globals.JSON {
		printSuccessJSON(msg)
	} else {
		printSuccessHuman(msg)
	}
	return nil
}

// AgentUninstallCmd removes the launchd agent.
type AgentUninstallCmd struct{}

func (cmd *AgentUninstallCmd) Run(globals *Globals) error {
	if !launchd.IsInstalled() {
		return newCLIError(ExitNotConfigured, "not_installed", "Agent is not installed.")
	}

	if err := launchd.Uninstall(); err != nil {
		return newCLIError(ExitRuntimeError, "agent_uninstall_failed", err.Error())
	}

	msg := "Agent removed."
	if globals.JSON {
		printSuccessJSON(msg)
	} else {
		printSuccessHuman(msg)
	}
	return nil
}

// AgentStatusCmd reports the agent's installation state.
type AgentStatusCmd struct{}

func (cmd *AgentStatusCmd) Run(globals *Globals) error {
	installed := launchd.IsInstalled()
	loaded := installed && launchd.IsLoaded()

	if globals.JSON {
		fmt.Fprintf(os.Stdout, `{"status":"ok","installed":%t,"loaded":%t}%s`,
			installed, loaded, "\n")
		return nil
	}

	switch {
	case loaded:
		fmt.Fprintln(os.Stdout, "Agent: installed and loaded")
	case installed:
		fmt.Fprintln(os.Stdout, "Agent: installed but not loaded")
	default:
		fmt.Fprintln(os.Stdout, "Agent: not installed")
	}
	fmt.Fprintf(os.Stdout, "Plist: %s\n", launchd.PlistPath())
	return nil
}
