package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"

	"github.com/importly/scheduler/internal/api"
	"github.com/importly/scheduler/internal/config"
	"github.com/importly/scheduler/internal/keyring"
)

// AuthCmd manages the scheduler API token.
type AuthCmd struct {
	Login  AuthLoginCmd  `cmd:"" help:"Store an API token (interactive or token argument)."`
	Logout AuthLogoutCmd `cmd:"" help:"Remove the API token from the keychain."`
	Status AuthStatusCmd `cmd:"" default:"withargs" help:"Check token configuration and service reachability."`
}

// AuthLoginCmd stores the API token interactively or via argument.
type AuthLoginCmd struct {
	Token string `arg:"" optional:"" help:"API token (skips interactive prompt)."`
}

func (cmd *AuthLoginCmd) Run(globals *Globals) error {
	// Non-interactive — token passed as argument.
	if cmd.Token != "" {
		return cmd.storeAndVerify(globals, cmd.Token)
	}

	// Check if already configured.
	existing, err := keyring.Get()
	if err == nil && existing != "" {
		return cmd.handleExisting(globals, existing)
	}

	return cmd.interactive(globals)
}

func (cmd *AuthLoginCmd) handleExisting(globals *Globals, existing string) error {
	var choice string
	err := huh.NewSelect[string]().
		Title("An API token is already configured.").
		Options(
			huh.NewOption("Test the existing token", "test"),
			huh.NewOption("Replace it with a new one", "overwrite"),
			huh.NewOption("Exit", "exit"),
		).
		Value(&choice).
		Run()
	if err != nil {
		return err
	}

	switch choice {
	case "test":
		return verifyToken(globals, existing)
	case "overwrite":
		return cmd.interactive(globals)
	default:
		return nil
	}
}

func (cmd *AuthLoginCmd) interactive(globals *Globals) error {
	var token string
	err := huh.NewInput().
		Title("Paste your scheduler API token:").
		EchoMode(huh.EchoModePassword).
		Validate(func(s string) error {
			if s == "" {
				return fmt.Errorf("token must not be empty")
			}
			return nil
		}).
		Value(&token).
		Run()
	if err != nil {
		return err
	}

	return cmd.storeAndVerify(globals, token)
}

func (cmd *AuthLoginCmd) storeAndVerify(globals *Globals, token string) error {
	if err := keyring.Set(token); err != nil {
		return newCLIError(ExitRuntimeError, "keyring_error",
			"Failed to store token in keychain: "+err.Error())
	}
	return verifyToken(globals, token)
}

// verifyToken pings the service with the token. Unreachable services are
// reported but don't fail the login; the token is already stored.
func verifyToken(globals *Globals, token string) error {
	cfg, err := config.Load()
	if err != nil {
		return newCLIError(ExitRuntimeError, "config_error",
			"Failed to load config: "+err.Error())
	}
	baseURL := cfg.APIURL
	if globals.API != "" {
		baseURL = globals.API
	}
	client := api.New(baseURL, token)

	if _, err := client.ListCategories(); err != nil {
		msg := "Token stored, but the scheduler did not respond: " + err.Error()
		if globals.JSON {
			printSuccessJSON(msg)
		} else {
			fmt.Fprintln(os.Stdout, msg)
		}
		return nil
	}

	msg := "Token stored and verified against the scheduler."
	if globals.JSON {
		printSuccessJSON(msg)
	} else {
		printSuccessHuman(msg)
	}
	return nil
}

// AuthLogoutCmd removes the API token from the keychain.
type AuthLogoutCmd struct{}

func (cmd *AuthLogoutCmd) Run(globals *Globals) error {
	if err := keyring.Delete(); err != nil {
		if keyring.IsNotFound(err) {
			return newCLIError(ExitNotConfigured, "not_configured",
				"No API token is stored.")
		}
		return newCLIError(ExitRuntimeError, "keyring_error",
			"Failed to remove token: "+err.Error())
	}

	msg := "API token removed."
	if globals.JSON {
		printSuccessJSON(msg)
	} else {
		printSuccessHuman(msg)
	}
	return nil
}

// AuthStatusCmd reports whether a token is stored and the service reachable.
type AuthStatusCmd struct{}

func (cmd *AuthStatusCmd) Run(globals *Globals) error {
	_, err := keyring.Get()
	configured := err == nil

	client, cerr := newClient(globals)
	reachable := false
	if cerr == nil {
		_, perr := client.ListCategories()
		reachable = perr == nil
	}

	if globals.JSON {
		fmt.Fprintf(os.Stdout, `{"status":"ok","token_configured":%t,"service_reachable":%t}%s`,
			configured, reachable, "\n")
		return nil
	}

	if configured {
		fmt.Fprintln(os.Stdout, "API token: configured")
	} else {
		fmt.Fprintln(os.Stdout, "API token: not configured (requests are sent unauthenticated)")
	}
	if reachable {
		fmt.Fprintln(os.Stdout, "Scheduler: reachable")
	} else {
		fmt.Fprintln(os.Stdout, "Scheduler: unreachable")
	}
	return nil
}
