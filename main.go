package main

import (
	"errors"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/huh"

	"github.com/importly/scheduler/internal/api"
	"github.com/importly/scheduler/internal/config"
	"github.com/importly/scheduler/internal/keyring"
)

// Globals holds flags shared across all commands.
type Globals struct {
	JSON bool   `help:"Output JSON for LLM/script consumption." short:"j"`
	API  string `help:"Scheduler service URL (overrides the config file)."`
}

// CLI is the root command structure for the todo client.
type CLI struct {
	Globals

	ListCategories ListCategoriesCmd `cmd:"" help:"List all categories."`
	CreateCategory CreateCategoryCmd `cmd:"" help:"Create a new category."`
	ListTasks      ListTasksCmd      `cmd:"" help:"Auto-schedule pending todos and list all tasks."`
	CreateTodo     CreateTodoCmd     `cmd:"" help:"Create a todo task with a natural-language deadline."`
	CreateEvent    CreateEventCmd    `cmd:"" help:"Create an event task."`
	UpdateTask     UpdateTaskCmd     `cmd:"" help:"Update a task's status, title, or priority."`
	DeleteTask     DeleteTaskCmd     `cmd:"" help:"Delete a task."`
	Inspect        InspectCmd        `cmd:"" help:"Interactive task browser — navigate and delete tasks."`
	ParseDeadline  ParseDeadlineCmd  `cmd:"" help:"Parse a deadline expression and print the canonical timestamp."`
	SyncCalendar   SyncCalendarCmd   `cmd:"" help:"Import Google Calendar events into the scheduler."`
	PushTask       PushTaskCmd       `cmd:"" help:"Push a single task to Google Calendar."`
	PushAll        PushAllCmd        `cmd:"" help:"Push all events and scheduled todos to Google Calendar."`
	AutoSchedule   AutoScheduleCmd   `cmd:"" help:"Auto-schedule all unscheduled todos."`
	Auth           AuthCmd           `cmd:"" help:"Manage the scheduler API token."`
	Agent          AgentCmd          `cmd:"" help:"Manage the background auto-schedule agent (macOS launchd)."`
	History        HistoryCmd        `cmd:"" help:"Show or clear the local operation history."`
	Guide          GuideCmd          `cmd:"" help:"Print the deadline syntax guide."`
}

func main() {
	cli := CLI{}
	ctx := kong.Parse(&cli,
		kong.Name("todo"),
		kong.Description("Command-line client for the scheduler service."),
		kong.UsageOnError(),
	)
	err := ctx.Run(&cli.Globals)
	if err != nil {
		// Ctrl+C / Ctrl+D — exit silently.
		if isUserAbort(err) {
			os.Exit(0)
		}

		var cliErr *CLIError
		if ok := asCLIError(err, &cliErr); ok {
			if cli.JSON {
				printErrorJSON(cliErr.Message, cliErr.Code)
			} else {
				printErrorHuman(cliErr.Message)
			}
			os.Exit(cliErr.ExitCode)
		}
		if cli.JSON {
			printErrorJSON(err.Error(), "runtime_error")
		} else {
			printErrorHuman(err.Error())
		}
		os.Exit(1)
	}
}

// newClient builds the API client from the config file, the --api override,
// and the keychain token (absent token means no Authorization header).
func newClient(globals *Globals) (*api.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, newCLIError(ExitRuntimeError, "config_error",
			"Failed to load config: "+err.Error())
	}

	baseURL := cfg.APIURL
	if globals.API != "" {
		baseURL = globals.API
	}

	token, err := keyring.Get()
	if err != nil && !keyring.IsNotFound(err) {
		return nil, newCLIError(ExitRuntimeError, "keyring_error",
			"Failed to read keychain: "+err.Error())
	}

	return api.New(baseURL, token), nil
}

// isUserAbort returns true for errors caused by the user
// quitting an interactive prompt (Ctrl+C, Ctrl+D).
// It intentionally does NOT match io.EOF via errors.Is because
// EOF can originate from network failures, which must surface as
// errors rather than silent exit 0.
func isUserAbort(err error) bool {
	if errors.Is(err, huh.ErrUserAborted) {
		return true
	}
	// huh wraps bubbletea errors as "huh: <err>"
	if strings.Contains(err.Error(), "user aborted") {
		return true
	}
	return false
}
