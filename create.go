package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/importly/scheduler/internal/api"
	"github.com/importly/scheduler/internal/deadline"
	"github.com/importly/scheduler/internal/history"
)

// CreateTodoCmd creates a todo task. The deadline accepts natural language
// ("due tmr at 5pm", "end of next month", "3/14/24"); run "todo guide" for
// the full syntax.
type CreateTodoCmd struct {
	DescriptionInput `embed:""`
	Title            string `arg:"" help:"Title of the todo."`
	Estimate         int    `help:"Estimate in minutes." required:""`
	Deadline         string `help:"Deadline (natural language or M/D/YY)." required:""`
	Priority         int    `help:"Priority (default 0)." default:"0"`
}

func (cmd *CreateTodoCmd) Run(globals *Globals) error {
	iso, err := deadline.Parse(cmd.Deadline)
	if err != nil {
		return deadlineError(err)
	}

	desc, err := cmd.Resolve()
	if err != nil {
		return err
	}

	client, err := newClient(globals)
	if err != nil {
		return err
	}

	if !globals.JSON {
		fmt.Fprintf(os.Stdout, "Parsed deadline: %s\n", iso)
	}

	task, err := client.CreateTask(api.TaskCreate{
		Title:       cmd.Title,
		Type:        "todo",
		Estimate:    cmd.Estimate,
		Deadline:    iso,
		Priority:    cmd.Priority,
		Description: desc,
	})
	if err != nil {
		return apiError(err)
	}

	// Best-effort local record.
	_ = history.Append(history.Entry{
		Action: "created", TaskID: task.ID, Title: task.Title, Deadline: iso,
	})

	if globals.JSON {
		resp := map[string]any{"status": "ok", "id": task.ID, "deadline": iso}
		b, _ := json.Marshal(resp)
		fmt.Fprintln(os.Stdout, string(b))
		return nil
	}
	fmt.Fprintf(os.Stdout, "Created todo task [ID %d] %s\n", task.ID, task.Title)
	return nil
}

// CreateEventCmd creates an event task with explicit start and end times.
type CreateEventCmd struct {
	DescriptionInput `embed:""`
	Title            string `arg:"" help:"Title of the event."`
	Start            string `help:"Start time (ISO datetime)." required:""`
	End              string `help:"End time (ISO datetime)." required:""`
}

func (cmd *CreateEventCmd) Run(globals *Globals) error {
	desc, err := cmd.Resolve()
	if err != nil {
		return err
	}

	client, err := newClient(globals)
	if err != nil {
		return err
	}

	task, err := client.CreateTask(api.TaskCreate{
		Title:       cmd.Title,
		Type:        "event",
		StartTime:   cmd.Start,
		EndTime:     cmd.End,
		Description: desc,
	})
	if err != nil {
		return apiError(err)
	}

	_ = history.Append(history.Entry{Action: "created", TaskID: task.ID, Title: task.Title})

	if globals.JSON {
		resp := map[string]any{"status": "ok", "id": task.ID}
		b, _ := json.Marshal(resp)
		fmt.Fprintln(os.Stdout, string(b))
		return nil
	}
	fmt.Fprintf(os.Stdout, "Created event task [ID %d] %s\n", task.ID, task.Title)
	return nil
}

// ParseDeadlineCmd previews how a deadline expression resolves, without
// touching the service. Useful for scripts and for trying out phrases.
type ParseDeadlineCmd struct {
	Expr string `arg:"" help:"Deadline expression, e.g. \"due tmr at 5pm\"."`
}

func (cmd *ParseDeadlineCmd) Run(globals *Globals) error {
	iso, err := deadline.Parse(cmd.Expr)
	if err != nil {
		return deadlineError(err)
	}

	if globals.JSON {
		resp := map[string]any{"status": "ok", "deadline": iso}
		b, _ := json.Marshal(resp)
		fmt.Fprintln(os.Stdout, string(b))
		return nil
	}
	fmt.Fprintln(os.Stdout, iso)
	return nil
}
