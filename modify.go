package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"

	"github.com/importly/scheduler/internal/api"
	"github.com/importly/scheduler/internal/history"
)

// UpdateTaskCmd applies a partial update to a task.
type UpdateTaskCmd struct {
	TaskID   int    `arg:"" help:"ID of the task to update."`
	Status   string `help:"New status (pending, in_progress, done)."`
	Title    string `help:"New title."`
	Priority *int   `help:"New priority."`
}

func (cmd *UpdateTaskCmd) Run(globals *Globals) error {
	req := api.TaskUpdate{Priority: cmd.Priority}
	if cmd.Status != "" {
		req.Status = &cmd.Status
	}
	if cmd.Title != "" {
		req.Title = &cmd.Title
	}
	if req.Status == nil && req.Title == nil && req.Priority == nil {
		return newCLIError(ExitInvalidInput, "no_updates",
			"No updates provided. Pass --status, --title, or --priority.")
	}

	client, err := newClient(globals)
	if err != nil {
		return err
	}

	task, err := client.UpdateTask(cmd.TaskID, req)
	if err != nil {
		return apiError(err)
	}

	_ = history.Append(history.Entry{Action: "updated", TaskID: task.ID, Title: task.Title})

	if globals.JSON {
		return json.NewEncoder(os.Stdout).Encode(task)
	}
	fmt.Fprintf(os.Stdout, "Updated task [ID %d] status=%s priority=%d\n",
		task.ID, task.Status, task.Priority)
	return nil
}

// DeleteTaskCmd deletes a task, confirming interactively unless --yes or
// --json is given.
type DeleteTaskCmd struct {
	TaskID int  `arg:"" help:"ID of the task to delete."`
	Yes    bool `help:"Skip the confirmation prompt." short:"y"`
}

func (cmd *DeleteTaskCmd) Run(globals *Globals) error {
	if !cmd.Yes && !globals.JSON {
		var confirmed bool
		err := huh.NewConfirm().
			Title(fmt.Sprintf("Delete task %d?", cmd.TaskID)).
			Affirmative("Delete").
			Negative("Cancel").
			Value(&confirmed).
			Run()
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Fprintln(os.Stdout, "Cancelled.")
			return nil
		}
	}

	client, err := newClient(globals)
	if err != nil {
		return err
	}

	if err := client.DeleteTask(cmd.TaskID); err != nil {
		return apiError(err)
	}

	_ = history.Append(history.Entry{Action: "deleted", TaskID: cmd.TaskID})

	msg := fmt.Sprintf("Deleted task ID %d", cmd.TaskID)
	if globals.JSON {
		printSuccessJSON(msg)
	} else {
		printSuccessHuman(msg)
	}
	return nil
}
