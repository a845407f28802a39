package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/importly/scheduler/internal/history"
)

// SyncCalendarCmd imports Google Calendar events into the scheduler.
type SyncCalendarCmd struct{}

func (cmd *SyncCalendarCmd) Run(globals *Globals) error {
	client, err := newClient(globals)
	if err != nil {
		return err
	}

	result, err := client.SyncCalendar()
	if err != nil {
		return apiError(err)
	}

	_ = history.Append(history.Entry{Action: "synced"})

	if globals.JSON {
		return json.NewEncoder(os.Stdout).Encode(result)
	}
	fmt.Fprintf(os.Stdout, "Imported %d events from Google Calendar.\n", result.Imported)
	return nil
}

// PushTaskCmd pushes a single task to Google Calendar.
type PushTaskCmd struct {
	TaskID int `arg:"" help:"Local task ID to push."`
}

func (cmd *PushTaskCmd) Run(globals *Globals) error {
	client, err := newClient(globals)
	if err != nil {
		return err
	}

	result, err := client.PushTask(cmd.TaskID)
	if err != nil {
		return apiError(err)
	}

	_ = history.Append(history.Entry{Action: "pushed", TaskID: cmd.TaskID})

	if globals.JSON {
		return json.NewEncoder(os.Stdout).Encode(result)
	}
	fmt.Fprintf(os.Stdout, "Pushed task [ID %d] to Google Calendar as %s\n",
		cmd.TaskID, result.GoogleEventID)
	return nil
}

// PushAllCmd pushes all events and scheduled todos to Google Calendar.
type PushAllCmd struct{}

func (cmd *PushAllCmd) Run(globals *Globals) error {
	client, err := newClient(globals)
	if err != nil {
		return err
	}

	result, err := client.PushAll()
	if err != nil {
		return apiError(err)
	}

	_ = history.Append(history.Entry{Action: "pushed"})

	if globals.JSON {
		return json.NewEncoder(os.Stdout).Encode(result)
	}
	fmt.Fprintf(os.Stdout, "Pushed %d new and updated %d existing events.\n",
		result.Pushed, result.Updated)
	return nil
}
