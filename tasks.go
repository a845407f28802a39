package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/importly/scheduler/internal/api"
)

// deadlineLayout is the canonical timestamp form used across the service.
const deadlineLayout = "2006-01-02T15:04:05"

// schedulePollAttempts bounds how long list-tasks waits for the background
// scheduler; each attempt sleeps schedulePollDelay.
const (
	schedulePollAttempts = 10
	schedulePollDelay    = 200 * time.Millisecond
)

// ListTasksCmd triggers auto-scheduling with the configured availability,
// waits for the background scheduler to finish, and renders the ordered
// task list.
type ListTasksCmd struct{}

func (cmd *ListTasksCmd) Run(globals *Globals) error {
	client, err := newClient(globals)
	if err != nil {
		return err
	}

	cfg, err := loadConfigOrDefault()
	if err != nil {
		return err
	}

	if _, err := client.AutoSchedule(cfg.ScheduleRequest()); err != nil {
		return apiError(err)
	}

	// The scheduler runs in the background on the server; poll until no
	// todos remain unscheduled, or give up and show what we have.
	for range schedulePollAttempts {
		tasks, err := client.ListTasks()
		if err != nil {
			return apiError(err)
		}
		if countUnscheduled(tasks) == 0 {
			break
		}
		time.Sleep(schedulePollDelay)
	}

	tasks, err := client.OrderedTasks()
	if err != nil {
		return apiError(err)
	}
	sortByDue(tasks)

	if globals.JSON {
		if tasks == nil {
			tasks = []api.Task{}
		}
		return json.NewEncoder(os.Stdout).Encode(tasks)
	}

	if len(tasks) == 0 {
		fmt.Fprintln(os.Stdout, "No tasks.")
		return nil
	}

	fmt.Fprintln(os.Stdout, renderTaskTable(tasks))
	return nil
}

func countUnscheduled(tasks []api.Task) int {
	n := 0
	for _, t := range tasks {
		if t.Type == "todo" && t.ScheduledFor == "" {
			n++
		}
	}
	return n
}

// sortByDue orders tasks by deadline (todos) or start time (events);
// tasks with no due date sort last.
func sortByDue(tasks []api.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		ti, oki := dueTime(tasks[i])
		tj, okj := dueTime(tasks[j])
		if oki != okj {
			return oki
		}
		return ti.Before(tj)
	})
}

func dueTime(t api.Task) (time.Time, bool) {
	due := dueString(t)
	if due == "" {
		return time.Time{}, false
	}
	parsed, err := time.Parse(deadlineLayout, due)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}

func dueString(t api.Task) string {
	if t.Deadline != "" {
		return t.Deadline
	}
	return t.StartTime
}

// priorityLabel buckets a numeric priority for display.
func priorityLabel(p int) string {
	switch {
	case p >= 7:
		return "High"
	case p >= 4:
		return "Medium"
	default:
		return "Low"
	}
}

var taskTableBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

func renderTaskTable(tasks []api.Task) string {
	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(taskTableBorderStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers("Task Name", "Due Date", "Priority", "Status", "Tags")

	for _, t := range tasks {
		due := dueString(t)
		if due == "" {
			due = "-"
		}
		tag := ""
		if t.Category != nil {
			tag = t.Category.Name
		}
		tbl.Row(t.Title, due, priorityLabel(t.Priority), t.Status, tag)
	}
	return tbl.String()
}
