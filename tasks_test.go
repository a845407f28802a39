package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/importly/scheduler/internal/api"
)

func TestPriorityLabel(t *testing.T) {
	tests := []struct {
		priority int
		expected string
	}{
		{0, "Low"},
		{3, "Low"},
		{4, "Medium"},
		{6, "Medium"},
		{7, "High"},
		{10, "High"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, priorityLabel(tt.priority))
	}
}

func TestDueString_PrefersDeadline(t *testing.T) {
	task := api.Task{Deadline: "2026-01-05T21:00:00", StartTime: "2026-01-04T09:00:00"}
	assert.Equal(t, "2026-01-05T21:00:00", dueString(task))

	event := api.Task{StartTime: "2026-01-04T09:00:00"}
	assert.Equal(t, "2026-01-04T09:00:00", dueString(event))

	assert.Equal(t, "", dueString(api.Task{}))
}

func TestSortByDue(t *testing.T) {
	tasks := []api.Task{
		{ID: 1, Title: "no due date"},
		{ID: 2, Title: "later", Deadline: "2026-03-01T21:00:00"},
		{ID: 3, Title: "sooner", Deadline: "2026-01-15T09:00:00"},
		{ID: 4, Title: "event first", StartTime: "2026-01-10T10:00:00"},
	}

	sortByDue(tasks)

	assert.Equal(t, 4, tasks[0].ID)
	assert.Equal(t, 3, tasks[1].ID)
	assert.Equal(t, 2, tasks[2].ID)
	assert.Equal(t, 1, tasks[3].ID, "tasks without a due date sort last")
}

func TestSortByDue_StableForEqualDates(t *testing.T) {
	tasks := []api.Task{
		{ID: 1, Deadline: "2026-01-15T09:00:00"},
		{ID: 2, Deadline: "2026-01-15T09:00:00"},
		{ID: 3, Deadline: "2026-01-15T09:00:00"},
	}
	sortByDue(tasks)
	assert.Equal(t, []int{tasks[0].ID, tasks[1].ID, tasks[2].ID}, []int{1, 2, 3})
}

func TestCountUnscheduled(t *testing.T) {
	tasks := []api.Task{
		{ID: 1, Type: "todo", ScheduledFor: ""},
		{ID: 2, Type: "todo", ScheduledFor: "2026-01-15T09:00:00"},
		{ID: 3, Type: "event", ScheduledFor: ""},
	}
	assert.Equal(t, 1, countUnscheduled(tasks))
	assert.Equal(t, 0, countUnscheduled(nil))
}

func TestRenderTaskTable(t *testing.T) {
	tasks := []api.Task{
		{ID: 1, Title: "Write report", Type: "todo", Status: "todo", Priority: 8,
			Deadline: "2026-01-15T17:00:00",
			Category: &api.Category{ID: 2, Name: "work"}},
		{ID: 2, Title: "Dentist", Type: "event", Status: "todo", Priority: 1,
			StartTime: "2026-01-20T10:00:00"},
	}

	out := renderTaskTable(tasks)

	assert.Contains(t, out, "Task Name")
	assert.Contains(t, out, "Due Date")
	assert.Contains(t, out, "Priority")
	assert.Contains(t, out, "Write report")
	assert.Contains(t, out, "2026-01-15T17:00:00")
	assert.Contains(t, out, "High")
	assert.Contains(t, out, "Dentist")
	assert.Contains(t, out, "Low")
	assert.Contains(t, out, "work")
}
