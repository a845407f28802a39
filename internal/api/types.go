package api

// Category is a task grouping with a display color.
type Category struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Task is a scheduler task as returned by the service. Events carry
// start/end times; todos carry a deadline, an estimate in minutes, and the
// date the scheduler slotted them for.
type Task struct {
	ID           int       `json:"id"`
	Title        string    `json:"title"`
	Type         string    `json:"type"` // "todo" or "event"
	Description  string    `json:"description,omitempty"`
	Status       string    `json:"status,omitempty"`
	Priority     int       `json:"priority,omitempty"`
	StartTime    string    `json:"start_time,omitempty"`
	EndTime      string    `json:"end_time,omitempty"`
	Deadline     string    `json:"deadline,omitempty"`
	Estimate     int       `json:"estimate,omitempty"`
	ScheduledFor string    `json:"scheduled_for,omitempty"`
	Category     *Category `json:"category,omitempty"`
}

// TaskCreate is the payload for creating a task. Zero-valued optional
// fields are omitted so the service's validators see them as absent.
type TaskCreate struct {
	Title       string `json:"title"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
	Priority    int    `json:"priority,omitempty"`
	StartTime   string `json:"start_time,omitempty"`
	EndTime     string `json:"end_time,omitempty"`
	Deadline    string `json:"deadline,omitempty"`
	Estimate    int    `json:"estimate,omitempty"`
}

// TaskUpdate is a partial update; nil fields are left untouched.
type TaskUpdate struct {
	Title    *string `json:"title,omitempty"`
	Status   *string `json:"status,omitempty"`
	Priority *int    `json:"priority,omitempty"`
}

// Window is a daily availability window ("09:00" to "17:00").
type Window struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// ScheduleRequest configures an auto-schedule run: availability windows
// keyed by weekday ("0"=Monday .. "6"=Sunday) and scoring weights.
type ScheduleRequest struct {
	Availability map[string][]Window `json:"availability"`
	Weights      map[string]float64  `json:"weights"`
}

// ScheduleResult is the service's acknowledgment of an auto-schedule run.
type ScheduleResult struct {
	Status string `json:"status"`
}

// SyncResult reports how many calendar events were imported.
type SyncResult struct {
	Imported int `json:"imported"`
}

// PushResult identifies the remote calendar event a task was pushed to.
type PushResult struct {
	GoogleEventID string `json:"google_event_id"`
}

// PushAllResult reports counts from a bulk calendar push.
type PushAllResult struct {
	Pushed  int `json:"pushed"`
	Updated int `json:"updated"`
}
