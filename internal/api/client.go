// Package api is the HTTP client for the scheduler service.
package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultBaseURL is the scheduler service address used when neither the
// config file nor the --api flag overrides it.
const DefaultBaseURL = "http://127.0.0.1:8000"

// Client talks to the scheduler service.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// New creates a client for the given base URL. An empty token disables the
// Authorization header.
func New(baseURL, token string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// ListCategories fetches all categories.
func (c *Client) ListCategories() ([]Category, error) {
	var cats []Category
	err := c.do(http.MethodGet, "/categories/", nil, &cats)
	return cats, err
}

// CreateCategory creates a category with the given name and hex color.
func (c *Client) CreateCategory(name, color string) (Category, error) {
	var cat Category
	payload := map[string]string{"name": name, "color": color}
	err := c.do(http.MethodPost, "/categories/", payload, &cat)
	return cat, err
}

// ListTasks fetches all tasks.
func (c *Client) ListTasks() ([]Task, error) {
	var tasks []Task
	err := c.do(http.MethodGet, "/tasks/", nil, &tasks)
	return tasks, err
}

// OrderedTasks fetches the scheduler-ordered task list.
func (c *Client) OrderedTasks() ([]Task, error) {
	var tasks []Task
	err := c.do(http.MethodGet, "/taskslist/", nil, &tasks)
	return tasks, err
}

// CreateTask creates a todo or event task.
func (c *Client) CreateTask(req TaskCreate) (Task, error) {
	var task Task
	err := c.do(http.MethodPost, "/tasks/", req, &task)
	return task, err
}

// UpdateTask applies a partial update to the task with the given ID.
func (c *Client) UpdateTask(id int, req TaskUpdate) (Task, error) {
	var task Task
	err := c.do(http.MethodPatch, fmt.Sprintf("/tasks/%d", id), req, &task)
	return task, err
}

// DeleteTask removes the task with the given ID. The service answers 204.
func (c *Client) DeleteTask(id int) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/tasks/%d", id), nil, nil)
}

// AutoSchedule asks the service to slot all unscheduled todos. The run
// happens in the background on the server; the result only acknowledges it.
func (c *Client) AutoSchedule(req ScheduleRequest) (ScheduleResult, error) {
	var result ScheduleResult
	err := c.do(http.MethodPost, "/auto-schedule/", req, &result)
	return result, err
}

// SyncCalendar imports remote calendar events into the service.
func (c *Client) SyncCalendar() (SyncResult, error) {
	var result SyncResult
	err := c.do(http.MethodPost, "/calendar/sync", nil, &result)
	return result, err
}

// PushTask pushes a single task to the remote calendar.
func (c *Client) PushTask(id int) (PushResult, error) {
	var result PushResult
	err := c.do(http.MethodPost, fmt.Sprintf("/calendar/push/%d", id), nil, &result)
	return result, err
}

// PushAll pushes all events and scheduled todos to the remote calendar.
func (c *Client) PushAll() (PushAllResult, error) {
	var result PushAllResult
	err := c.do(http.MethodPost, "/calendar/push-all", nil, &result)
	return result, err
}

// do sends one request and decodes the JSON response into out (when out is
// non-nil). Non-2xx responses surface the response body in the error.
func (c *Client) do(method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal payload: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("scheduler returned %d for %s %s: %s",
			resp.StatusCode, method, path, string(respBody))
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
