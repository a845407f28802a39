package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/importly/scheduler/internal/deadline"
)

// Exit codes.
const (
	ExitOK            = 0
	ExitRuntimeError  = 1
	ExitNotConfigured = 2
	ExitInvalidInput  = 3
)

// CLIError is a structured error with an exit code and machine-readable code.
type CLIError struct {
	ExitCode int
	Code     string
	Message  string
}

func (e *CLIError) Error() string { return e.Message }

// asCLIError unwraps err into a *CLIError.
func asCLIError(err error, target **CLIError) bool {
	return errors.As(err, target)
}

// newCLIError creates a new CLIError.
func newCLIError(exitCode int, code, message string) *CLIError {
	return &CLIError{ExitCode: exitCode, Code: code, Message: message}
}

// deadlineError converts a parser failure into a CLIError whose code
// identifies the failure kind, so scripts can branch without matching text.
func deadlineError(err error) *CLIError {
	code := "invalid_deadline"
	var perr *deadline.Error
	if errors.As(err, &perr) {
		switch perr.Kind {
		case deadline.InvalidTime:
			code = "invalid_time"
		case deadline.InvalidCalendarDate:
			code = "invalid_calendar_date"
		case deadline.UnrecognizedDate:
			code = "unrecognized_date"
		}
	}
	return newCLIError(ExitInvalidInput, code, err.Error())
}

// apiError wraps a failed service call.
func apiError(err error) *CLIError {
	return newCLIError(ExitRuntimeError, "api_error", err.Error())
}

// JSON response types.
type jsonResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

func printSuccessJSON(message string) {
	resp := jsonResponse{Status: "ok", Message: message}
	b, _ := json.Marshal(resp)
	fmt.Fprintln(os.Stdout, string(b))
}

func printErrorJSON(message, code string) {
	resp := jsonResponse{Status: "error", Error: code, Message: message}
	b, _ := json.Marshal(resp)
	fmt.Fprintln(os.Stderr, string(b))
}

func printSuccessHuman(message string) {
	fmt.Fprintln(os.Stdout, message)
}

func printErrorHuman(message string) {
	fmt.Fprintln(os.Stderr, "Error: "+message)
}

// truncate shortens s to at most n runes, appending an ellipsis.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 1 {
		return "…"
	}
	return string(runes[:n-1]) + "…"
}

// firstLine returns the first line of s.
func firstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		return s[:idx]
	}
	return s
}
