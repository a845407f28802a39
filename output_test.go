package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/importly/scheduler/internal/deadline"
)

func TestDeadlineError_Codes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code string
	}{
		{
			name: "invalid time",
			err:  &deadline.Error{Kind: deadline.InvalidTime, Fragment: "25:00"},
			code: "invalid_time",
		},
		{
			name: "unrecognized date",
			err:  &deadline.Error{Kind: deadline.UnrecognizedDate, Fragment: "someday"},
			code: "unrecognized_date",
		},
		{
			name: "invalid calendar date",
			err:  &deadline.Error{Kind: deadline.InvalidCalendarDate, Fragment: "2/30/26"},
			code: "invalid_calendar_date",
		},
		{
			name: "unknown error falls back",
			err:  errors.New("boom"),
			code: "invalid_deadline",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cerr := deadlineError(tt.err)
			assert.Equal(t, ExitInvalidInput, cerr.ExitCode)
			assert.Equal(t, tt.code, cerr.Code)
			assert.Equal(t, tt.err.Error(), cerr.Message)
		})
	}
}

func TestAsCLIError(t *testing.T) {
	var target *CLIError

	wrapped := newCLIError(ExitNotConfigured, "not_configured", "run auth login first")
	require.True(t, asCLIError(wrapped, &target))
	assert.Equal(t, ExitNotConfigured, target.ExitCode)
	assert.Equal(t, "not_configured", target.Code)

	assert.False(t, asCLIError(errors.New("plain"), &target))
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input    string
		n        int
		expected string
	}{
		{"short", 10, "short"},
		{"exactly ten chars!", 18, "exactly ten chars!"},
		{"this is a longer string", 10, "this is a…"},
		{"héllo wörld", 7, "héllo …"},
		{"x", 1, "x"},
		{"xy", 1, "…"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, truncate(tt.input, tt.n))
	}
}

func TestFirstLine(t *testing.T) {
	assert.Equal(t, "first", firstLine("first\nsecond\nthird"))
	assert.Equal(t, "only", firstLine("only"))
	assert.Equal(t, "", firstLine("\nrest"))
}
