package deadline

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// anchor is Monday, June 10 2024. All relative keywords resolve against it.
var anchor = time.Date(2024, 6, 10, 14, 30, 0, 0, time.Local)

func TestParseAt_RelativeKeywords(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "today", want: "2024-06-10T21:00:00"},
		{input: "tmr", want: "2024-06-11T21:00:00"},
		{input: "tomorrow", want: "2024-06-11T21:00:00"},
		{input: "day after tomorrow", want: "2024-06-12T21:00:00"},
		{input: "day after tmr", want: "2024-06-12T21:00:00"},
		{input: "yesterday", want: "2024-06-09T21:00:00"},
		{input: "day before yesterday", want: "2024-06-08T21:00:00"},
		{input: "next week", want: "2024-06-17T21:00:00"},
		{input: "week after next week", want: "2024-06-24T21:00:00"},
		{input: "end of this week", want: "2024-06-14T21:00:00"},
		{input: "end of week", want: "2024-06-14T21:00:00"},
		{input: "next month", want: "2024-07-10T21:00:00"},
		{input: "end of this month", want: "2024-06-30T21:00:00"},
		{input: "end of month", want: "2024-06-30T21:00:00"},
		{input: "end of next month", want: "2024-07-31T21:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAt(tt.input, anchor)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseAt_Normalization(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "due prefix", input: "due tmr at 5pm", want: "2024-06-11T17:00:00"},
		{name: "mixed case", input: "Tomorrow At 5 PM", want: "2024-06-11T17:00:00"},
		{name: "surrounding whitespace", input: "  due tmr  ", want: "2024-06-11T21:00:00"},
		{name: "explicit date with time", input: "3/14/24 at 9:30 AM", want: "2024-03-14T09:30:00"},
		{name: "explicit date no time", input: "3/14/24", want: "2024-03-14T21:00:00"},
		{name: "zero padded date", input: "03/04/24", want: "2024-03-04T21:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAt(tt.input, anchor)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// The "due " prefix is stripped before lower-casing, so only the exact
// lower-case form is recognized; "Due tmr" fails as an unknown date phrase.
func TestParseAt_DuePrefixIsCaseSensitive(t *testing.T) {
	_, err := ParseAt("Due tmr", anchor)
	require.Error(t, err)

	var perr *Error
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, UnrecognizedDate, perr.Kind)
	assert.Equal(t, "due tmr", perr.Fragment)
}

// End-of-week resolves to the Friday of the current Monday-started week,
// which is already in the past when asked on Saturday or Sunday.
func TestParseAt_EndOfWeekAfterFriday(t *testing.T) {
	saturday := time.Date(2024, 6, 15, 9, 0, 0, 0, time.Local)
	got, err := ParseAt("end of this week", saturday)
	require.NoError(t, err)
	assert.Equal(t, "2024-06-14T21:00:00", got)

	sunday := time.Date(2024, 6, 16, 9, 0, 0, 0, time.Local)
	got, err = ParseAt("end of week", sunday)
	require.NoError(t, err)
	assert.Equal(t, "2024-06-14T21:00:00", got)
}

func TestParseAt_LastAtWins(t *testing.T) {
	// The separator is the last " at "; everything before it is the date
	// fragment, so a doubled "at" produces an unrecognized date.
	_, err := ParseAt("tmr at 5pm at 6pm", anchor)
	require.Error(t, err)

	var perr *Error
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, UnrecognizedDate, perr.Kind)
	assert.Equal(t, "tmr at 5pm", perr.Fragment)
}

func TestParseAt_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		kind     Kind
		fragment string
	}{
		{name: "unknown phrase", input: "whenever", kind: UnrecognizedDate, fragment: "whenever"},
		{name: "impossible date", input: "2/30/24", kind: InvalidCalendarDate, fragment: "2/30/24"},
		{name: "month thirteen", input: "13/1/24", kind: InvalidCalendarDate, fragment: "13/1/24"},
		{name: "day zero", input: "6/0/24", kind: InvalidCalendarDate, fragment: "6/0/24"},
		{name: "bad time", input: "today at 25:00", kind: InvalidTime, fragment: "25:00"},
		{name: "time fragment not a time", input: "tmr at noon", kind: InvalidTime, fragment: "noon"},
		// Trailing " at " loses its final space to trimming, so no separator
		// is found and the whole string is treated as a date phrase.
		{name: "dangling at", input: "tmr at ", kind: UnrecognizedDate, fragment: "tmr at"},
		{name: "four digit year", input: "3/14/2024", kind: UnrecognizedDate, fragment: "3/14/2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAt(tt.input, anchor)
			require.Error(t, err)

			var perr *Error
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, tt.kind, perr.Kind)
			assert.Equal(t, tt.fragment, perr.Fragment)
		})
	}
}

// Formatting a resolved date and feeding its numeric form back through the
// parser lands on the same date.
func TestParseAt_NumericRoundTrip(t *testing.T) {
	got, err := ParseAt("end of next month", anchor)
	require.NoError(t, err)
	require.Equal(t, "2024-07-31T21:00:00", got)

	again, err := ParseAt(fmt.Sprintf("%d/%d/%02d", 7, 31, 24), anchor)
	require.NoError(t, err)
	assert.Equal(t, got, again)
}

func TestParseAt_LeapDay(t *testing.T) {
	got, err := ParseAt("2/29/24", anchor)
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29T21:00:00", got)

	// 2023 is not a leap year: same day/month is invalid in 23.
	_, err = ParseAt("2/29/23", anchor)
	var perr *Error
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, InvalidCalendarDate, perr.Kind)
}

func TestParse_UsesCurrentDate(t *testing.T) {
	got, err := Parse("today")
	require.NoError(t, err)

	want := DateOf(time.Now())
	assert.Equal(t, fmt.Sprintf("%04d-%02d-%02dT21:00:00", want.Year, want.Month, want.Day), got)
}
