package deadline

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock_TwelveHourForms(t *testing.T) {
	tests := []struct {
		input string
		want  Clock
	}{
		{input: "5:00 pm", want: Clock{Hour: 17}},
		{input: "5 pm", want: Clock{Hour: 17}},
		{input: "5pm", want: Clock{Hour: 17}},
		{input: "5PM", want: Clock{Hour: 17}},
		{input: "9:30 AM", want: Clock{Hour: 9, Minute: 30}},
		{input: "11:45 pm", want: Clock{Hour: 23, Minute: 45}},
		{input: "12 pm", want: Clock{Hour: 12}}, // noon stays 12
		{input: "12 am", want: Clock{Hour: 0}},  // midnight maps to 0
		{input: "12:01 am", want: Clock{Hour: 0, Minute: 1}},
		{input: "1 am", want: Clock{Hour: 1}},
		{input: "  7 pm  ", want: Clock{Hour: 19}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseClock(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseClock_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "24-hour clock", input: "17:00"},
		{name: "hour out of range", input: "25:00"},
		{name: "hour 13 with meridiem", input: "13 pm"},
		{name: "hour 0 with meridiem", input: "0pm"},
		{name: "missing meridiem", input: "5"},
		{name: "words", input: "noon"},
		{name: "empty", input: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseClock(tt.input)
			require.Error(t, err)

			var perr *Error
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, InvalidTime, perr.Kind)
			assert.Equal(t, tt.input, perr.Fragment)
		})
	}
}
