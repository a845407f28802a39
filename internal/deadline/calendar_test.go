package deadline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsLeapYear(t *testing.T) {
	tests := []struct {
		year int
		leap bool
	}{
		{2024, true},
		{2023, false},
		{2000, true},  // divisible by 400
		{1900, false}, // divisible by 100 but not 400
		{2100, false},
		{1996, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.leap, IsLeapYear(tt.year), "year %d", tt.year)
	}
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 31, DaysInMonth(2024, 1))
	assert.Equal(t, 29, DaysInMonth(2024, 2))
	assert.Equal(t, 28, DaysInMonth(2023, 2))
	assert.Equal(t, 30, DaysInMonth(2024, 4))
	assert.Equal(t, 31, DaysInMonth(2024, 12))
}

func TestDaysInMonth_OutOfRange(t *testing.T) {
	assert.Equal(t, 0, DaysInMonth(2024, 0))
	assert.Equal(t, 0, DaysInMonth(2024, 13))
}

func TestAddMonths_ClampsToEndOfMonth(t *testing.T) {
	// Jan 31 + 1 month clamps to the last day of February.
	assert.Equal(t, Date{2024, 2, 29}, AddMonths(Date{2024, 1, 31}, 1))
	assert.Equal(t, Date{2023, 2, 28}, AddMonths(Date{2023, 1, 31}, 1))
}

func TestAddMonths_YearCarry(t *testing.T) {
	tests := []struct {
		name  string
		in    Date
		delta int
		want  Date
	}{
		{name: "december forward", in: Date{2024, 12, 15}, delta: 1, want: Date{2025, 1, 15}},
		{name: "january backward", in: Date{2024, 1, 15}, delta: -1, want: Date{2023, 12, 15}},
		{name: "full year forward", in: Date{2024, 6, 10}, delta: 12, want: Date{2025, 6, 10}},
		{name: "full year backward", in: Date{2024, 1, 10}, delta: -12, want: Date{2023, 1, 10}},
		{name: "backward clamps", in: Date{2024, 3, 31}, delta: -1, want: Date{2024, 2, 29}},
		{name: "multi month", in: Date{2024, 10, 31}, delta: 8, want: Date{2025, 6, 30}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AddMonths(tt.in, tt.delta))
		})
	}
}

func TestLastDayOfMonth(t *testing.T) {
	assert.Equal(t, Date{2024, 2, 29}, LastDayOfMonth(2024, 2))
	assert.Equal(t, Date{2023, 2, 28}, LastDayOfMonth(2023, 2))
	assert.Equal(t, Date{2024, 6, 30}, LastDayOfMonth(2024, 6))
	assert.Equal(t, Date{2024, 12, 31}, LastDayOfMonth(2024, 12))
}

func TestAddDays_MonthAndYearBoundaries(t *testing.T) {
	assert.Equal(t, Date{2024, 3, 1}, Date{2024, 2, 29}.AddDays(1))
	assert.Equal(t, Date{2024, 12, 31}, Date{2025, 1, 1}.AddDays(-1))
	assert.Equal(t, Date{2024, 7, 1}, Date{2024, 6, 24}.AddDays(7))
}
