// Package deadline converts free-form deadline expressions ("due tmr at 5pm",
// "end of next month", "3/14/24") into canonical YYYY-MM-DDTHH:MM:SS strings.
//
// Parsing is pure apart from one read of the current local date; ParseAt
// accepts an explicit reference time so tests can pin "today".
package deadline

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const friday = 5 // ISO weekday number, Monday=1

// numericDatePattern matches explicit M/D/YY dates ("3/14/24").
var numericDatePattern = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{2})$`)

// Parse resolves a deadline expression against the current local date.
func Parse(input string) (string, error) {
	return ParseAt(input, time.Now())
}

// ParseAt is the testable variant that resolves against an explicit now.
//
// The input is trimmed, an optional leading "due " is stripped, and the
// remainder is lower-cased. Everything after the last " at " is the time
// fragment; without one, the deadline defaults to 21:00:00.
func ParseAt(input string, now time.Time) (string, error) {
	raw := strings.TrimSpace(input)
	raw = strings.TrimPrefix(raw, "due ")
	s := strings.ToLower(strings.TrimSpace(raw))

	datePart := s
	timePart := ""
	hasTime := false
	if idx := strings.LastIndex(s, " at "); idx >= 0 {
		datePart = strings.TrimSpace(s[:idx])
		timePart = strings.TrimSpace(s[idx+4:])
		hasTime = true
	}

	clock := defaultClock
	if hasTime {
		var err error
		clock, err = parseClock(timePart)
		if err != nil {
			return "", err
		}
	}

	date, err := resolveDate(datePart, DateOf(now))
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d",
		date.Year, date.Month, date.Day,
		clock.Hour, clock.Minute, clock.Second), nil
}

// resolveDate maps a normalized date phrase to a concrete civil date,
// anchored at today. Relative keywords are tried first, then the numeric
// M/D/YY form (two-digit years read as 2000+YY).
func resolveDate(fragment string, today Date) (Date, error) {
	switch fragment {
	case "today":
		return today, nil
	case "tmr", "tomorrow":
		return today.AddDays(1), nil
	case "day after tomorrow", "day after tmr":
		return today.AddDays(2), nil
	case "yesterday":
		return today.AddDays(-1), nil
	case "day before yesterday":
		return today.AddDays(-2), nil
	case "next week":
		return today.AddDays(7), nil
	case "week after next week":
		return today.AddDays(14), nil
	case "end of this week", "end of week":
		// Friday of the current Monday-started week. On Saturday or Sunday
		// this lands in the past; kept as-is.
		return today.AddDays(friday - today.weekdayFromMonday()), nil
	case "next month":
		return AddMonths(today, 1), nil
	case "end of this month", "end of month":
		return LastDayOfMonth(today.Year, today.Month), nil
	case "end of next month":
		nm := AddMonths(today, 1)
		return LastDayOfMonth(nm.Year, nm.Month), nil
	}

	m := numericDatePattern.FindStringSubmatch(fragment)
	if m == nil {
		return Date{}, &Error{Kind: UnrecognizedDate, Fragment: fragment}
	}

	month, _ := strconv.Atoi(m[1])
	day, _ := strconv.Atoi(m[2])
	yy, _ := strconv.Atoi(m[3])
	year := 2000 + yy

	if month < 1 || month > 12 || day < 1 || day > DaysInMonth(year, month) {
		return Date{}, &Error{Kind: InvalidCalendarDate, Fragment: fragment}
	}
	return Date{Year: year, Month: month, Day: day}, nil
}
