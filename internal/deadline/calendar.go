package deadline

import "time"

// Date is a civil calendar date with no time of day or zone attached.
type Date struct {
	Year  int
	Month int // 1-12
	Day   int // 1-31
}

// DateOf returns the civil date of t in its location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: int(m), Day: d}
}

// IsLeapYear reports whether year is a Gregorian leap year.
func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// DaysInMonth returns the number of days in the given month.
// Months outside 1..12 return 0.
func DaysInMonth(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 0
	}
}

// AddMonths shifts d by delta months (negative deltas go backwards), carrying
// year overflow and clamping the day to the end of the target month, so
// Jan 31 + 1 month is Feb 28 (or Feb 29 in a leap year).
func AddMonths(d Date, delta int) Date {
	year := d.Year
	month := d.Month + delta

	year += (month - 1) / 12
	month = (month-1)%12 + 1
	if month <= 0 {
		month += 12
		year--
	}

	day := min(d.Day, DaysInMonth(year, month))
	return Date{Year: year, Month: month, Day: day}
}

// LastDayOfMonth returns the final date of the given month.
func LastDayOfMonth(year, month int) Date {
	return Date{Year: year, Month: month, Day: DaysInMonth(year, month)}
}

// AddDays shifts d by n calendar days (n may be negative).
func (d Date) AddDays(n int) Date {
	// time.Date normalizes out-of-range days across month and year boundaries.
	t := time.Date(d.Year, time.Month(d.Month), d.Day+n, 0, 0, 0, 0, time.UTC)
	return DateOf(t)
}

// weekdayFromMonday returns the ISO weekday number: Monday=1 .. Sunday=7.
func (d Date) weekdayFromMonday() int {
	t := time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}
