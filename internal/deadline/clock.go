package deadline

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Clock is a time of day.
type Clock struct {
	Hour   int // 0-23
	Minute int // 0-59
	Second int // 0-59
}

// defaultClock is used when the input has no time fragment: 9 PM, the
// product's "end of day" default for deadlines.
var defaultClock = Clock{Hour: 21}

// meridiemPattern catches 12-hour inputs with no separator before the
// meridiem marker ("5pm"), which the layouts above reject.
var meridiemPattern = regexp.MustCompile(`^(\d{1,2})\s*(AM|PM)$`)

// parseClock interprets a time fragment such as "5 pm", "5:00 pm" or
// "11:30 am" into a Clock. The fragment is matched case-insensitively
// against the 12-hour layouts first, then the looser meridiem pattern.
func parseClock(fragment string) (Clock, error) {
	up := strings.ToUpper(strings.TrimSpace(fragment))

	for _, layout := range []string{"3:04 PM", "3 PM"} {
		if t, err := time.Parse(layout, up); err == nil {
			return Clock{Hour: t.Hour(), Minute: t.Minute()}, nil
		}
	}

	if m := meridiemPattern.FindStringSubmatch(up); m != nil {
		hour12, err := strconv.Atoi(m[1])
		if err == nil && hour12 >= 1 && hour12 <= 12 {
			hour := hour12
			if m[2] == "PM" && hour12 != 12 {
				hour += 12
			}
			if m[2] == "AM" && hour12 == 12 {
				hour = 0
			}
			return Clock{Hour: hour}, nil
		}
	}

	return Clock{}, &Error{Kind: InvalidTime, Fragment: fragment}
}
