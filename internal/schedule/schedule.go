// Package schedule assigns a publication date and time to every post slot.
package schedule

import (
	"strconv"
	"strings"
	"time"
)

// Distribution controls how slots are spread over days.
type Distribution string

const (
	// Same gives every slot the base date.
	Same Distribution = "same"
	// Different moves each slot IntervalDays after the previous one.
	Different Distribution = "different"
)

const (
	// DateLayout is the ISO calendar date used for slots and form inputs.
	DateLayout = time.DateOnly
	// TimeLayout is the 24h clock used for slots and form inputs.
	TimeLayout = "15:04"
)

// MinIntervalDays is the smallest spacing between posts of a Different batch.
const MinIntervalDays = 1

// Options are the scheduling inputs of a batch.
type Options struct {
	BaseDate     string
	BaseTime     string
	Count        int
	Distribution Distribution
	IntervalDays int
}

// Slot is the timestamp of one post.
type Slot struct {
	Date string
	Time string
}

// String renders the slot as "YYYY-MM-DD HH:MM".
func (s Slot) String() string {
	return s.Date + " " + s.Time
}

// ParseDistribution maps a form value to a Distribution, defaulting to Same.
func ParseDistribution(s string) Distribution {
	if Distribution(s) == Different {
		return Different
	}

	return Same
}

// Slots computes one timestamp per post. An unparseable base date falls back
// to now's date; an unparseable base time falls back to now rounded down to
// five minutes. IntervalDays below MinIntervalDays is raised to it, so dates
// never decrease along the batch.
func Slots(opts Options, now time.Time) []Slot {
	base, err := time.Parse(DateLayout, opts.BaseDate)
	if err != nil {
		base = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}

	hour, minute, ok := parseClock(opts.BaseTime)
	if !ok {
		hour, minute = DefaultClock(now)
	}

	interval := max(opts.IntervalDays, MinIntervalDays)

	slots := make([]Slot, 0, max(opts.Count, 0))
	for i := 1; i <= opts.Count; i++ {
		day := base
		if opts.Distribution == Different {
			day = base.AddDate(0, 0, (i-1)*interval)
		}

		at := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.UTC)
		slots = append(slots, Slot{
			Date: at.Format(DateLayout),
			Time: at.Format(TimeLayout),
		})
	}

	return slots
}

// DefaultClock is now's hour and minute rounded down to a five-minute mark.
func DefaultClock(now time.Time) (int, int) {
	return now.Hour(), (now.Minute() / 5) * 5
}

// DefaultTime formats DefaultClock as "HH:MM".
func DefaultTime(now time.Time) string {
	hour, minute := DefaultClock(now)

	return time.Date(2000, 1, 1, hour, minute, 0, 0, time.UTC).Format(TimeLayout)
}

// parseClock accepts "H:M" with one or two digits per part.
func parseClock(s string) (int, int, bool) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, 0, false
	}

	hour, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, false
	}

	minute, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, false
	}

	return hour, minute, true
}
