package schedule_test

import (
	"testing"
	"time"

	"github.com/alkime/postgen/internal/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, time.March, 14, 16, 47, 12, 0, time.UTC)

func stamps(slots []schedule.Slot) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.String()
	}

	return out
}

func TestSlots_Different(t *testing.T) {
	slots := schedule.Slots(schedule.Options{
		BaseDate:     "2024-01-01",
		BaseTime:     "09:00",
		Count:        3,
		Distribution: schedule.Different,
		IntervalDays: 2,
	}, now)

	assert.Equal(t, []string{"2024-01-01 09:00", "2024-01-03 09:00", "2024-01-05 09:00"}, stamps(slots))
}

func TestSlots_Same(t *testing.T) {
	slots := schedule.Slots(schedule.Options{
		BaseDate:     "2024-01-01",
		BaseTime:     "09:00",
		Count:        3,
		Distribution: schedule.Same,
		IntervalDays: 2,
	}, now)

	assert.Equal(t, []string{"2024-01-01 09:00", "2024-01-01 09:00", "2024-01-01 09:00"}, stamps(slots))
}

func TestSlots_CrossesMonthAndYear(t *testing.T) {
	slots := schedule.Slots(schedule.Options{
		BaseDate:     "2024-12-25",
		BaseTime:     "23:55",
		Count:        3,
		Distribution: schedule.Different,
		IntervalDays: 7,
	}, now)

	assert.Equal(t, []string{"2024-12-25 23:55", "2025-01-01 23:55", "2025-01-08 23:55"}, stamps(slots))
}

func TestSlots_Fallbacks(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		clock    string
		expected string
	}{
		{name: "bad date", date: "14/03/2025", clock: "10:30", expected: "2025-03-14 10:30"},
		{name: "empty date", date: "", clock: "07:05", expected: "2025-03-14 07:05"},
		{name: "bad time", date: "2024-06-01", clock: "noon", expected: "2024-06-01 16:45"},
		{name: "hour out of range", date: "2024-06-01", clock: "25:00", expected: "2024-06-01 16:45"},
		{name: "seconds are rejected", date: "2024-06-01", clock: "09:00:00", expected: "2024-06-01 16:45"},
		{name: "single digits", date: "2024-06-01", clock: "9:5", expected: "2024-06-01 09:05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots := schedule.Slots(schedule.Options{
				BaseDate: tt.date,
				BaseTime: tt.clock,
				Count:    1,
			}, now)

			require.Len(t, slots, 1)
			assert.Equal(t, tt.expected, slots[0].String())
		})
	}
}

func TestSlots_CountMatches(t *testing.T) {
	for _, count := range []int{0, 1, 7, 50} {
		slots := schedule.Slots(schedule.Options{BaseDate: "2024-01-01", BaseTime: "09:00", Count: count}, now)
		assert.Len(t, slots, count)
	}
}

func TestParseDistribution(t *testing.T) {
	assert.Equal(t, schedule.Different, schedule.ParseDistribution("different"))
	assert.Equal(t, schedule.Same, schedule.ParseDistribution("same"))
	assert.Equal(t, schedule.Same, schedule.ParseDistribution(""))
}

func TestDefaultTime(t *testing.T) {
	assert.Equal(t, "16:45", schedule.DefaultTime(now))
	assert.Equal(t, "00:00", schedule.DefaultTime(time.Date(2025, 1, 1, 0, 4, 59, 0, time.UTC)))
}

func TestSlots_IntervalNeverGoesBackwards(t *testing.T) {
	for _, interval := range []int{0, -2} {
		slots := schedule.Slots(schedule.Options{
			BaseDate:     "2024-01-10",
			BaseTime:     "09:00",
			Count:        3,
			Distribution: schedule.Different,
			IntervalDays: interval,
		}, now)

		assert.Equal(t, []string{"2024-01-10 09:00", "2024-01-11 09:00", "2024-01-12 09:00"}, stamps(slots),
			"interval %d", interval)
	}
}
