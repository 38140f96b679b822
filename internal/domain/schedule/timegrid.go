package schedule

import (
	"time"

	"github.com/medonline/consultation-scheduler/internal/models"
)

// ===============================
// Daily slot grid
// ===============================

const (
	GridStartHour = 7
	GridEndHour   = 22
	SlotMinutes   = models.SlotMin

	// Two slots per hour from 07:00 through 22:30.
	SlotsPerDay = (GridEndHour - GridStartHour + 1) * 2
)

// TimeSlots returns the full daily slot lattice: "07:00", "07:30", ...,
// "22:30". Every calendar in the system renders against this grid.
func TimeSlots() []string {
	slots := make([]string, 0, SlotsPerDay)
	for hour := GridStartHour; hour <= GridEndHour; hour++ {
		slots = append(slots,
			models.MinutesToClock(hour*60),
			models.MinutesToClock(hour*60+SlotMinutes),
		)
	}
	return slots
}

// VisibleSlots returns the page of the slot grid starting at startHour and
// spanning hoursPerPage hours. startHour is clamped to the grid.
func VisibleSlots(slots []string, startHour, hoursPerPage int) []string {
	startHour = ClampStartHour(startHour)

	from := 2 * (startHour - GridStartHour)
	to := from + 2*hoursPerPage
	if from > len(slots) {
		from = len(slots)
	}
	if to > len(slots) {
		to = len(slots)
	}
	if to < from {
		to = from
	}
	return slots[from:to]
}

// ClampStartHour keeps the paging cursor inside the 07..22 grid.
func ClampStartHour(hour int) int {
	if hour < GridStartHour {
		return GridStartHour
	}
	if hour > GridEndHour {
		return GridEndHour
	}
	return hour
}

// ===============================
// Week window
// ===============================

type Direction string

const (
	DirectionPrevious Direction = "previous"
	DirectionNext     Direction = "next"
)

// Week returns the 7 consecutive days of anchor's week, Monday first.
// Sunday belongs to the week that started six days earlier.
func Week(anchor time.Time) []time.Time {
	offset := 1 - int(anchor.Weekday())
	if anchor.Weekday() == time.Sunday {
		offset = -6
	}

	monday := midnight(anchor).AddDate(0, 0, offset)

	week := make([]time.Time, 7)
	for i := range week {
		week[i] = monday.AddDate(0, 0, i)
	}
	return week
}

// ShiftWeek moves the whole window seven days from the first displayed day.
// An empty window comes back unchanged.
func ShiftWeek(current []time.Time, dir Direction) []time.Time {
	if len(current) == 0 {
		return current
	}
	start := current[0]

	days := 7
	if dir == DirectionPrevious {
		days = -7
	}
	return Week(start.AddDate(0, 0, days))
}

// DateString formats a day the way records key their dates.
func DateString(day time.Time) string {
	return day.Format(models.DateLayout)
}

// WeekdayName returns the English weekday name used by cyclic availability.
func WeekdayName(day time.Time) string {
	return day.Weekday().String()
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
