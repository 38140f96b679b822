package models

import (
	"testing"
)

func TestClockMinutes(t *testing.T) {
	cases := []struct {
		clock   string
		minutes int
	}{
		{clock: "00:15", minutes: 15},
		{clock: "00:30", minutes: 30},
		{clock: "01:00", minutes: 60},
		{clock: "07:00", minutes: 420},
		{clock: "09:05", minutes: 545},
		{clock: "14:35", minutes: 875},
		{clock: "22:30", minutes: 1350},
		{clock: "23:59", minutes: 1439},
	}

	for _, c := range cases {
		got, err := ClockMinutes(c.clock)
		if err != nil {
			t.Fatalf("ClockMinutes(%q): %v", c.clock, err)
		}
		if got != c.minutes {
			t.Fatalf("ClockMinutes(%q): expected %d, got %d", c.clock, c.minutes, got)
		}
		if back := MinutesToClock(c.minutes); back != c.clock {
			t.Fatalf("MinutesToClock(%d): expected %s, got %s", c.minutes, c.clock, back)
		}
	}
}

func TestClockMinutesRejectsMalformed(t *testing.T) {
	for _, clock := range []string{"", "9:00", "09:0", "24:00", "09:60", "09-00", "ab:cd"} {
		if _, err := ClockMinutes(clock); err == nil {
			t.Fatalf("ClockMinutes(%q): expected error", clock)
		}
	}
}

func TestIsOnSlotBoundary(t *testing.T) {
	cases := []struct {
		clock string
		want  bool
	}{
		{"07:00", true},
		{"07:30", true},
		{"22:30", true},
		{"07:15", false},
		{"7:00", false},
	}

	for _, c := range cases {
		if got := IsOnSlotBoundary(c.clock); got != c.want {
			t.Fatalf("IsOnSlotBoundary(%q): expected %v, got %v", c.clock, c.want, got)
		}
	}
}
