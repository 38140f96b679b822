package models

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	DateLayout = "2006-01-02"
	SlotMin    = 30
)

// ClockMinutes converts a zero-padded "HH:MM" wall-clock string to minutes
// since midnight. All slot comparison goes through minute arithmetic, never
// lexical string comparison.
func ClockMinutes(clock string) (int, error) {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, fmt.Errorf("invalid clock value %q", clock)
	}

	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid clock value %q", clock)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid clock value %q", clock)
	}

	return h*60 + m, nil
}

// MinutesToClock is the inverse of ClockMinutes.
func MinutesToClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// IsOnSlotBoundary reports whether clock falls exactly on the half-hour grid.
func IsOnSlotBoundary(clock string) bool {
	m, err := ClockMinutes(clock)
	return err == nil && m%SlotMin == 0
}
