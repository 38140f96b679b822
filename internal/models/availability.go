package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// ===============================
// Availability
// ===============================

const (
	AvailabilityCyclic  = "cyclic"
	AvailabilityOneTime = "one-time"
)

var weekdayNames = map[string]bool{
	"Monday": true, "Tuesday": true, "Wednesday": true, "Thursday": true,
	"Friday": true, "Saturday": true, "Sunday": true,
}

// TimeSlot is a single bookable window inside an availability entry.
// StartTime is inclusive, EndTime exclusive.
type TimeSlot struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

func (s TimeSlot) Validate() error {
	start, err := ClockMinutes(s.StartTime)
	if err != nil {
		return err
	}
	end, err := ClockMinutes(s.EndTime)
	if err != nil {
		return err
	}
	if start >= end {
		return fmt.Errorf("time slot %s-%s: start must precede end", s.StartTime, s.EndTime)
	}
	if start%SlotMin != 0 || end%SlotMin != 0 {
		return fmt.Errorf("time slot %s-%s: not on the half-hour grid", s.StartTime, s.EndTime)
	}
	return nil
}

// Availability is one declared bookable window set, owned by a doctor.
// Cyclic entries repeat on the named weekdays; one-time entries apply to a
// single date, where SpecificDate == StartDate == EndDate.
type Availability struct {
	Key          string
	Type         string
	StartDate    string
	EndDate      string
	DaysOfWeek   []string
	TimeSlots    []TimeSlot
	SpecificDate string
}

// The store document keeps daysOfWeek as a comma-separated string.
type availabilityDoc struct {
	Key          string     `json:"key"`
	Type         string     `json:"type"`
	StartDate    string     `json:"startDate,omitempty"`
	EndDate      string     `json:"endDate,omitempty"`
	DaysOfWeek   string     `json:"daysOfWeek,omitempty"`
	TimeSlots    []TimeSlot `json:"timeSlots"`
	SpecificDate string     `json:"specificDate,omitempty"`
}

func (a Availability) MarshalJSON() ([]byte, error) {
	return json.Marshal(availabilityDoc{
		Key:          a.Key,
		Type:         a.Type,
		StartDate:    a.StartDate,
		EndDate:      a.EndDate,
		DaysOfWeek:   strings.Join(a.DaysOfWeek, ", "),
		TimeSlots:    a.TimeSlots,
		SpecificDate: a.SpecificDate,
	})
}

func (a *Availability) UnmarshalJSON(data []byte) error {
	var doc availabilityDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	a.Key = doc.Key
	a.Type = doc.Type
	a.StartDate = doc.StartDate
	a.EndDate = doc.EndDate
	a.TimeSlots = doc.TimeSlots
	a.SpecificDate = doc.SpecificDate

	a.DaysOfWeek = nil
	if doc.Type == AvailabilityCyclic && doc.DaysOfWeek != "" {
		for _, day := range strings.Split(doc.DaysOfWeek, ",") {
			a.DaysOfWeek = append(a.DaysOfWeek, strings.TrimSpace(day))
		}
	}
	if doc.Type == AvailabilityOneTime && a.SpecificDate == "" {
		a.SpecificDate = doc.StartDate
	}
	return nil
}

func (a Availability) Validate() error {
	if len(a.TimeSlots) == 0 {
		return fmt.Errorf("availability %s: no time slots", a.Key)
	}
	for _, slot := range a.TimeSlots {
		if err := slot.Validate(); err != nil {
			return fmt.Errorf("availability %s: %w", a.Key, err)
		}
	}

	switch a.Type {
	case AvailabilityCyclic:
		if len(a.DaysOfWeek) == 0 {
			return fmt.Errorf("availability %s: cyclic entry without daysOfWeek", a.Key)
		}
		for _, day := range a.DaysOfWeek {
			if !weekdayNames[day] {
				return fmt.Errorf("availability %s: unknown weekday %q", a.Key, day)
			}
		}
	case AvailabilityOneTime:
		if a.SpecificDate == "" {
			return fmt.Errorf("availability %s: one-time entry without date", a.Key)
		}
		if _, err := time.Parse(DateLayout, a.SpecificDate); err != nil {
			return fmt.Errorf("availability %s: invalid date %q", a.Key, a.SpecificDate)
		}
		if a.StartDate != a.SpecificDate || a.EndDate != a.SpecificDate {
			return fmt.Errorf("availability %s: one-time dates must all match", a.Key)
		}
	default:
		return fmt.Errorf("availability %s: unknown type %q", a.Key, a.Type)
	}
	return nil
}

func ParseAvailability(data json.RawMessage) (Availability, error) {
	var a Availability
	if err := json.Unmarshal(data, &a); err != nil {
		return Availability{}, fmt.Errorf("availability: %w", err)
	}
	if err := a.Validate(); err != nil {
		return Availability{}, err
	}
	return a, nil
}
