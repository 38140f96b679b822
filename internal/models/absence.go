package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Absence blocks every slot of one calendar day for its doctor, whatever
// the declared availability says.
type Absence struct {
	Key    string `json:"key"`
	Date   string `json:"date"` // YYYY-MM-DD
	Reason string `json:"reason"`
}

func (a Absence) Validate() error {
	if a.Key == "" {
		return fmt.Errorf("absence: missing key")
	}
	if _, err := time.Parse(DateLayout, a.Date); err != nil {
		return fmt.Errorf("absence %s: invalid date %q", a.Key, a.Date)
	}
	return nil
}

func ParseAbsence(data json.RawMessage) (Absence, error) {
	var a Absence
	if err := json.Unmarshal(data, &a); err != nil {
		return Absence{}, fmt.Errorf("absence: %w", err)
	}
	if err := a.Validate(); err != nil {
		return Absence{}, err
	}
	return a, nil
}
