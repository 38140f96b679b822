package models

import (
	"encoding/json"
	"fmt"
)

const (
	RoleDoctor  = "doctor"
	RolePatient = "patient"
	RoleAdmin   = "admin"
)

// Profile is the users/{userId} record.
type Profile struct {
	UserID         string `json:"user_id"`
	Type           string `json:"type"` // doctor | patient | admin
	Name           string `json:"name"`
	Surname        string `json:"surname"`
	Specialization string `json:"specialization,omitempty"`
	Email          string `json:"email"`
	PasswordHash   string `json:"password_hash"`
}

func (p Profile) Validate() error {
	if p.UserID == "" {
		return fmt.Errorf("profile: missing user_id")
	}
	switch p.Type {
	case RoleDoctor, RolePatient, RoleAdmin:
	default:
		return fmt.Errorf("profile %s: unknown type %q", p.UserID, p.Type)
	}
	return nil
}

func ParseProfile(data json.RawMessage) (Profile, error) {
	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return Profile{}, fmt.Errorf("profile: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Profile{}, err
	}
	return p, nil
}
