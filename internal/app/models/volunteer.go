package models

import (
	"time"
)

// VolunteerStatus tracks the lifecycle of a volunteer application
type VolunteerStatus string

const (
	VolunteerPending  VolunteerStatus = "pending"
	VolunteerApproved VolunteerStatus = "approved"
	VolunteerRejected VolunteerStatus = "rejected"
	VolunteerActive   VolunteerStatus = "active"
)

// ValidVolunteerStatus reports whether s is a known application status
func ValidVolunteerStatus(s VolunteerStatus) bool {
	switch s {
	case VolunteerPending, VolunteerApproved, VolunteerRejected, VolunteerActive:
		return true
	}
	return false
}

// Volunteer represents a volunteer application
type Volunteer struct {
	ID           string          `json:"id" db:"id"`
	UserID       *string         `json:"userId,omitempty" db:"user_id"`
	FirstName    string          `json:"firstName" db:"first_name"`
	LastName     string          `json:"lastName" db:"last_name"`
	Email        string          `json:"email" db:"email"`
	Phone        *string         `json:"phone,omitempty" db:"phone"`
	Skills       *string         `json:"skills,omitempty" db:"skills"`
	Availability *string         `json:"availability,omitempty" db:"availability"`
	Interests    *string         `json:"interests,omitempty" db:"interests"`
	Experience   *string         `json:"experience,omitempty" db:"experience"`
	Motivation   *string         `json:"motivation,omitempty" db:"motivation"`
	Status       VolunteerStatus `json:"status" db:"status"`
	CreatedAt    time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time       `json:"updatedAt" db:"updated_at"`
}
