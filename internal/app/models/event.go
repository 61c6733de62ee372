package models

import (
	"time"
)

// Event represents an event with an optional attendance cap
type Event struct {
	ID               string    `json:"id" db:"id"`
	Title            string    `json:"title" db:"title"`
	Description      string    `json:"description" db:"description"`
	ImageURL         *string   `json:"imageUrl,omitempty" db:"image_url"`
	Location         *string   `json:"location,omitempty" db:"location"`
	EventDate        time.Time `json:"eventDate" db:"event_date"`
	MaxAttendees     *int      `json:"maxAttendees,omitempty" db:"max_attendees"` // nil means unlimited capacity
	CurrentAttendees int       `json:"currentAttendees" db:"current_attendees"`
	IsActive         bool      `json:"isActive" db:"is_active"`
	CreatedAt        time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time `json:"updatedAt" db:"updated_at"`
}

// EventRegistration represents an attendee registered for an event
type EventRegistration struct {
	ID               string    `json:"id" db:"id"`
	EventID          string    `json:"eventId" db:"event_id"`
	UserID           *string   `json:"userId,omitempty" db:"user_id"`
	AttendeeName     string    `json:"attendeeName" db:"attendee_name"`
	AttendeeEmail    string    `json:"attendeeEmail" db:"attendee_email"`
	AttendeePhone    *string   `json:"attendeePhone,omitempty" db:"attendee_phone"`
	RegistrationDate time.Time `json:"registrationDate" db:"registration_date"`
}
