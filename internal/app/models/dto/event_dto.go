package dto

// CreateEventRequest is the multipart form payload for event creation.
// An optional "image" file part is relayed to the image host.
type CreateEventRequest struct {
	Title        string  `form:"title" binding:"required" validate:"required,min=2,max=255"`
	Description  string  `form:"description" binding:"required" validate:"required"`
	Location     *string `form:"location" validate:"omitempty,max=255"`
	EventDate    string  `form:"eventDate" binding:"required" validate:"required"` // RFC 3339
	MaxAttendees *int    `form:"maxAttendees" validate:"omitempty,min=1"`
}

// UpdateEventRequest is the payload for event updates
type UpdateEventRequest struct {
	Title        string  `json:"title" validate:"omitempty,min=2,max=255"`
	Description  string  `json:"description" validate:"omitempty"`
	ImageURL     *string `json:"imageUrl,omitempty"`
	Location     *string `json:"location,omitempty" validate:"omitempty,max=255"`
	EventDate    *string `json:"eventDate,omitempty"`
	MaxAttendees *int    `json:"maxAttendees,omitempty" validate:"omitempty,min=1"`
}

// RegisterForEventRequest is the payload for event registration
type RegisterForEventRequest struct {
	AttendeeName  string  `json:"attendeeName" binding:"required" validate:"required,min=2,max=255"`
	AttendeeEmail string  `json:"attendeeEmail" binding:"required" validate:"required,email"`
	AttendeePhone *string `json:"attendeePhone,omitempty" validate:"omitempty,max=20"`
}
