package dto

import (
	"github.com/wilsonXeem/clong-backend/internal/app/models"
)

// ApplyVolunteerRequest is the payload for volunteer applications
type ApplyVolunteerRequest struct {
	FirstName    string  `json:"firstName" binding:"required" validate:"required,min=2,max=100"`
	LastName     string  `json:"lastName" binding:"required" validate:"required,min=2,max=100"`
	Email        string  `json:"email" binding:"required" validate:"required,email"`
	Phone        *string `json:"phone,omitempty" validate:"omitempty,max=20"`
	Skills       *string `json:"skills,omitempty" validate:"omitempty,max=500"`
	Availability *string `json:"availability,omitempty" validate:"omitempty,max=200"`
	Interests    *string `json:"interests,omitempty" validate:"omitempty,max=300"`
	Experience   *string `json:"experience,omitempty"`
	Motivation   *string `json:"motivation,omitempty"`
}

// UpdateVolunteerStatusRequest is the payload for application status changes
type UpdateVolunteerStatusRequest struct {
	Status models.VolunteerStatus `json:"status" binding:"required" validate:"required,oneof=pending approved rejected active"`
}
