package dto

import (
	"github.com/wilsonXeem/clong-backend/internal/app/models"
)

// CreateDonationRequest is the payload for starting a donation
type CreateDonationRequest struct {
	ProgramID   *string `json:"programId,omitempty" validate:"omitempty,uuid4"`
	Amount      string  `json:"amount" binding:"required" validate:"required" example:"250.00"`
	DonorName   *string `json:"donorName,omitempty" validate:"omitempty,max=255"`
	DonorEmail  *string `json:"donorEmail,omitempty" validate:"omitempty,email"`
	IsAnonymous bool    `json:"isAnonymous"`
}

// UpdateDonationStatusRequest is the payload for payment status transitions
type UpdateDonationStatusRequest struct {
	PaymentStatus    models.PaymentStatus `json:"paymentStatus" binding:"required" validate:"required,oneof=pending completed failed"`
	PaymentReference *string              `json:"paymentReference,omitempty" validate:"omitempty,max=255"`
}

// DonationListItem is the shape of a donation row in the public list,
// joined with the owning program's title
type DonationListItem struct {
	ID            string               `json:"id"`
	Amount        string               `json:"amount"`
	DonorName     *string              `json:"donorName,omitempty"`
	IsAnonymous   bool                 `json:"isAnonymous"`
	PaymentStatus models.PaymentStatus `json:"paymentStatus"`
	CreatedAt     string               `json:"createdAt"`
	ProgramTitle  *string              `json:"programTitle,omitempty"`
}
