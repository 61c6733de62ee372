package models

import (
	"time"
)

// PaymentStatus tracks the state of a donation payment
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

// ValidPaymentStatus reports whether s is a known payment status
func ValidPaymentStatus(s PaymentStatus) bool {
	switch s {
	case PaymentPending, PaymentCompleted, PaymentFailed:
		return true
	}
	return false
}

// Donation represents a single donation, optionally tied to a program and user
type Donation struct {
	ID               string        `json:"id" db:"id"`
	UserID           *string       `json:"userId,omitempty" db:"user_id"`
	ProgramID        *string       `json:"programId,omitempty" db:"program_id"`
	Amount           string        `json:"amount" db:"amount"` // numeric(12,2)
	DonorName        *string       `json:"donorName,omitempty" db:"donor_name"`
	DonorEmail       *string       `json:"donorEmail,omitempty" db:"donor_email"`
	IsAnonymous      bool          `json:"isAnonymous" db:"is_anonymous"`
	PaymentStatus    PaymentStatus `json:"paymentStatus" db:"payment_status"`
	PaymentReference *string       `json:"paymentReference,omitempty" db:"payment_reference"`
	CreatedAt        time.Time     `json:"createdAt" db:"created_at"`

	ProgramTitle *string `json:"programTitle,omitempty"` // joined, no db column
}
