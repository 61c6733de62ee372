package models

import (
	"time"
)

// Program represents a fundraising program run by the organization
type Program struct {
	ID            string     `json:"id" db:"id"`
	Title         string     `json:"title" db:"title"`
	Description   string     `json:"description" db:"description"`
	ImageURL      *string    `json:"imageUrl,omitempty" db:"image_url"`
	TargetAmount  *string    `json:"targetAmount,omitempty" db:"target_amount"` // numeric(12,2), kept as string to avoid float drift
	CurrentAmount string     `json:"currentAmount" db:"current_amount"`        // derived total of completed donations
	StartDate     *time.Time `json:"startDate,omitempty" db:"start_date"`
	EndDate       *time.Time `json:"endDate,omitempty" db:"end_date"`
	IsActive      bool       `json:"isActive" db:"is_active"`
	CreatedAt     time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time  `json:"updatedAt" db:"updated_at"`
}
