package models

import (
	"time"
)

// Contact represents a submitted contact form message
type Contact struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Subject   string    `json:"subject" db:"subject"`
	Message   string    `json:"message" db:"message"`
	IsRead    bool      `json:"isRead" db:"is_read"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// NewsletterSubscriber represents a newsletter subscription
type NewsletterSubscriber struct {
	ID             string     `json:"id" db:"id"`
	Email          string     `json:"email" db:"email"`
	IsActive       bool       `json:"isActive" db:"is_active"`
	SubscribedAt   time.Time  `json:"subscribedAt" db:"subscribed_at"`
	UnsubscribedAt *time.Time `json:"unsubscribedAt,omitempty" db:"unsubscribed_at"`
}
