package models

import (
	"time"
)

// Role defines the access level of a user account
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User defines the user model based on the 'users' table
type User struct {
	ID        string    `json:"id" db:"id" example:"7a1f7a3e-0d3a-4ef6-9d52-19e0b8a2c911"` // Unique identifier for the user
	Email     string    `json:"email" db:"email" example:"donor@example.com"`              // User's email address
	Password  string    `json:"-" db:"password"`                                           // User's hashed password (excluded from JSON)
	FirstName string    `json:"firstName" db:"first_name" example:"Ada"`                   // User's first name
	LastName  string    `json:"lastName" db:"last_name" example:"Obi"`                     // User's last name
	Phone     *string   `json:"phone,omitempty" db:"phone" example:"+2348012345678"`       // User's phone number (nullable)
	Role      Role      `json:"role" db:"role" example:"user"`                             // User's role (user or admin)
	IsActive  bool      `json:"isActive" db:"is_active" example:"true"`                    // Whether the user account is active
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
