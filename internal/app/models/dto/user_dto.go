package dto

import (
	"time"

	"github.com/wilsonXeem/clong-backend/internal/app/models"
)

// RegisterRequest is the payload for account registration
type RegisterRequest struct {
	Email     string  `json:"email" binding:"required" validate:"required,email" example:"donor@example.com"`
	Password  string  `json:"password" binding:"required" validate:"required,min=8" example:"s3cret-pass"`
	FirstName string  `json:"firstName" binding:"required" validate:"required,min=2,max=100" example:"Ada"`
	LastName  string  `json:"lastName" binding:"required" validate:"required,min=2,max=100" example:"Obi"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,max=20" example:"+2348012345678"`
}

// LoginRequest is the payload for credential login
type LoginRequest struct {
	Email    string `json:"email" binding:"required" validate:"required,email" example:"donor@example.com"`
	Password string `json:"password" binding:"required" validate:"required" example:"s3cret-pass"`
}

// UpdateProfileRequest is the payload for profile updates
type UpdateProfileRequest struct {
	FirstName string  `json:"firstName" validate:"omitempty,min=2,max=100"`
	LastName  string  `json:"lastName" validate:"omitempty,min=2,max=100"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,max=20"`
}

// UpdateRoleRequest is the payload for admin role changes
type UpdateRoleRequest struct {
	Role models.Role `json:"role" binding:"required" validate:"required,oneof=user admin" example:"admin"`
}

// UserResponse is the public shape of a user record
type UserResponse struct {
	ID        string      `json:"id"`
	Email     string      `json:"email"`
	FirstName string      `json:"firstName"`
	LastName  string      `json:"lastName"`
	Phone     *string     `json:"phone,omitempty"`
	Role      models.Role `json:"role"`
	IsActive  bool        `json:"isActive"`
	CreatedAt time.Time   `json:"createdAt"`
}

// AuthResponse is returned by register and login
type AuthResponse struct {
	User      UserResponse `json:"user"`
	Token     string       `json:"token"`
	ExpiresIn int          `json:"expiresIn" example:"604800"`
}

// ToUserResponse converts a User model to its public shape
func ToUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Phone:     u.Phone,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}
