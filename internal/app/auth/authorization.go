package auth

import (
	"github.com/wilsonXeem/clong-backend/internal/app/models"
	"github.com/wilsonXeem/clong-backend/internal/pkg/apperrors"
)

// AuthorizationService decides who may act on owned records. Every
// ownership check in the codebase goes through here so the admin
// override is applied in exactly one place.
type AuthorizationService struct{}

// NewAuthorizationService creates a new AuthorizationService
func NewAuthorizationService() *AuthorizationService {
	return &AuthorizationService{}
}

// IsAdmin reports whether the role carries the admin override
func (s *AuthorizationService) IsAdmin(role models.Role) bool {
	return role == models.RoleAdmin
}

// CanModify reports whether the actor may modify a record owned by
// ownerID. A nil ownerID means the record has no owner, so only an
// admin may touch it.
func (s *AuthorizationService) CanModify(actorID string, role models.Role, ownerID *string) bool {
	if s.IsAdmin(role) {
		return true
	}
	return ownerID != nil && *ownerID == actorID
}

// ValidateCanModify returns a permission error when CanModify is false
func (s *AuthorizationService) ValidateCanModify(actorID string, role models.Role, ownerID *string) error {
	if !s.CanModify(actorID, role, ownerID) {
		return apperrors.ErrPermissionDenied
	}
	return nil
}
