package auth

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wilsonXeem/clong-backend/internal/app/models"
	"github.com/wilsonXeem/clong-backend/internal/pkg/apperrors"
)

func strPtr(s string) *string { return &s }

func TestCanModify(t *testing.T) {
	svc := NewAuthorizationService()

	tests := []struct {
		name    string
		actorID string
		role    models.Role
		ownerID *string
		want    bool
	}{
		{"admin can modify anything", "admin-1", models.RoleAdmin, strPtr("user-2"), true},
		{"admin can modify ownerless records", "admin-1", models.RoleAdmin, nil, true},
		{"owner can modify own record", "user-1", models.RoleUser, strPtr("user-1"), true},
		{"user cannot modify another's record", "user-1", models.RoleUser, strPtr("user-2"), false},
		{"user cannot modify ownerless records", "user-1", models.RoleUser, nil, false},
		{"empty actor never owns", "", models.RoleUser, strPtr("user-1"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.CanModify(tt.actorID, tt.role, tt.ownerID))
		})
	}
}

func TestValidateCanModify(t *testing.T) {
	svc := NewAuthorizationService()

	if err := svc.ValidateCanModify("user-1", models.RoleUser, strPtr("user-1")); err != nil {
		t.Errorf("owner rejected: %v", err)
	}

	err := svc.ValidateCanModify("user-1", models.RoleUser, strPtr("user-2"))
	if !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Errorf("err = %v, want ErrPermissionDenied", err)
	}
}

func TestIsAdmin(t *testing.T) {
	svc := NewAuthorizationService()
	assert.True(t, svc.IsAdmin(models.RoleAdmin))
	assert.False(t, svc.IsAdmin(models.RoleUser))
}
