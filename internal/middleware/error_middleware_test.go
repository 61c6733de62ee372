package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/wilsonXeem/clong-backend/internal/app/models/dto"
	"github.com/wilsonXeem/clong-backend/internal/pkg/apperrors"
)

func TestHandleAPIError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    dto.ErrorCode
		wantMessage string
	}{
		{"user not found", apperrors.ErrUserNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "User not found"},
		{"program not found", apperrors.ErrProgramNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Program not found"},
		{"event not found", apperrors.ErrEventNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Event not found"},
		{"subscriber missing", apperrors.ErrSubscriberMissing, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Email not found in subscribers"},
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid credentials"},
		{"account disabled", apperrors.ErrAccountDisabled, http.StatusForbidden, dto.ErrorCodeAccountDisabled, "Account is disabled"},
		{"permission denied", apperrors.ErrPermissionDenied, http.StatusForbidden, dto.ErrorCodeForbidden, "Permission denied"},
		{"email exists", apperrors.ErrEmailAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "User already exists"},
		{"slug taken", apperrors.ErrSlugAlreadyUsed, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "An article with this slug already exists"},
		{"event full", apperrors.ErrEventFull, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Event is full"},
		{"duplicate application", apperrors.ErrVolunteerAlreadyExists, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "An application with this email already exists"},
		{"already subscribed", apperrors.ErrAlreadySubscribed, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Email already subscribed"},
		{"bad payment status", apperrors.ErrInvalidPaymentStatus, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Invalid payment status"},
		{"missing file", apperrors.ErrResourceFileMiss, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "File is required"},
		{"custom bad request", apperrors.NewBadRequestError("Cannot delete your own account"), http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Cannot delete your own account"},
		{"unknown error", errors.New("pool exhausted"), http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

			HandleAPIError(c, tc.err)

			if w.Code != tc.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tc.wantStatus)
			}
			resp := decodeError(t, w.Body.Bytes())
			if resp.Success {
				t.Error("success = true in error response")
			}
			if resp.Error == nil {
				t.Fatal("missing error detail")
			}
			if resp.Error.Code != tc.wantCode {
				t.Errorf("code = %s, want %s", resp.Error.Code, tc.wantCode)
			}
			if resp.Error.Message != tc.wantMessage {
				t.Errorf("message = %q, want %q", resp.Error.Message, tc.wantMessage)
			}
		})
	}
}

func TestHandleAPIErrorWrappedSentinel(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

	HandleAPIError(c, fmt.Errorf("loading donation: %w", apperrors.ErrDonationNotFound))

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404 for wrapped sentinel", w.Code)
	}
}
