package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wilsonXeem/clong-backend/internal/app/models/dto"
	"github.com/wilsonXeem/clong-backend/internal/pkg/apperrors"
	"github.com/wilsonXeem/clong-backend/internal/pkg/logger"
)

// HandleAPIError maps service errors to HTTP responses. Every handler
// funnels its error path through here so status codes and the error
// envelope stay consistent across the API.
func HandleAPIError(c *gin.Context, err error) {
	respond := func(status int, code dto.ErrorCode, message string) {
		c.JSON(status, dto.NewErrorResponse(dto.NewErrorDetail(code, message)))
	}

	switch {
	// Not found
	case errors.Is(err, apperrors.ErrUserNotFound):
		respond(http.StatusNotFound, dto.ErrorCodeResourceNotFound, "User not found")
	case errors.Is(err, apperrors.ErrProgramNotFound):
		respond(http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Program not found")
	case errors.Is(err, apperrors.ErrDonationNotFound):
		respond(http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Donation not found")
	case errors.Is(err, apperrors.ErrEventNotFound):
		respond(http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Event not found")
	case errors.Is(err, apperrors.ErrArticleNotFound):
		respond(http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Article not found")
	case errors.Is(err, apperrors.ErrStoryNotFound):
		respond(http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Story not found")
	case errors.Is(err, apperrors.ErrVolunteerNotFound):
		respond(http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Volunteer not found")
	case errors.Is(err, apperrors.ErrContactNotFound):
		respond(http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Contact not found")
	case errors.Is(err, apperrors.ErrSubscriberMissing):
		respond(http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Email not found in subscribers")
	case errors.Is(err, apperrors.ErrResourceNotFound):
		respond(http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Resource not found")

	// Authentication
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respond(http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid credentials")
	case errors.Is(err, apperrors.ErrAccountDisabled):
		respond(http.StatusForbidden, dto.ErrorCodeAccountDisabled, "Account is disabled")

	// Authorization
	case errors.Is(err, apperrors.ErrPermissionDenied):
		respond(http.StatusForbidden, dto.ErrorCodeForbidden, "Permission denied")

	// Conflicts
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		respond(http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "User already exists")
	case errors.Is(err, apperrors.ErrSlugAlreadyUsed):
		respond(http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "An article with this slug already exists")
	case errors.Is(err, apperrors.ErrConflict):
		respond(http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, err.Error())

	// Domain rules surfaced as 400s
	case errors.Is(err, apperrors.ErrVolunteerAlreadyExists):
		respond(http.StatusBadRequest, dto.ErrorCodeValidationFailed, "An application with this email already exists")
	case errors.Is(err, apperrors.ErrEventFull):
		respond(http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Event is full")
	case errors.Is(err, apperrors.ErrAlreadySubscribed):
		respond(http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Email already subscribed")
	case errors.Is(err, apperrors.ErrInvalidPaymentStatus):
		respond(http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Invalid payment status")
	case errors.Is(err, apperrors.ErrDonationAlreadyClosed):
		respond(http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Donation already completed")
	case errors.Is(err, apperrors.ErrResourceFileMiss):
		respond(http.StatusBadRequest, dto.ErrorCodeValidationFailed, "File is required")
	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		message := "Bad request"
		var custom *apperrors.CustomError
		if errors.As(err, &custom) && custom.Message != "" {
			message = custom.Message
		}
		respond(http.StatusBadRequest, dto.ErrorCodeValidationFailed, message)

	default:
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled API error")
		detail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
		if gin.Mode() != gin.ReleaseMode {
			detail.DebugInfo = err.Error()
		}
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(detail))
	}
}
