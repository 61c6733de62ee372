package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountDisabled    = errors.New("account is disabled")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// User errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Program errors
var (
	ErrProgramNotFound = errors.New("program not found")
)

// Donation errors
var (
	ErrDonationNotFound      = errors.New("donation not found")
	ErrInvalidPaymentStatus  = errors.New("invalid payment status")
	ErrDonationAlreadyClosed = errors.New("donation already completed")
)

// Event errors
var (
	ErrEventNotFound = errors.New("event not found")
	ErrEventFull     = errors.New("event is full")
)

// Content errors
var (
	ErrArticleNotFound  = errors.New("article not found")
	ErrSlugAlreadyUsed  = errors.New("article with this slug already exists")
	ErrStoryNotFound    = errors.New("story not found")
	ErrResourceFileMiss = errors.New("file is required")
)

// Volunteer errors
var (
	ErrVolunteerNotFound      = errors.New("volunteer not found")
	ErrVolunteerAlreadyExists = errors.New("an application with this email already exists")
)

// Outreach errors
var (
	ErrContactNotFound   = errors.New("contact not found")
	ErrAlreadySubscribed = errors.New("email already subscribed")
	ErrSubscriberMissing = errors.New("subscriber not found")
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewForbiddenError creates a new custom error for permission denied with a message
func NewForbiddenError(message string) error {
	return &CustomError{
		Err:     ErrPermissionDenied,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}
