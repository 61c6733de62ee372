package dto

// CreateContactRequest is the payload for contact form submissions
type CreateContactRequest struct {
	Name    string `json:"name" binding:"required" validate:"required,min=2,max=100"`
	Email   string `json:"email" binding:"required" validate:"required,email"`
	Subject string `json:"subject" binding:"required" validate:"required,min=2,max=200"`
	Message string `json:"message" binding:"required" validate:"required"`
}

// NewsletterRequest is the payload for subscribe and unsubscribe
type NewsletterRequest struct {
	Email string `json:"email" binding:"required" validate:"required,email" example:"reader@example.com"`
}
