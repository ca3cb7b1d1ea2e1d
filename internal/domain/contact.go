package domain

import (
	"context"

	"portfolio-backend/pkg/actionstate"
)

// ContactSubmission represents a validated contact form submission.
// It is never persisted.
type ContactSubmission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// ContactSuccessMessage is returned once a message has been handed to the mail provider.
const ContactSuccessMessage = "Your message has been sent successfully! I'll get back to you soon."

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// SendContact validates the raw form input and delivers it to the site operator.
	// The previous state is accepted for form round-trips and is not read.
	SendContact(ctx context.Context, prev actionstate.ActionState, input map[string]any) actionstate.ActionState
}
