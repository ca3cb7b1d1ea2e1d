package usecase

import (
	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/validation"
)

// ContactSchema declares the contact form rules. The email field carries two
// independent rules, so an empty email reports both messages.
var ContactSchema = validation.NewSchema(
	validation.Field{Name: "email", Rules: []validation.Rule{
		validation.Required("Email is required."),
		validation.Email("Email is invalid."),
	}},
	validation.Field{Name: "message", Rules: []validation.Rule{validation.Required("Message is required.")}},
	validation.Field{Name: "name", Rules: []validation.Rule{validation.Required("Name is required.")}},
	validation.Field{Name: "subject", Rules: []validation.Rule{validation.Required("Subject is required.")}},
)

// ParseContactSubmission validates untyped form input. On failure the error is a *validation.FieldErrors.
func ParseContactSubmission(input map[string]any) (domain.ContactSubmission, error) {
	values, err := ContactSchema.Validate(input)
	if err != nil {
		return domain.ContactSubmission{}, err
	}
	return domain.ContactSubmission{
		Name:    values["name"],
		Email:   values["email"],
		Subject: values["subject"],
		Message: values["message"],
	}, nil
}
