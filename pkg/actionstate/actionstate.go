package actionstate

import (
	"errors"

	"portfolio-backend/pkg/validation"
)

// UnknownErrorMessage is reported for failures that carry no usable message.
const UnknownErrorMessage = "An unknown error occurred"

// ActionState is the normalized outcome of a form submission.
// Both keys are always serialized; FieldErrors is never nil.
type ActionState struct {
	FieldErrors map[string][]string `json:"fieldErrors"`
	Message     string              `json:"message"`

	succeeded bool
}

// Empty returns the state a form starts from.
func Empty() ActionState {
	return ActionState{FieldErrors: map[string][]string{}}
}

// FromSuccess wraps a confirmation message.
func FromSuccess(message string) ActionState {
	state := withMessage(message)
	state.succeeded = true
	return state
}

func withMessage(message string) ActionState {
	return ActionState{FieldErrors: map[string][]string{}, Message: message}
}

// FromError classifies a failure. Validation errors populate FieldErrors only,
// other errors populate Message only, and anything else gets a fixed message.
func FromError(v any) ActionState {
	err, ok := v.(error)
	if !ok || err == nil {
		return withMessage(UnknownErrorMessage)
	}

	var fieldErrs *validation.FieldErrors
	if errors.As(err, &fieldErrs) && fieldErrs != nil {
		return ActionState{FieldErrors: fieldErrs.Flatten()}
	}

	if msg := err.Error(); msg != "" {
		return withMessage(msg)
	}
	return withMessage(UnknownErrorMessage)
}

// Succeeded reports whether the state was produced by FromSuccess.
func (s ActionState) Succeeded() bool {
	return s.succeeded
}

// HasFieldErrors reports whether the state carries any field-level errors.
func (s ActionState) HasFieldErrors() bool {
	return len(s.FieldErrors) > 0
}
