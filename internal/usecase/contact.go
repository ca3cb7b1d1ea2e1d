package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/actionstate"
	"portfolio-backend/pkg/email"
	"strings"
)

type contactUsecase struct {
	mailer    email.Mailer
	recipient string
	log       *slog.Logger
}

// NewContactUsecase creates a new contact usecase delivering to recipient
func NewContactUsecase(mailer email.Mailer, recipient string, log *slog.Logger) domain.ContactUsecase {
	return &contactUsecase{
		mailer:    mailer,
		recipient: recipient,
		log:       log,
	}
}

// SendContact validates the submission and sends it to the site operator
func (uc *contactUsecase) SendContact(ctx context.Context, _ actionstate.ActionState, input map[string]any) actionstate.ActionState {
	submission, err := ParseContactSubmission(input)
	if err != nil {
		uc.log.DebugContext(ctx, "contact submission rejected", "error", err)
		return actionstate.FromError(err)
	}

	msg := email.Message{
		From:    submission.Email,
		ReplyTo: submission.Email,
		To:      uc.recipient,
		Subject: submission.Subject,
		Text:    contactBody(submission),
	}

	if err := uc.mailer.Send(ctx, msg); err != nil {
		uc.log.ErrorContext(ctx, "contact delivery failed", "error", err, "cause", unwrapAll(err))
		return actionstate.FromError(err)
	}

	uc.log.InfoContext(ctx, "contact message delivered", "subject", submission.Subject)
	return actionstate.FromSuccess(domain.ContactSuccessMessage)
}

func contactBody(s domain.ContactSubmission) string {
	return strings.TrimSpace(fmt.Sprintf("Name: %s\nEmail: %s\nMessage: %s", s.Name, s.Email, s.Message))
}

// unwrapAll returns the innermost wrapped error
func unwrapAll(err error) error {
	for {
		u, ok := err.(interface{ Unwrap() error })
		if !ok || u.Unwrap() == nil {
			return err
		}
		err = u.Unwrap()
	}
}
