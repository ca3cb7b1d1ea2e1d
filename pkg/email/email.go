package email

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"portfolio-backend/config"
	"strings"
	"time"
)

// DeliveryFailedMessage is the user-facing text of every DeliveryError.
const DeliveryFailedMessage = "Failed to send email"

// Message is a plain-text mail handed to a Mailer.
type Message struct {
	From    string
	ReplyTo string
	To      string
	Subject string
	Text    string
}

// Mailer delivers a single message or reports why it could not.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// DeliveryError hides transport details behind a fixed message; Unwrap exposes the cause for logs.
type DeliveryError struct {
	Err error
}

func (e *DeliveryError) Error() string {
	return DeliveryFailedMessage
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

// EmailService handles sending emails via SMTP
type EmailService struct {
	host     string
	port     string
	username string
	password string
	timeout  time.Duration
}

// NewEmailService creates a new SMTP email service from config
func NewEmailService(cfg *config.Config) *EmailService {
	timeout := time.Duration(cfg.SMTPTimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &EmailService{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		username: cfg.SMTPUsername,
		password: cfg.SMTPPassword,
		timeout:  timeout,
	}
}

// IsConfigured checks if the email service has valid SMTP configuration
func (s *EmailService) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != ""
}

// Send delivers msg through the SMTP relay. The envelope sender is the
// authenticated account; msg.From only sets the From header.
func (s *EmailService) Send(ctx context.Context, msg Message) error {
	if !s.IsConfigured() {
		return &DeliveryError{Err: errors.New("smtp service is not configured")}
	}
	if err := s.send(ctx, msg); err != nil {
		return &DeliveryError{Err: err}
	}
	return nil
}

func (s *EmailService) send(ctx context.Context, msg Message) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	addr := net.JoinHostPort(s.host, s.port)
	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to dial smtp: %w", err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	client, err := smtp.NewClient(conn, s.host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("failed to open smtp session: %w", err)
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: s.host, MinVersion: tls.VersionTLS12}); err != nil {
			return fmt.Errorf("failed to start tls: %w", err)
		}
	}

	if err := client.Auth(smtp.PlainAuth("", s.username, s.password, s.host)); err != nil {
		return fmt.Errorf("failed to authenticate: %w", err)
	}
	if err := client.Mail(s.username); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	if err := client.Rcpt(msg.To); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to open data stream: %w", err)
	}
	if _, err := w.Write(buildMIME(msg)); err != nil {
		w.Close()
		return fmt.Errorf("failed to write message: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return client.Quit()
}

// buildMIME renders msg as a plain-text RFC 5322 message
func buildMIME(msg Message) []byte {
	text := strings.ReplaceAll(msg.Text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\n", "\r\n")

	return []byte(fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Reply-To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/plain; charset=UTF-8\r\n"+
			"\r\n"+
			"%s",
		headerValue(msg.From),
		headerValue(msg.To),
		headerValue(msg.ReplyTo),
		headerValue(msg.Subject),
		text,
	))
}

// headerValue strips line breaks so user input cannot inject headers
func headerValue(v string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(v)
}
