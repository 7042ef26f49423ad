package contact

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/pampered-pooch/site-api/internal/domain"
	"github.com/pampered-pooch/site-api/internal/infrastructure/smtp"
	"github.com/pampered-pooch/site-api/internal/pkg/mailtmpl"
	"github.com/pampered-pooch/site-api/internal/pkg/msglog"
)

// ErrNoRecipient means MESSAGE_RECIPIENT is not configured; the contact form
// has nowhere to deliver to and the request fails without internal detail.
var ErrNoRecipient = errors.New("message recipient not configured")

// VerificationStore is the code lifecycle the workflow needs. Both the
// in-memory and the DynamoDB backends satisfy it.
type VerificationStore interface {
	Issue(ctx context.Context, email, name string) (string, error)
	Check(ctx context.Context, email, code string) (domain.CheckResult, error)
}

type Service interface {
	// SendVerification issues a fresh code for email and attempts delivery.
	SendVerification(ctx context.Context, email, name string) error
	// VerifyCode checks a submitted code. Verified consumes the code.
	VerifyCode(ctx context.Context, email, code string) (domain.CheckResult, error)
	// SendMessage forwards a verified submission to the configured recipient.
	SendMessage(ctx context.Context, msg domain.ContactMessage) error
}

type ServiceDeps struct {
	Store      VerificationStore
	Mailer     smtp.Mailer
	MessageLog *msglog.Log
	Recipient  string
	FromName   string
}

type service struct {
	store      VerificationStore
	mailer     smtp.Mailer
	messageLog *msglog.Log
	recipient  string
	fromName   string
}

func NewService(deps ServiceDeps) Service {
	return &service{
		store:      deps.Store,
		mailer:     deps.Mailer,
		messageLog: deps.MessageLog,
		recipient:  deps.Recipient,
		fromName:   deps.FromName,
	}
}

func (s *service) SendVerification(ctx context.Context, email, name string) error {
	code, err := s.store.Issue(ctx, email, name)
	if err != nil {
		return err
	}

	html, text, err := mailtmpl.Verification(code)
	if err != nil {
		return err
	}

	err = s.mailer.Send(smtp.Message{
		To:      email,
		Subject: "Your Verification Code - The Pampered Pooch",
		HTML:    html,
		Text:    text,
	})
	if err != nil {
		return fmt.Errorf("send verification email: %w", err)
	}

	slog.Info("verification code sent", "email", email)
	return nil
}

func (s *service) VerifyCode(ctx context.Context, email, code string) (domain.CheckResult, error) {
	result, err := s.store.Check(ctx, email, code)
	if err != nil {
		return 0, err
	}
	if result == domain.CheckVerified {
		slog.Info("email verified", "email", email)
	}
	return result, nil
}

func (s *service) SendMessage(ctx context.Context, msg domain.ContactMessage) error {
	if s.recipient == "" {
		return ErrNoRecipient
	}

	html, text, err := mailtmpl.ContactMessage(msg)
	if err != nil {
		return err
	}

	err = s.mailer.Send(smtp.Message{
		To:       s.recipient,
		Subject:  fmt.Sprintf("New Contact Form Message from %s", msg.Name),
		HTML:     html,
		Text:     text,
		FromName: s.fromName + " Website",
		ReplyTo:  msg.Email,
	})
	if err != nil {
		return fmt.Errorf("send contact message: %w", err)
	}

	s.messageLog.Append(msg)
	slog.Info("contact message sent", "from", msg.Email, "to", s.recipient)
	return nil
}
