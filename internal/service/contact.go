package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/tripforge/tripforge/internal/metrics"
	"github.com/tripforge/tripforge/internal/model"
	"github.com/tripforge/tripforge/internal/store"
)

// Notifier sends an outbound notification for a contact message.
type Notifier interface {
	NotifyContact(ctx context.Context, msg *model.ContactMessage) error
}

// ContactService appends contact-form submissions to the persisted log and
// sends a best-effort email notification.
type ContactService struct {
	contacts store.ContactStore
	notifier Notifier
	logger   *slog.Logger
	metrics  metrics.Recorder
}

// NewContactService creates a ContactService.
// notifier may be nil when outbound mail is not configured.
func NewContactService(contacts store.ContactStore, notifier Notifier, logger *slog.Logger, recorder metrics.Recorder) *ContactService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &ContactService{
		contacts: contacts,
		notifier: notifier,
		logger:   logger,
		metrics:  recorder,
	}
}

// SubmitInput defines a contact-form submission.
type SubmitInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// Submit persists the message, then notifies. Notification failure is
// logged and never fails the request; only the append can.
func (s *ContactService) Submit(ctx context.Context, input SubmitInput) (*model.ContactMessage, error) {
	subject := input.Subject
	if subject == "" {
		subject = "Contact Form Submission"
	}

	msg := &model.ContactMessage{
		ID:        newID(),
		Name:      input.Name,
		Email:     input.Email,
		Subject:   subject,
		Message:   input.Message,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.contacts.Append(ctx, msg); err != nil {
		return nil, fmt.Errorf("append contact message: %w", err)
	}

	s.metrics.IncContactSubmitted()

	if s.notifier == nil {
		s.logger.Info("contact message stored, mail not configured",
			slog.String("contact_id", msg.ID),
		)
		s.metrics.IncContactMail("disabled")
		return msg, nil
	}

	if err := s.notifier.NotifyContact(ctx, msg); err != nil {
		s.logger.Error("contact notification failed",
			slog.String("contact_id", msg.ID),
			slog.String("error", err.Error()),
		)
		s.metrics.IncContactMail("failed")
		return msg, nil
	}

	s.metrics.IncContactMail("sent")
	return msg, nil
}
