package service

import (
	"context"
	"errors"
	"testing"

	"github.com/tripforge/tripforge/internal/model"
	"github.com/tripforge/tripforge/internal/store/memory"
)

type stubNotifier struct {
	err   error
	calls int
	last  *model.ContactMessage
}

func (s *stubNotifier) NotifyContact(ctx context.Context, msg *model.ContactMessage) error {
	s.calls++
	s.last = msg
	return s.err
}

func TestContactSubmitPersistsAndNotifies(t *testing.T) {
	stores := memory.New()
	notifier := &stubNotifier{}
	svc := NewContactService(stores.Contacts, notifier, discardLogger(), nil)

	msg, err := svc.Submit(context.Background(), SubmitInput{
		Name:    "Ada",
		Email:   "ada@example.com",
		Subject: "Feedback",
		Message: "Great planner",
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if notifier.calls != 1 {
		t.Errorf("notifier called %d times, want 1", notifier.calls)
	}
	if notifier.last.ID != msg.ID {
		t.Errorf("notifier saw message %q, stored %q", notifier.last.ID, msg.ID)
	}

	stored, err := stores.Contacts.List(context.Background())
	if err != nil || len(stored) != 1 {
		t.Fatalf("message not persisted: %d stored, err %v", len(stored), err)
	}
}

func TestContactSubmitDefaultSubject(t *testing.T) {
	stores := memory.New()
	svc := NewContactService(stores.Contacts, nil, discardLogger(), nil)

	msg, err := svc.Submit(context.Background(), SubmitInput{Name: "Ada", Email: "a@b.c", Message: "hi"})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if msg.Subject != "Contact Form Submission" {
		t.Errorf("Subject = %q, want default", msg.Subject)
	}
}

func TestContactSubmitSurvivesNotifierFailure(t *testing.T) {
	stores := memory.New()
	notifier := &stubNotifier{err: errors.New("smtp down")}
	svc := NewContactService(stores.Contacts, notifier, discardLogger(), nil)

	if _, err := svc.Submit(context.Background(), SubmitInput{Name: "Ada", Email: "a@b.c", Message: "hi"}); err != nil {
		t.Fatalf("notification failure must not fail the submit: %v", err)
	}

	stored, err := stores.Contacts.List(context.Background())
	if err != nil || len(stored) != 1 {
		t.Fatalf("message not persisted despite notifier failure: %d stored, err %v", len(stored), err)
	}
}

func TestContactSubmitNilNotifier(t *testing.T) {
	stores := memory.New()
	svc := NewContactService(stores.Contacts, nil, discardLogger(), nil)

	if _, err := svc.Submit(context.Background(), SubmitInput{Name: "Ada", Email: "a@b.c", Message: "hi"}); err != nil {
		t.Fatalf("Submit with nil notifier: %v", err)
	}
}
