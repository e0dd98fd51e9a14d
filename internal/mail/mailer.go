// Package mail sends outbound notification email over SMTP.
package mail

import (
	"context"
	"fmt"
	"net/smtp"

	"github.com/tripforge/tripforge/internal/model"
)

// Mailer sends mail through a single SMTP account.
type Mailer struct {
	host string
	port int
	user string
	pass string
	to   string
}

// New creates a Mailer. to is the notification recipient; when empty the
// SMTP account address receives its own notifications.
func New(host string, port int, user, pass, to string) *Mailer {
	if to == "" {
		to = user
	}
	return &Mailer{host: host, port: port, user: user, pass: pass, to: to}
}

// NotifyContact implements service.Notifier for contact-form submissions.
func (m *Mailer) NotifyContact(ctx context.Context, msg *model.ContactMessage) error {
	subject := "Contact Form: " + msg.Subject
	body := fmt.Sprintf("From: %s (%s)\n\n%s", msg.Name, msg.Email, msg.Message)
	return m.send(ctx, subject, body)
}

func (m *Mailer) send(ctx context.Context, subject, body string) error {
	if m.user == "" || m.pass == "" {
		return fmt.Errorf("mail credentials not configured")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	auth := smtp.PlainAuth("", m.user, m.pass, m.host)

	message := []byte(fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"\r\n"+
			"%s\r\n",
		m.user, m.to, subject, body))

	addr := fmt.Sprintf("%s:%d", m.host, m.port)
	if err := smtp.SendMail(addr, auth, m.user, []string{m.to}, message); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}
