// Package courier delivers contact submissions: into the sqlite inbox, by
// mail, or both.
package courier

import (
	"context"
	"fmt"
	"mime"
	"net/mail"
	"net/smtp"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Zachkp/folio/internal/config"
	"github.com/Zachkp/folio/internal/effects"
)

// ErrNotConfigured is returned when smtp delivery has no credentials.
var ErrNotConfigured = errors.New("smtp credentials not configured")

// MessageSaver is the part of the store the inbox needs.
type MessageSaver interface {
	SaveMessage(ctx context.Context, name, email, body string) (int64, error)
}

// Inbox persists drafts as inbox messages.
type Inbox struct {
	store MessageSaver
}

// NewInbox wraps a message store.
func NewInbox(store MessageSaver) *Inbox {
	return &Inbox{store: store}
}

// Deliver saves the draft.
func (i *Inbox) Deliver(ctx context.Context, d effects.Draft) error {
	_, err := i.store.SaveMessage(ctx, d.Name, d.Email, d.Message)
	return err
}

// SendFunc matches smtp.SendMail.
type SendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTP mails each draft to a fixed address.
type SMTP struct {
	Host string
	Port string
	User string
	Pass string
	To   string

	send SendFunc
	log  *zap.Logger
}

// NewSMTP builds a mail courier from config. send defaults to smtp.SendMail.
func NewSMTP(cfg *config.Config, send SendFunc, log *zap.Logger) *SMTP {
	if send == nil {
		send = smtp.SendMail
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &SMTP{
		Host: cfg.SMTPHost,
		Port: cfg.SMTPPort,
		User: cfg.SMTPUser,
		Pass: cfg.SMTPPass,
		To:   cfg.ContactTo,
		send: send,
		log:  log,
	}
}

// headerSafe folds line breaks so form input cannot start a new header.
var headerSafe = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

// Message renders the mail for a draft, headers included. The sender's name
// is Q-encoded into the subject; Reply-To is set only for a parseable address.
func (s *SMTP) Message(d effects.Draft) []byte {
	subject := mime.QEncoding.Encode("utf-8", "Portfolio Contact: "+headerSafe.Replace(d.Name))
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Sent from your portfolio contact form
`, d.Name, d.Email, d.Message)

	var b strings.Builder
	b.WriteString("To: " + s.To + "\r\n")
	b.WriteString("Subject: " + subject + "\r\n")
	b.WriteString("From: " + s.User + "\r\n")
	if addr, err := mail.ParseAddress(d.Email); err == nil {
		b.WriteString("Reply-To: " + addr.Address + "\r\n")
	}
	b.WriteString("\r\n")
	b.WriteString(body + "\r\n")
	return []byte(b.String())
}

// Deliver sends the draft. The send itself cannot be cancelled, so ctx is
// only checked before dialling.
func (s *SMTP) Deliver(ctx context.Context, d effects.Draft) error {
	if s.User == "" || s.Pass == "" {
		return ErrNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	auth := smtp.PlainAuth("", s.User, s.Pass, s.Host)
	if err := s.send(s.Host+":"+s.Port, auth, s.User, []string{s.To}, s.Message(d)); err != nil {
		return errors.Wrap(err, "send contact mail")
	}
	s.log.Info("contact mail sent", zap.String("reply_to", d.Email))
	return nil
}

// Chain delivers through each courier in turn and stops at the first failure.
type Chain []effects.Courier

// Deliver runs the chain.
func (c Chain) Deliver(ctx context.Context, d effects.Draft) error {
	for _, courier := range c {
		if err := courier.Deliver(ctx, d); err != nil {
			return err
		}
	}
	return nil
}

// New picks the courier for cfg.ContactDelivery. Simulate mode returns nil:
// the submission then only plays out its timing.
func New(cfg *config.Config, store MessageSaver, log *zap.Logger) (effects.Courier, error) {
	switch cfg.ContactDelivery {
	case config.DeliverySimulate, "":
		return nil, nil
	case config.DeliveryStore:
		if store == nil {
			return nil, errors.Wrap(config.ErrInvalidConfig, "store delivery needs a database")
		}
		return NewInbox(store), nil
	case config.DeliverySMTP:
		mail := NewSMTP(cfg, nil, log)
		if mail.User == "" || mail.Pass == "" {
			return nil, ErrNotConfigured
		}
		if store == nil {
			return mail, nil
		}
		// Keep a copy even if the mail later bounces.
		return Chain{NewInbox(store), mail}, nil
	default:
		return nil, errors.Wrapf(config.ErrInvalidConfig, "unknown contact_delivery %q", cfg.ContactDelivery)
	}
}
