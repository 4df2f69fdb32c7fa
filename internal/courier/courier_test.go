package courier

import (
	"context"
	"errors"
	"net/smtp"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/Zachkp/folio/internal/config"
	"github.com/Zachkp/folio/internal/effects"
)

type memInbox struct {
	saved []effects.Draft
	err   error
}

func (m *memInbox) SaveMessage(_ context.Context, name, email, body string) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	m.saved = append(m.saved, effects.Draft{Name: name, Email: email, Message: body})
	return int64(len(m.saved)), nil
}

var draft = effects.Draft{Name: "Ada", Email: "ada@example.com", Message: "Hello there"}

func smtpConfig() *config.Config {
	cfg := config.New(context.Background())
	cfg.SMTPUser = "me@example.com"
	cfg.SMTPPass = "secret"
	cfg.ContactTo = "inbox@example.com"
	return cfg
}

func TestSMTP(t *testing.T) {
	Convey("Given a mail courier with a recording sender", t, func() {
		var gotAddr, gotFrom string
		var gotTo []string
		var gotMsg []byte
		send := func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
			gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, msg
			return nil
		}
		mail := NewSMTP(smtpConfig(), send, nil)

		Convey("When a draft is delivered", func() {
			err := mail.Deliver(context.Background(), draft)

			Convey("Then the mail goes to the configured inbox with a reply-to", func() {
				So(err, ShouldBeNil)
				So(gotAddr, ShouldEqual, "smtp.gmail.com:587")
				So(gotFrom, ShouldEqual, "me@example.com")
				So(gotTo, ShouldResemble, []string{"inbox@example.com"})
				So(string(gotMsg), ShouldContainSubstring, "Subject: Portfolio Contact: Ada\r\n")
				So(string(gotMsg), ShouldContainSubstring, "Reply-To: ada@example.com\r\n")
				So(string(gotMsg), ShouldContainSubstring, "Hello there")
			})
		})

		Convey("When form fields carry line breaks", func() {
			hostile := effects.Draft{
				Name:    "Eve\r\nBcc: victim@example.net",
				Email:   "eve@example.com\r\nX-Injected: 1",
				Message: "Hi",
			}
			So(mail.Deliver(context.Background(), hostile), ShouldBeNil)
			header, _, found := strings.Cut(string(gotMsg), "\r\n\r\n")
			So(found, ShouldBeTrue)

			Convey("Then they cannot add headers", func() {
				lines := strings.Split(header, "\r\n")
				So(lines, ShouldHaveLength, 3)
				So(lines[1], ShouldStartWith, "Subject: ")
				So(lines[1], ShouldContainSubstring, "Eve Bcc: victim@example.net")
				So(header, ShouldNotContainSubstring, "Reply-To")
				So(header, ShouldNotContainSubstring, "\nX-Injected")
			})
		})

		Convey("When the name is not ASCII", func() {
			So(mail.Deliver(context.Background(), effects.Draft{Name: "Zoë", Email: "zoe@example.com", Message: "Hi"}), ShouldBeNil)

			Convey("Then the subject is encoded", func() {
				So(string(gotMsg), ShouldContainSubstring, "Subject: =?utf-8?q?Portfolio_Contact:_Zo=C3=AB?=\r\n")
			})
		})

		Convey("When the sender fails", func() {
			boom := errors.New("connection refused")
			mail = NewSMTP(smtpConfig(), func(string, smtp.Auth, string, []string, []byte) error { return boom }, nil)
			err := mail.Deliver(context.Background(), draft)
			So(errors.Is(err, boom), ShouldBeTrue)
		})

		Convey("When credentials are missing", func() {
			cfg := smtpConfig()
			cfg.SMTPPass = ""
			err := NewSMTP(cfg, send, nil).Deliver(context.Background(), draft)
			So(errors.Is(err, ErrNotConfigured), ShouldBeTrue)
			So(gotMsg, ShouldBeNil)
		})
	})
}

func TestChainAndNew(t *testing.T) {
	Convey("Given an inbox", t, func() {
		inbox := &memInbox{}

		Convey("A chain stops at the first failure", func() {
			failing := &memInbox{err: errors.New("disk full")}
			err := Chain{NewInbox(failing), NewInbox(inbox)}.Deliver(context.Background(), draft)
			So(err, ShouldNotBeNil)
			So(inbox.saved, ShouldBeEmpty)
		})

		Convey("Simulate mode has no courier", func() {
			c, err := New(config.New(context.Background()), inbox, nil)
			So(err, ShouldBeNil)
			So(c, ShouldBeNil)
		})

		Convey("Store mode saves into the inbox", func() {
			cfg := config.New(context.Background())
			cfg.ContactDelivery = config.DeliveryStore
			c, err := New(cfg, inbox, nil)
			So(err, ShouldBeNil)
			So(c.Deliver(context.Background(), draft), ShouldBeNil)
			So(inbox.saved, ShouldResemble, []effects.Draft{draft})
		})

		Convey("Store mode without a database is a config error", func() {
			cfg := config.New(context.Background())
			cfg.ContactDelivery = config.DeliveryStore
			_, err := New(cfg, nil, nil)
			So(errors.Is(err, config.ErrInvalidConfig), ShouldBeTrue)
		})

		Convey("Smtp mode keeps an inbox copy first", func() {
			cfg := smtpConfig()
			cfg.ContactDelivery = config.DeliverySMTP
			c, err := New(cfg, inbox, nil)
			So(err, ShouldBeNil)
			chain, ok := c.(Chain)
			So(ok, ShouldBeTrue)
			So(chain, ShouldHaveLength, 2)
		})
	})
}
