// Package smtpmail delivers contact-form messages over SMTP.
package smtpmail

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"strings"

	"github.com/inkwell-dev/inkwell/config"
	"github.com/inkwell-dev/inkwell/internal/domain/model"
)

// Mailer sends contact messages to the configured recipient using plain
// AUTH over STARTTLS, which is what most hosted SMTP relays expect.
type Mailer struct {
	cfg config.MailConfig

	// send is swappable for tests; defaults to smtp.SendMail.
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// New creates a Mailer from cfg.
func New(cfg config.MailConfig) *Mailer {
	return &Mailer{cfg: cfg, send: smtp.SendMail}
}

// Send delivers msg to the site owner. The reply address travels in the mail
// body rather than the envelope so relays that enforce sender identity still
// accept the message.
func (m *Mailer) Send(ctx context.Context, msg model.ContactMessage) error {
	if !m.cfg.Enabled() {
		return errors.New("mail delivery is not configured")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	addr := net.JoinHostPort(m.cfg.Host, strconv.Itoa(m.cfg.Port))
	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)

	// The sender's name always rides on the subject, appended to whatever
	// the form submitted.
	subject := strings.TrimSpace(sanitizeHeader(msg.Subject) + " Message from " + sanitizeHeader(msg.Name))

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", m.cfg.Username)
	fmt.Fprintf(&b, "To: %s\r\n", m.cfg.To())
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("\r\n")
	fmt.Fprintf(&b, "%s\r\n\r\nfrom %s\r\n", msg.Body, msg.ReplyTo)

	done := make(chan error, 1)
	go func() {
		done <- m.send(addr, auth, m.cfg.Username, []string{m.cfg.To()}, []byte(b.String()))
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		if err != nil {
			return fmt.Errorf("smtp send: %w", err)
		}
		return nil
	}
}

// sanitizeHeader strips CR/LF so form input cannot inject extra headers.
func sanitizeHeader(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.TrimSpace(s)
}
