//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"strings"

	apperrors "github.com/inkwell-dev/inkwell/internal/errors"
)

// ContactMessage is a message submitted through the contact form. ReplyTo is
// the sender's address and is carried in the outgoing mail body so the site
// owner can respond.
type ContactMessage struct {
	Name    string `json:"name"`
	ReplyTo string `json:"reply_to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Validate validates a ContactMessage, collecting every failed field so the
// form can show all problems at once.
func (m *ContactMessage) Validate() error {
	var errs apperrors.ValidationErrors
	if strings.TrimSpace(m.Name) == "" {
		errs = append(errs, apperrors.ValidationField("name", "Please fill in all fields."))
	}
	if strings.TrimSpace(m.ReplyTo) == "" {
		errs = append(errs, apperrors.ValidationField("reply_to", "Please fill in all fields."))
	} else if !strings.Contains(m.ReplyTo, "@") {
		errs = append(errs, apperrors.ValidationField("reply_to", "Please enter a valid email address."))
	}
	if strings.TrimSpace(m.Body) == "" {
		errs = append(errs, apperrors.ValidationField("body", "Please fill in all fields."))
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
