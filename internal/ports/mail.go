package ports

import (
	"context"

	"github.com/inkwell-dev/inkwell/internal/domain/model"
)

// Mailer delivers a contact-form message to the site owner.
type Mailer interface {
	Send(ctx context.Context, msg model.ContactMessage) error
}
