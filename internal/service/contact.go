package service

import (
	"context"
	"log/slog"

	"github.com/inkwell-dev/inkwell/internal/domain/model"
	apperrors "github.com/inkwell-dev/inkwell/internal/errors"
	"github.com/inkwell-dev/inkwell/internal/ports"
)

// ContactService validates and relays contact-form messages.
type ContactService struct {
	mailer ports.Mailer
	logger *slog.Logger
}

// NewContactService constructs a new ContactService.
func NewContactService(mailer ports.Mailer, logger *slog.Logger) *ContactService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ContactService{mailer: mailer, logger: logger}
}

// Send validates and dispatches a contact message to the site owner.
func (s *ContactService) Send(ctx context.Context, msg model.ContactMessage) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	if err := s.mailer.Send(ctx, msg); err != nil {
		s.logger.Error("contact mail dispatch failed",
			slog.String("reply_to", msg.ReplyTo),
			slog.String("error", err.Error()))
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "could not send your message")
	}

	s.logger.Info("contact mail dispatched", slog.String("reply_to", msg.ReplyTo))
	return nil
}
