package service

import (
	"context"
	"errors"

	"github.com/inkwell-dev/inkwell/internal/data"
	"github.com/inkwell-dev/inkwell/internal/domain/model"
	apperrors "github.com/inkwell-dev/inkwell/internal/errors"
)

// OwnerStore is the slice of the user repository the owner lookup needs.
type OwnerStore interface {
	GetOwner(ctx context.Context) (*model.User, error)
}

// OwnerService exposes the site owner's public profile. The owner is the
// earliest-registered account and feeds the home page's author bio.
type OwnerService struct {
	users OwnerStore
}

// NewOwnerService constructs a new OwnerService.
func NewOwnerService(users OwnerStore) *OwnerService {
	return &OwnerService{users: users}
}

// Owner returns the site owner.
func (s *OwnerService) Owner(ctx context.Context) (*model.User, error) {
	owner, err := s.users.GetOwner(ctx)
	if err != nil {
		if errors.Is(err, data.ErrUserNotFound) {
			return nil, apperrors.NotFound("site owner not found")
		}
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "could not load site owner")
	}
	return owner, nil
}
