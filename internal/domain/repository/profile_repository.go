package repository

import (
	"context"
	"errors"

	"salesapi/internal/domain/entity"
)

// ErrProfileNotFound is returned when a profile id does not resolve.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository exposes the seeded profile reference data.
type ProfileRepository interface {
	// FindByID retrieves a single profile by its unique ID.
	FindByID(ctx context.Context, id int64) (*entity.Profile, error)

	// FindAll returns every seeded profile.
	FindAll(ctx context.Context) ([]*entity.Profile, error)
}
