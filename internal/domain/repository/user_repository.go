// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
	"time"

	"salesapi/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserSearchFilter narrows the user listing. Nil fields are ignored.
type UserSearchFilter struct {
	Name         *string    // Substring match on the display name.
	BirthDateMin *time.Time // Inclusive lower bound on the birth date.
	BirthDateMax *time.Time // Inclusive upper bound on the birth date.
}

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByEmail retrieves a single user by email, matched case-insensitively.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByCredentials retrieves the user whose email and password both match
	// the given values case-insensitively. Returns ErrUserNotFound otherwise.
	FindByCredentials(ctx context.Context, email, password string) (*entity.User, error)

	// Search returns all users matching the filter. A zero-match result is a
	// nil error with an empty slice.
	Search(ctx context.Context, filter UserSearchFilter) ([]*entity.User, error)

	// Create persists a new user entity and assigns its ID.
	Create(ctx context.Context, user *entity.User) error

	// Delete removes the user with the given ID.
	Delete(ctx context.Context, id int64) error
}
