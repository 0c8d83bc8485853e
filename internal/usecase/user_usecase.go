package usecase

import (
	"context"

	"salesapi/internal/domain/entity"
)

// ListUsersInput carries the optional user listing filters. The date bounds
// are textual and parsed strictly as dd/MM/yyyy.
type ListUsersInput struct {
	Name         *string `query:"name"`
	BirthDateMin *string `query:"birth_date_min"`
	BirthDateMax *string `query:"birth_date_max"`
}

// CreateUserInput defines the data required to create a user. BirthDate is
// textual in dd/MM/yyyy form.
type CreateUserInput struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
	BirthDate string `json:"birth_date" validate:"required"`
	ProfileID int64  `json:"profile_id"`
}

// UserUsecase defines the user pipelines the delivery layer depends on.
type UserUsecase interface {
	// ListUsers returns the users matching the filters. Unlike the product and
	// state listings, a zero-match result is a client-visible not-found
	// failure, not an empty success.
	ListUsers(ctx context.Context, input *ListUsersInput) ([]*entity.User, error)

	// CreateUser validates and persists a new user, returning its id.
	CreateUser(ctx context.Context, input *CreateUserInput) (int64, error)

	// DeleteUser removes a user and returns the deleted id as confirmation.
	DeleteUser(ctx context.Context, id int64) (int64, error)
}

// ProfileUsecase exposes the seeded profile reference data.
type ProfileUsecase interface {
	// ListProfiles returns every seeded profile.
	ListProfiles(ctx context.Context) ([]*entity.Profile, error)
}
