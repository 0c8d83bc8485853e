package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "salesapi/internal/delivery/context"
	"salesapi/internal/domain/entity"
	domainerrors "salesapi/internal/domain/errors"
	"salesapi/internal/domain/repository"
	"salesapi/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// birthDateLayout is the only accepted textual date form: day first, then
// month, then four-digit year. A month-first string that does not form a
// valid day/month/year date fails parsing and is reported as an invalid date.
const birthDateLayout = "02/01/2006"

const minimumAge = 18

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	logger    *slog.Logger
	now       func() time.Time
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListUsers returns the users matching the filters. A zero-match result is a
// client-visible not-found failure, unlike the product and state listings.
func (srv *userService) ListUsers(ctx context.Context, input *usecase.ListUsersInput) ([]*entity.User, error) {
	filter := repository.UserSearchFilter{Name: input.Name}

	if input.BirthDateMin != nil {
		min, err := parseBirthDate(*input.BirthDateMin)
		if err != nil {
			return nil, domainerrors.ErrBirthDateInvalid
		}
		filter.BirthDateMin = &min
	}
	if input.BirthDateMax != nil {
		max, err := parseBirthDate(*input.BirthDateMax)
		if err != nil {
			return nil, domainerrors.ErrBirthDateInvalid
		}
		filter.BirthDateMax = &max
	}

	users, err := srv.userRepo.Search(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search users")
	}

	if len(users) == 0 {
		return nil, domainerrors.ErrNoUsersFound
	}

	return users, nil
}

// CreateUser runs the user creation checks in order: date format, minimum
// age, password variety, email uniqueness, profile existence. Only then is
// the record persisted.
func (srv *userService) CreateUser(ctx context.Context, input *usecase.CreateUserInput) (int64, error) {
	srv.log(ctx).Info("Creating user", slog.String("email", input.Email))

	birthDate, err := parseBirthDate(input.BirthDate)
	if err != nil {
		srv.log(ctx).Warn("Rejected user creation with malformed birth date", slog.String("email", input.Email))

		return 0, domainerrors.ErrBirthDateInvalid
	}

	candidate := &entity.User{
		Name:      input.Name,
		Email:     input.Email,
		Password:  input.Password,
		BirthDate: birthDate,
		ProfileID: input.ProfileID,
	}

	if candidate.Age(srv.now()) < minimumAge {
		srv.log(ctx).Warn("Rejected underage user creation", slog.String("email", input.Email))

		return 0, domainerrors.ErrUserUnderage
	}

	if isUniformPassword(input.Password) {
		return 0, domainerrors.ErrPasswordUniform
	}

	var createdID int64
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		profileRepo := repoFactory.ProfileRepo()

		if _, err := userRepo.FindByEmail(ctx, input.Email); err == nil {
			return domainerrors.ErrEmailExists
		} else if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check email uniqueness")
		}

		if _, err := profileRepo.FindByID(ctx, input.ProfileID); err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return domainerrors.ErrProfileNotFound
			}

			return errors.Wrap(err, "failed to find profile by id")
		}

		if err := userRepo.Create(ctx, candidate); err != nil {
			return errors.Wrap(err, "failed to create user")
		}
		createdID = candidate.ID

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("User creation failed", slog.String("email", input.Email), slog.Any("error", err))

		return 0, err
	}

	srv.log(ctx).Debug("User created", slog.Int64("userID", createdID))

	return createdID, nil
}

// DeleteUser removes a user and returns the deleted id as confirmation.
func (srv *userService) DeleteUser(ctx context.Context, id int64) (int64, error) {
	srv.log(ctx).Info("Deleting user", slog.Int64("userID", id))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		if _, err := userRepo.FindByID(ctx, id); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.UserNotFound(id)
			}

			return errors.Wrap(err, "failed to find user by id")
		}

		return errors.Wrap(userRepo.Delete(ctx, id), "failed to delete user")
	})
	if err != nil {
		srv.log(ctx).Warn("User deletion failed", slog.Int64("userID", id), slog.Any("error", err))

		return 0, err
	}

	srv.log(ctx).Debug("User deleted", slog.Int64("userID", id))

	return id, nil
}

// parseBirthDate parses a textual date strictly as day/month/year.
func parseBirthDate(value string) (time.Time, error) {
	parsed, err := time.Parse(birthDateLayout, value)
	if err != nil {
		return time.Time{}, errors.Wrap(err, "failed to parse birth date")
	}

	return parsed, nil
}

// isUniformPassword reports whether the password is empty or composed of a
// single repeated character.
func isUniformPassword(password string) bool {
	runes := []rune(password)
	if len(runes) == 0 {
		return true
	}

	for _, r := range runes[1:] {
		if r != runes[0] {
			return false
		}
	}

	return true
}
