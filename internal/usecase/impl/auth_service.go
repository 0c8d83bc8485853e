package impl

import (
	"context"
	"log/slog"

	deliverycontext "salesapi/internal/delivery/context"
	domainerrors "salesapi/internal/domain/errors"
	"salesapi/internal/domain/repository"
	"salesapi/internal/domain/service"
	"salesapi/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	profileRepo  repository.ProfileRepository
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	ProfileRepo  repository.ProfileRepository
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		profileRepo:  params.ProfileRepo,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login matches the credentials case-insensitively, resolves the user's role
// and requests token issuance. A failed match yields one generic failure that
// never reveals which field was wrong; unexpected failures stay opaque to the
// client and are logged with full detail instead.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByCredentials(ctx, input.Email, input.Password)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

			return nil, domainerrors.ErrWrongCredentials
		}

		srv.log(ctx).Error("Credential lookup failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, domainerrors.ErrInternalError
	}

	profile, err := srv.profileRepo.FindByID(ctx, user.ProfileID)
	if err != nil {
		srv.log(ctx).Error("Profile lookup failed during login",
			slog.Int64("userID", user.ID), slog.Int64("profileID", user.ProfileID), slog.Any("error", err))

		return nil, domainerrors.ErrInternalError
	}

	token, err := srv.tokenService.GenerateToken(user.Name, profile.Role)
	if err != nil {
		srv.log(ctx).Error("Token issuance failed", slog.Int64("userID", user.ID), slog.Any("error", err))

		return nil, domainerrors.ErrInternalError
	}

	srv.log(ctx).Debug("User logged in", slog.Int64("userID", user.ID))

	return &usecase.LoginOutput{Token: token}, nil
}
