package usecase

import "context"

// LoginInput defines the credentials for a login attempt.
type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginOutput returns the issued token after a successful login.
type LoginOutput struct {
	Token string `json:"token"`
}

// AuthUsecase defines the authentication pipeline.
type AuthUsecase interface {
	// Login matches the credentials case-insensitively and issues a token
	// carrying the user's name and role. A failed match never reveals which
	// field was wrong.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
