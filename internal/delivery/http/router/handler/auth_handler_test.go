package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	domainerrors "salesapi/internal/domain/errors"
	"salesapi/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

// stubAuthUsecase delegates to a function field.
type stubAuthUsecase struct {
	loginFn func(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error)
}

func (s *stubAuthUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	return s.loginFn(ctx, input)
}

func TestAuthHandler_Login_ReturnsToken(t *testing.T) {
	uc := &stubAuthUsecase{
		loginFn: func(_ context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
			assert.Equal(t, "maria@example.com", input.Email)

			return &usecase.LoginOutput{Token: "signed-token"}, nil
		},
	}
	e := newTestEcho()
	e.POST("/api/auth/login", NewAuthHandler(uc, discardLogger()).Login)

	body := `{"email":"maria@example.com","password":"s3nhaForte"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "signed-token")
}

func TestAuthHandler_Login_WrongCredentialsIs404(t *testing.T) {
	uc := &stubAuthUsecase{
		loginFn: func(context.Context, *usecase.LoginInput) (*usecase.LoginOutput, error) {
			return nil, domainerrors.ErrWrongCredentials
		},
	}
	e := newTestEcho()
	e.POST("/api/auth/login", NewAuthHandler(uc, discardLogger()).Login)

	body := `{"email":"maria@example.com","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "incorrect user or password")
}

func TestHealthCheck(t *testing.T) {
	e := newTestEcho()
	e.GET("/health", HealthCheck)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}
