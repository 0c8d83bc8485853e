// Package service provides hand-written testify mocks for the service
// contracts.
package service

import (
	"testing"

	"salesapi/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockTokenService mocks service.TokenService.
type MockTokenService struct {
	mock.Mock
}

// NewMockTokenService builds a mock bound to the test lifecycle.
func NewMockTokenService(t *testing.T) *MockTokenService {
	m := &MockTokenService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTokenService) GenerateToken(name, role string) (string, error) {
	args := m.Called(name, role)

	return args.String(0), args.Error(1)
}

func (m *MockTokenService) ValidateToken(tokenString string) (*service.TokenClaims, error) {
	args := m.Called(tokenString)
	claims, _ := args.Get(0).(*service.TokenClaims)

	return claims, args.Error(1)
}
