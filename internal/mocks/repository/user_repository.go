// Package repository provides hand-written testify mocks for the persistence
// contracts.
package repository

import (
	"context"
	"testing"

	"salesapi/internal/domain/entity"
	"salesapi/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository mocks repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

// NewMockUserRepository builds a mock bound to the test lifecycle.
func NewMockUserRepository(t *testing.T) *MockUserRepository {
	m := &MockUserRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockUserRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*entity.User)

	return user, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*entity.User)

	return user, args.Error(1)
}

func (m *MockUserRepository) FindByCredentials(ctx context.Context, email, password string) (*entity.User, error) {
	args := m.Called(ctx, email, password)
	user, _ := args.Get(0).(*entity.User)

	return user, args.Error(1)
}

func (m *MockUserRepository) Search(ctx context.Context, filter repository.UserSearchFilter) ([]*entity.User, error) {
	args := m.Called(ctx, filter)
	users, _ := args.Get(0).([]*entity.User)

	return users, args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}
