package repository

import (
	"context"
	"testing"

	"salesapi/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockProfileRepository mocks repository.ProfileRepository.
type MockProfileRepository struct {
	mock.Mock
}

// NewMockProfileRepository builds a mock bound to the test lifecycle.
func NewMockProfileRepository(t *testing.T) *MockProfileRepository {
	m := &MockProfileRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockProfileRepository) FindByID(ctx context.Context, id int64) (*entity.Profile, error) {
	args := m.Called(ctx, id)
	profile, _ := args.Get(0).(*entity.Profile)

	return profile, args.Error(1)
}

func (m *MockProfileRepository) FindAll(ctx context.Context) ([]*entity.Profile, error) {
	args := m.Called(ctx)
	profiles, _ := args.Get(0).([]*entity.Profile)

	return profiles, args.Error(1)
}
