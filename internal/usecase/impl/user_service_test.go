package impl

import (
	"context"
	"testing"
	"time"

	"salesapi/internal/domain/entity"
	domainerrors "salesapi/internal/domain/errors"
	"salesapi/internal/domain/repository"
	mockRepo "salesapi/internal/mocks/repository"
	"salesapi/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// fixedNow keeps the age checks deterministic.
var fixedNow = time.Date(2022, time.May, 10, 12, 0, 0, 0, time.UTC)

func newUserService(userRepo repository.UserRepository, profileRepo repository.ProfileRepository) usecase.UserUsecase {
	factory := &mockRepo.StubRepositoryFactory{
		UserRepository:    userRepo,
		ProfileRepository: profileRepo,
	}

	service := NewUserService(UserServiceParams{
		TxManager: &mockRepo.StubTransactionManager{Factory: factory},
		UserRepo:  userRepo,
		Logger:    discardLogger(),
	})
	service.(*userService).now = func() time.Time { return fixedNow }

	return service
}

func validUserInput() *usecase.CreateUserInput {
	return &usecase.CreateUserInput{
		Name:      "Maria Silva",
		Email:     "maria@example.com",
		Password:  "s3nhaForte",
		BirthDate: "25/03/1990",
		ProfileID: 1,
	}
}

func TestUserService_CreateUser_Success(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	service := newUserService(userRepo, profileRepo)

	ctx := context.Background()
	userRepo.On("FindByEmail", ctx, "maria@example.com").
		Return(nil, repository.ErrUserNotFound)
	profileRepo.On("FindByID", ctx, int64(1)).
		Return(&entity.Profile{ID: 1, Role: "Usuário", Permission: entity.PermissionUser}, nil)
	userRepo.On("Create", ctx, mock.MatchedBy(func(u *entity.User) bool {
		return u.Email == "maria@example.com" && u.BirthDate.Equal(time.Date(1990, time.March, 25, 0, 0, 0, 0, time.UTC))
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.User).ID = 8
	}).Return(nil)

	id, err := service.CreateUser(ctx, validUserInput())
	require.NoError(t, err)
	assert.Equal(t, int64(8), id)
}

func TestUserService_CreateUser_MonthFirstDateIsInvalid(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	service := newUserService(userRepo, nil)

	input := validUserInput()
	input.BirthDate = "03/25/1990"

	_, err := service.CreateUser(context.Background(), input)
	assert.ErrorIs(t, err, domainerrors.ErrBirthDateInvalid)
	userRepo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
}

func TestUserService_CreateUser_Underage(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	service := newUserService(userRepo, nil)

	input := validUserInput()
	input.BirthDate = "25/03/2018"

	_, err := service.CreateUser(context.Background(), input)
	assert.ErrorIs(t, err, domainerrors.ErrUserUnderage)
}

func TestUserService_CreateUser_EighteenthBirthdayNotYetReached(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	service := newUserService(userRepo, nil)

	// Turns 18 two days after the reference time.
	input := validUserInput()
	input.BirthDate = "12/05/2004"

	_, err := service.CreateUser(context.Background(), input)
	assert.ErrorIs(t, err, domainerrors.ErrUserUnderage)
}

func TestUserService_CreateUser_UniformPassword(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	service := newUserService(userRepo, nil)

	input := validUserInput()
	input.Password = "aaaaaa"

	_, err := service.CreateUser(context.Background(), input)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordUniform)
}

func TestUserService_CreateUser_DuplicateEmail(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	service := newUserService(userRepo, profileRepo)

	ctx := context.Background()
	userRepo.On("FindByEmail", ctx, "maria@example.com").
		Return(&entity.User{ID: 2, Email: "Maria@Example.com"}, nil)

	_, err := service.CreateUser(ctx, validUserInput())
	assert.ErrorIs(t, err, domainerrors.ErrEmailExists)
	profileRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestUserService_CreateUser_UnknownProfile(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	service := newUserService(userRepo, profileRepo)

	ctx := context.Background()
	userRepo.On("FindByEmail", ctx, "maria@example.com").
		Return(nil, repository.ErrUserNotFound)
	profileRepo.On("FindByID", ctx, int64(1)).
		Return(nil, repository.ErrProfileNotFound)

	_, err := service.CreateUser(ctx, validUserInput())
	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_ListUsers_InvalidDateBound(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	service := newUserService(userRepo, nil)

	_, err := service.ListUsers(context.Background(), &usecase.ListUsersInput{
		BirthDateMin: stringPtr("2020-01-01"),
	})
	assert.ErrorIs(t, err, domainerrors.ErrBirthDateInvalid)
}

func TestUserService_ListUsers_EmptyResultIsNotFound(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	service := newUserService(userRepo, nil)

	ctx := context.Background()
	userRepo.On("Search", ctx, repository.UserSearchFilter{}).
		Return([]*entity.User{}, nil)

	_, err := service.ListUsers(ctx, &usecase.ListUsersInput{})
	assert.ErrorIs(t, err, domainerrors.ErrNoUsersFound)
}

func TestUserService_ListUsers_DateBoundsParsed(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	service := newUserService(userRepo, nil)

	ctx := context.Background()
	min := time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)
	max := time.Date(2000, time.December, 31, 0, 0, 0, 0, time.UTC)
	expected := []*entity.User{{ID: 1, Name: "Maria Silva"}}

	userRepo.On("Search", ctx, repository.UserSearchFilter{
		BirthDateMin: &min,
		BirthDateMax: &max,
	}).Return(expected, nil)

	users, err := service.ListUsers(ctx, &usecase.ListUsersInput{
		BirthDateMin: stringPtr("01/01/1980"),
		BirthDateMax: stringPtr("31/12/2000"),
	})
	require.NoError(t, err)
	assert.Equal(t, expected, users)
}

func TestUserService_DeleteUser_NotFoundIncludesID(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	service := newUserService(userRepo, nil)

	ctx := context.Background()
	userRepo.On("FindByID", ctx, int64(42)).
		Return(nil, repository.ErrUserNotFound)

	_, err := service.DeleteUser(ctx, 42)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.HTTPCode())
	assert.Contains(t, appErr.Message(), "42")
}

func TestUserService_DeleteUser_ReturnsDeletedID(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	service := newUserService(userRepo, nil)

	ctx := context.Background()
	userRepo.On("FindByID", ctx, int64(42)).
		Return(&entity.User{ID: 42, Name: "Maria Silva"}, nil)
	userRepo.On("Delete", ctx, int64(42)).Return(nil)

	id, err := service.DeleteUser(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestIsUniformPassword(t *testing.T) {
	cases := []struct {
		password string
		uniform  bool
	}{
		{"", true},
		{"a", true},
		{"aaaaaa", true},
		{"111111", true},
		{"aaaaab", false},
		{"s3nhaForte", false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.uniform, isUniformPassword(tc.password), "password %q", tc.password)
	}
}

func TestUserAge_BirthdayBoundary(t *testing.T) {
	user := &entity.User{BirthDate: time.Date(2004, time.May, 10, 0, 0, 0, 0, time.UTC)}

	dayBefore := time.Date(2022, time.May, 9, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, 17, user.Age(dayBefore))

	onBirthday := time.Date(2022, time.May, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 18, user.Age(onBirthday))
}
