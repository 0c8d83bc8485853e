package postgres

import (
	"context"

	"salesapi/internal/domain/entity"
	domainerrors "salesapi/internal/domain/errors"
	"salesapi/internal/domain/repository"
	"salesapi/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindByID retrieves a user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a user by email, matched case-insensitively.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("LOWER(email) = LOWER(?)", email).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// FindByCredentials retrieves the user whose email and password both match
// case-insensitively. Passwords are stored as provided, so the comparison
// happens in SQL.
func (repo *userRepository) FindByCredentials(ctx context.Context, email, password string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("LOWER(email) = LOWER(?) AND LOWER(password) = LOWER(?)", email, password).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by credentials")
	}

	return toUserDomain(&userM), nil
}

// Search returns all users matching the filter, combining criteria with AND.
func (repo *userRepository) Search(ctx context.Context, filter repository.UserSearchFilter) ([]*entity.User, error) {
	query := repo.db.WithContext(ctx).Model(&model.UserModel{})

	if filter.Name != nil {
		query = query.Where("name ILIKE ?", "%"+*filter.Name+"%")
	}
	if filter.BirthDateMin != nil {
		query = query.Where("birth_date >= ?", *filter.BirthDateMin)
	}
	if filter.BirthDateMax != nil {
		query = query.Where("birth_date <= ?", *filter.BirthDateMax)
	}

	var userModels []*model.UserModel
	if err := query.Order("id ASC").Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search users")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

// Create persists a new user and assigns the generated ID back to the entity.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailExists
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProfileNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Update the entity with generated values
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Delete removes the user with the given ID.
func (repo *userRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.UserModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// toUserDomain converts a persistence model to a domain entity.
func toUserDomain(userM *model.UserModel) *entity.User {
	return &entity.User{
		ID:        userM.ID,
		Name:      userM.Name,
		Email:     userM.Email,
		Password:  userM.Password,
		BirthDate: userM.BirthDate,
		ProfileID: userM.ProfileID,
		CreatedAt: userM.CreatedAt,
		UpdatedAt: userM.UpdatedAt,
	}
}

// fromUserDomain converts a domain entity to a persistence model.
func fromUserDomain(user *entity.User) *model.UserModel {
	return &model.UserModel{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Password:  user.Password,
		BirthDate: user.BirthDate,
		ProfileID: user.ProfileID,
	}
}
