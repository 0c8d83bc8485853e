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

// stateRepository implements the repository.StateRepository interface.
type stateRepository struct {
	db *gorm.DB
}

// NewStateRepository is the constructor for stateRepository.
func NewStateRepository(db *gorm.DB) repository.StateRepository {
	return &stateRepository{
		db: db,
	}
}

// FindByID retrieves a state by its unique ID.
func (repo *stateRepository) FindByID(ctx context.Context, id int64) (*entity.State, error) {
	var stateM model.StateModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&stateM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStateNotFound
		}

		return nil, errors.Wrap(err, "failed to find state by ID")
	}

	return toStateDomain(&stateM), nil
}

// Search returns all states whose name contains the given substring, or every
// state when name is nil.
func (repo *stateRepository) Search(ctx context.Context, name *string) ([]*entity.State, error) {
	query := repo.db.WithContext(ctx).Model(&model.StateModel{})

	if name != nil {
		query = query.Where("name ILIKE ?", "%"+*name+"%")
	}

	var stateModels []*model.StateModel
	if err := query.Order("id ASC").Find(&stateModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search states")
	}

	states := make([]*entity.State, 0, len(stateModels))
	for _, stateM := range stateModels {
		states = append(states, toStateDomain(stateM))
	}

	return states, nil
}

// Update replaces the stored fields of an existing state.
func (repo *stateRepository) Update(ctx context.Context, state *entity.State) error {
	result := repo.db.WithContext(ctx).
		Model(&model.StateModel{}).
		Where("id = ?", state.ID).
		Updates(map[string]any{
			"name":     state.Name,
			"initials": state.Initials,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update state")
	}
	if result.RowsAffected == 0 {
		return repository.ErrStateNotFound
	}

	return nil
}

// Delete removes the state with the given ID.
func (repo *stateRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.StateModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete state")
	}
	if result.RowsAffected == 0 {
		return repository.ErrStateNotFound
	}

	return nil
}

// toStateDomain converts a persistence model to a domain entity.
func toStateDomain(stateM *model.StateModel) *entity.State {
	return &entity.State{
		ID:       stateM.ID,
		Name:     stateM.Name,
		Initials: stateM.Initials,
	}
}
