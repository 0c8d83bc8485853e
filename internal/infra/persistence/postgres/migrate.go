package postgres

import (
	"context"
	"log/slog"

	"salesapi/config"
	"salesapi/internal/errors"
	"salesapi/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// prepareSchema migrates the schema and loads the baseline reference data.
// Both steps are gated by config so production deployments can manage the
// schema externally.
func prepareSchema(ctx context.Context, db *gorm.DB, cfg *config.Config, logger *slog.Logger) error {
	if cfg.Seed.Migrate {
		if err := db.WithContext(ctx).AutoMigrate(
			&model.ProfileModel{},
			&model.UserModel{},
			&model.ProductModel{},
			&model.StateModel{},
			&model.CityModel{},
			&model.AddressModel{},
			&model.OrderModel{},
			&model.OrderProductModel{},
		); err != nil {
			return errors.Wrap(err, "failed to migrate schema")
		}
		logger.InfoContext(ctx, "database schema migrated")
	}

	if cfg.Seed.Enabled {
		if err := seedReferenceData(ctx, db); err != nil {
			return errors.Wrap(err, "failed to seed reference data")
		}
		logger.InfoContext(ctx, "reference data seeded")
	}

	return nil
}

// seedReferenceData inserts the fixed profiles and the Brazilian states.
// Inserts are idempotent so the seeder can run on every startup.
func seedReferenceData(ctx context.Context, db *gorm.DB) error {
	profiles := []model.ProfileModel{
		{ID: 1, Role: "Usuário", Permission: 1},
		{ID: 2, Role: "Gerente", Permission: 2},
		{ID: 3, Role: "Administrador", Permission: 3},
	}

	if err := db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&profiles).Error; err != nil {
		return errors.Wrap(err, "failed to seed profiles")
	}

	states := []model.StateModel{
		{ID: 1, Name: "Acre", Initials: "AC"},
		{ID: 2, Name: "Alagoas", Initials: "AL"},
		{ID: 3, Name: "Amapá", Initials: "AP"},
		{ID: 4, Name: "Amazonas", Initials: "AM"},
		{ID: 5, Name: "Bahia", Initials: "BA"},
		{ID: 6, Name: "Ceará", Initials: "CE"},
		{ID: 7, Name: "Distrito Federal", Initials: "DF"},
		{ID: 8, Name: "Espírito Santo", Initials: "ES"},
		{ID: 9, Name: "Goiás", Initials: "GO"},
		{ID: 10, Name: "Maranhão", Initials: "MA"},
		{ID: 11, Name: "Mato Grosso", Initials: "MT"},
		{ID: 12, Name: "Mato Grosso do Sul", Initials: "MS"},
		{ID: 13, Name: "Minas Gerais", Initials: "MG"},
		{ID: 14, Name: "Pará", Initials: "PA"},
		{ID: 15, Name: "Paraíba", Initials: "PB"},
		{ID: 16, Name: "Paraná", Initials: "PR"},
		{ID: 17, Name: "Pernambuco", Initials: "PE"},
		{ID: 18, Name: "Piauí", Initials: "PI"},
		{ID: 19, Name: "Rio de Janeiro", Initials: "RJ"},
		{ID: 20, Name: "Rio Grande do Norte", Initials: "RN"},
		{ID: 21, Name: "Rio Grande do Sul", Initials: "RS"},
		{ID: 22, Name: "Rondônia", Initials: "RO"},
		{ID: 23, Name: "Roraima", Initials: "RR"},
		{ID: 24, Name: "Santa Catarina", Initials: "SC"},
		{ID: 25, Name: "São Paulo", Initials: "SP"},
		{ID: 26, Name: "Sergipe", Initials: "SE"},
		{ID: 27, Name: "Tocantins", Initials: "TO"},
	}

	if err := db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&states).Error; err != nil {
		return errors.Wrap(err, "failed to seed states")
	}

	return nil
}
