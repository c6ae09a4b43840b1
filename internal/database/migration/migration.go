package migration

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"storeapi/internal/model"
)

type migrationStep struct {
	Name  string
	Model any
}

// Parents come before the tables that reference them.
var steps = []migrationStep{
	{Name: "migrate_stores", Model: &model.Store{}},
	{Name: "migrate_store_inspections", Model: &model.StoreInspection{}},
	{Name: "migrate_products", Model: &model.Product{}},
	{Name: "migrate_product_arrivals", Model: &model.ProductArrival{}},
	{Name: "migrate_customers", Model: &model.Customer{}},
	{Name: "migrate_purchases", Model: &model.Purchase{}},
}

// EnsureMigrated creates or updates the schema for every entity. It is safe
// to run on every start.
func EnsureMigrated(ctx context.Context, db *gorm.DB, log zerolog.Logger) error {
	start := time.Now()
	log = log.With().Str("component", "database").Logger()

	log.Info().
		Str("event", "db_migration_start").
		Str("status", "in_progress").
		Int("steps", len(steps)).
		Msg("running schema migration")

	for _, step := range steps {
		stepStart := time.Now()
		if err := db.WithContext(ctx).AutoMigrate(step.Model); err != nil {
			log.Error().
				Err(err).
				Str("event", "db_migration_failed").
				Str("status", "error").
				Str("migration_step", step.Name).
				Int64("duration_ms", time.Since(start).Milliseconds()).
				Int64("step_duration_ms", time.Since(stepStart).Milliseconds()).
				Msg("migration step failed")
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.Debug().
			Str("event", "db_migration_step").
			Str("status", "success").
			Str("migration_step", step.Name).
			Int64("step_duration_ms", time.Since(stepStart).Milliseconds()).
			Msg("migration step applied")
	}

	log.Info().
		Str("event", "db_migration_success").
		Str("status", "success").
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Msg("schema migration finished")

	return nil
}
