package seeds

import (
	"context"

	"gorm.io/gorm"

	"academia_backend/internals/seeds/planos"
)

// RunAllSeeds loads the demo data. Every seeder skips rows that already exist.
func RunAllSeeds(ctx context.Context, db *gorm.DB) error {
	//* Planos
	if _, err := planos.SeedPlanosFromJSON(ctx, db, nil); err != nil {
		return err
	}
	return nil
}
