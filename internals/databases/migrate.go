package database

import (
	"gorm.io/gorm"

	"academia_backend/internals/features/gym/model"
)

// AutoMigrate creates/updates the gym tables. Order matters for the FKs.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Aluno{},
		&model.Plano{},
		&model.Matricula{},
		&model.Pagamento{},
	)
}
