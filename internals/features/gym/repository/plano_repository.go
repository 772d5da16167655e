package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"academia_backend/internals/features/gym/model"
)

type PlanoRepository struct {
	DB *gorm.DB
}

func NewPlanoRepository(db *gorm.DB) *PlanoRepository {
	return &PlanoRepository{DB: db}
}

func (r *PlanoRepository) WithTx(tx *gorm.DB) *PlanoRepository {
	return &PlanoRepository{DB: tx}
}

// List returns the planos ordered by name plus the matricula count per plano id.
func (r *PlanoRepository) List(ctx context.Context) ([]model.Plano, map[uint]int64, error) {
	db := r.DB.WithContext(ctx)

	var rows []model.Plano
	if err := db.Order("plano_nome ASC").Order("plano_id ASC").Find(&rows).Error; err != nil {
		return nil, nil, err
	}

	var counts []struct {
		PlanoID uint
		Total   int64
	}
	if err := db.Model(&model.Matricula{}).
		Select("matricula_plano_id AS plano_id, COUNT(*) AS total").
		Group("matricula_plano_id").
		Scan(&counts).Error; err != nil {
		return nil, nil, err
	}

	byID := make(map[uint]int64, len(counts))
	for _, c := range counts {
		byID[c.PlanoID] = c.Total
	}
	return rows, byID, nil
}

// FindByID loads the plano with its matriculas and their alunos.
func (r *PlanoRepository) FindByID(ctx context.Context, id uint) (*model.Plano, error) {
	var row model.Plano
	err := r.DB.WithContext(ctx).
		Preload("Matriculas", orderByMatriculaID).
		Preload("Matriculas.Aluno").
		First(&row, "plano_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Get is a plain lookup without relations.
func (r *PlanoRepository) Get(ctx context.Context, id uint) (*model.Plano, error) {
	var row model.Plano
	if err := r.DB.WithContext(ctx).First(&row, "plano_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *PlanoRepository) Create(ctx context.Context, m *model.Plano) error {
	return r.DB.WithContext(ctx).Create(m).Error
}

// FindByNome is used by the seeder to stay idempotent.
func (r *PlanoRepository) FindByNome(ctx context.Context, nome string) (*model.Plano, error) {
	var row model.Plano
	if err := r.DB.WithContext(ctx).First(&row, "plano_nome = ?", nome).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *PlanoRepository) Update(ctx context.Context, id uint, changes map[string]any) (*model.Plano, error) {
	var out model.Plano
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&out, "plano_id = ?", id).Error; err != nil {
			return err
		}
		if len(changes) == 0 {
			return nil
		}
		if err := tx.Model(&out).Updates(changes).Error; err != nil {
			return err
		}
		return tx.First(&out, "plano_id = ?", id).Error
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete refuses (gorm.ErrForeignKeyViolated) while the plano has matriculas.
func (r *PlanoRepository) Delete(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row model.Plano
		if err := tx.Select("plano_id").First(&row, "plano_id = ?", id).Error; err != nil {
			return err
		}
		var n int64
		if err := tx.Model(&model.Matricula{}).Where("matricula_plano_id = ?", id).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return fmt.Errorf("plano %d has %d matriculas: %w", id, n, gorm.ErrForeignKeyViolated)
		}
		return tx.Delete(&model.Plano{}, "plano_id = ?", id).Error
	})
}
