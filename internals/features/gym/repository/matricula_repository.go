package repository

import (
	"context"

	"gorm.io/gorm"

	"academia_backend/internals/features/gym/model"
)

type MatriculaRepository struct {
	DB *gorm.DB
}

func NewMatriculaRepository(db *gorm.DB) *MatriculaRepository {
	return &MatriculaRepository{DB: db}
}

func (r *MatriculaRepository) WithTx(tx *gorm.DB) *MatriculaRepository {
	return &MatriculaRepository{DB: tx}
}

// Create inserts the matricula only; pagamentos go through PagamentoRepository.CreateBatch.
func (r *MatriculaRepository) Create(ctx context.Context, m *model.Matricula) error {
	return r.DB.WithContext(ctx).Omit("Aluno", "Plano", "Pagamentos").Create(m).Error
}

// FindFull loads the matricula with aluno, plano and its pagamentos by due date.
func (r *MatriculaRepository) FindFull(ctx context.Context, id uint) (*model.Matricula, error) {
	var row model.Matricula
	err := r.DB.WithContext(ctx).
		Preload("Aluno").
		Preload("Plano").
		Preload("Pagamentos", orderByVencimento).
		First(&row, "matricula_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}
