package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"academia_backend/internals/features/gym/model"
)

type AlunoRepository struct {
	DB *gorm.DB
}

func NewAlunoRepository(db *gorm.DB) *AlunoRepository {
	return &AlunoRepository{DB: db}
}

func (r *AlunoRepository) WithTx(tx *gorm.DB) *AlunoRepository {
	return &AlunoRepository{DB: tx}
}

// List is ordered by name; each aluno carries its matriculas and their planos.
func (r *AlunoRepository) List(ctx context.Context, status *model.AlunoStatus) ([]model.Aluno, error) {
	q := r.DB.WithContext(ctx).
		Preload("Matriculas", orderByMatriculaID).
		Preload("Matriculas.Plano").
		Order("aluno_nome ASC").
		Order("aluno_id ASC")
	if status != nil {
		q = q.Where("aluno_status = ?", *status)
	}

	var rows []model.Aluno
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// FindByID returns gorm.ErrRecordNotFound when absent.
func (r *AlunoRepository) FindByID(ctx context.Context, id uint) (*model.Aluno, error) {
	var row model.Aluno
	err := r.DB.WithContext(ctx).
		Preload("Matriculas", orderByMatriculaID).
		Preload("Matriculas.Plano").
		Preload("Matriculas.Pagamentos", orderByVencimento).
		First(&row, "aluno_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *AlunoRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&model.Aluno{}).Where("aluno_id = ?", id).Count(&n).Error
	return n > 0, err
}

func (r *AlunoRepository) Create(ctx context.Context, m *model.Aluno) error {
	return r.DB.WithContext(ctx).Create(m).Error
}

// Update writes only the given columns and returns the fresh row.
func (r *AlunoRepository) Update(ctx context.Context, id uint, changes map[string]any) (*model.Aluno, error) {
	var out model.Aluno
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&out, "aluno_id = ?", id).Error; err != nil {
			return err
		}
		if len(changes) == 0 {
			return nil
		}
		if err := tx.Model(&out).Updates(changes).Error; err != nil {
			return err
		}
		return tx.First(&out, "aluno_id = ?", id).Error
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete refuses (gorm.ErrForeignKeyViolated) while the aluno has matriculas.
func (r *AlunoRepository) Delete(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row model.Aluno
		if err := tx.Select("aluno_id").First(&row, "aluno_id = ?", id).Error; err != nil {
			return err
		}
		var n int64
		if err := tx.Model(&model.Matricula{}).Where("matricula_aluno_id = ?", id).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return fmt.Errorf("aluno %d has %d matriculas: %w", id, n, gorm.ErrForeignKeyViolated)
		}
		return tx.Delete(&model.Aluno{}, "aluno_id = ?", id).Error
	})
}

func orderByMatriculaID(db *gorm.DB) *gorm.DB {
	return db.Order("matricula_id ASC")
}

func orderByVencimento(db *gorm.DB) *gorm.DB {
	return db.Order("pagamento_data_vencimento ASC").Order("pagamento_id ASC")
}
