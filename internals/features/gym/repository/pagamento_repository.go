package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"academia_backend/internals/features/gym/dto"
	"academia_backend/internals/features/gym/model"
)

type PagamentoRepository struct {
	DB *gorm.DB
}

func NewPagamentoRepository(db *gorm.DB) *PagamentoRepository {
	return &PagamentoRepository{DB: db}
}

func (r *PagamentoRepository) WithTx(tx *gorm.DB) *PagamentoRepository {
	return &PagamentoRepository{DB: tx}
}

func (r *PagamentoRepository) CreateBatch(ctx context.Context, rows []model.Pagamento) error {
	if len(rows) == 0 {
		return nil
	}
	return r.DB.WithContext(ctx).Omit("Matricula").Create(&rows).Error
}

// List applies every non-nil filter (AND) and orders by due date.
func (r *PagamentoRepository) List(ctx context.Context, f dto.PagamentoFilter) ([]model.Pagamento, error) {
	q := r.DB.WithContext(ctx).
		Preload("Matricula.Aluno").
		Preload("Matricula.Plano").
		Order("pagamento_data_vencimento ASC").
		Order("pagamento_id ASC")
	if f.MatriculaID != nil {
		q = q.Where("pagamento_matricula_id = ?", *f.MatriculaID)
	}
	if f.Status != nil {
		q = q.Where("pagamento_status = ?", *f.Status)
	}

	var rows []model.Pagamento
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *PagamentoRepository) Get(ctx context.Context, id uint) (*model.Pagamento, error) {
	var row model.Pagamento
	if err := r.DB.WithContext(ctx).First(&row, "pagamento_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// FindFull loads the pagamento with its matricula, aluno and plano.
func (r *PagamentoRepository) FindFull(ctx context.Context, id uint) (*model.Pagamento, error) {
	var row model.Pagamento
	err := r.DB.WithContext(ctx).
		Preload("Matricula.Aluno").
		Preload("Matricula.Plano").
		First(&row, "pagamento_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// MarkPaid flips a pendente row to pago. It reports whether a row changed, so a
// concurrent second settlement sees false instead of overwriting the first.
func (r *PagamentoRepository) MarkPaid(ctx context.Context, id uint, at time.Time) (bool, error) {
	res := r.DB.WithContext(ctx).
		Model(&model.Pagamento{}).
		Where("pagamento_id = ? AND pagamento_status = ?", id, model.PagamentoStatusPendente).
		Updates(map[string]any{
			"pagamento_status":         model.PagamentoStatusPago,
			"pagamento_data_pagamento": at,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
