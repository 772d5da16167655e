package service

import (
	"context"
	"errors"
	"log/slog"

	"gorm.io/gorm"

	"academia_backend/internals/features/gym/model"
	"academia_backend/internals/features/gym/repository"
	helper "academia_backend/internals/helpers"
	"academia_backend/internals/helpers/dbtime"
)

const MsgAlreadyPaid = "payment already settled"

type PagamentoService struct {
	DB   *gorm.DB
	repo *repository.PagamentoRepository
}

func NewPagamentoService(db *gorm.DB) *PagamentoService {
	return &PagamentoService{DB: db, repo: repository.NewPagamentoRepository(db)}
}

// MarkPaid settles a pendente pagamento. pago -> pendente never happens; a
// second settlement is a 400 and leaves the row untouched.
func (s *PagamentoService) MarkPaid(ctx context.Context, id uint) (*model.Pagamento, error) {
	var out *model.Pagamento

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		current, err := repo.Get(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.NotFound("payment not found")
			}
			return err
		}
		if current.PagamentoStatus == model.PagamentoStatusPago {
			return helper.Rejected(MsgAlreadyPaid)
		}

		changed, err := repo.MarkPaid(ctx, id, dbtime.Now())
		if err != nil {
			return err
		}
		if !changed {
			return helper.Rejected(MsgAlreadyPaid)
		}

		out, err = repo.FindFull(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "pagamento settled", "pagamento_id", id, "matricula_id", out.PagamentoMatriculaID)
	return out, nil
}
