package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"academia_backend/internals/features/gym/model"
	"academia_backend/internals/features/gym/repository"
	helper "academia_backend/internals/helpers"
	"academia_backend/internals/helpers/dbtime"
)

type MatriculaService struct {
	DB         *gorm.DB
	planos     *repository.PlanoRepository
	alunos     *repository.AlunoRepository
	matriculas *repository.MatriculaRepository
	pagamentos *repository.PagamentoRepository
}

func NewMatriculaService(db *gorm.DB) *MatriculaService {
	return &MatriculaService{
		DB:         db,
		planos:     repository.NewPlanoRepository(db),
		alunos:     repository.NewAlunoRepository(db),
		matriculas: repository.NewMatriculaRepository(db),
		pagamentos: repository.NewPagamentoRepository(db),
	}
}

type CreateMatriculaInput struct {
	AlunoID    uint
	PlanoID    uint
	DataInicio time.Time
}

// Create enrolls an aluno in a plano and materializes the pagamento schedule.
// Everything runs in one transaction: either the matricula exists with all of
// its pagamentos or nothing was written.
func (s *MatriculaService) Create(ctx context.Context, in CreateMatriculaInput) (*model.Matricula, error) {
	var out *model.Matricula

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		planos := s.planos.WithTx(tx)
		alunos := s.alunos.WithTx(tx)
		matriculas := s.matriculas.WithTx(tx)
		pagamentos := s.pagamentos.WithTx(tx)

		plano, err := planos.Get(ctx, in.PlanoID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.NotFound("plano not found")
			}
			return err
		}
		ok, err := alunos.Exists(ctx, in.AlunoID)
		if err != nil {
			return err
		}
		if !ok {
			return helper.NotFound("aluno not found")
		}

		inicio := dbtime.StartOfDay(in.DataInicio)
		m := &model.Matricula{
			MatriculaAlunoID:    in.AlunoID,
			MatriculaPlanoID:    plano.PlanoID,
			MatriculaDataInicio: datatypes.Date(inicio),
			MatriculaDataFim:    datatypes.Date(EndDate(inicio, plano.PlanoDuracaoDias)),
		}
		if err := matriculas.Create(ctx, m); err != nil {
			return err
		}

		schedule := BuildSchedule(inicio, plano.PlanoDuracaoDias, plano.PlanoPreco)
		rows := make([]model.Pagamento, 0, len(schedule))
		for _, inst := range schedule {
			rows = append(rows, model.Pagamento{
				PagamentoMatriculaID:    m.MatriculaID,
				PagamentoValor:          inst.Amount,
				PagamentoDataVencimento: datatypes.Date(inst.DueDate),
				PagamentoStatus:         model.PagamentoStatusPendente,
			})
		}
		if err := pagamentos.CreateBatch(ctx, rows); err != nil {
			return err
		}

		out, err = matriculas.FindFull(ctx, m.MatriculaID)
		return err
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "matricula created",
		"matricula_id", out.MatriculaID,
		"aluno_id", out.MatriculaAlunoID,
		"plano_id", out.MatriculaPlanoID,
		"installments", len(out.Pagamentos),
	)
	return out, nil
}
