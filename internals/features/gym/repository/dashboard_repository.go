package repository

import (
	"context"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"academia_backend/internals/features/gym/model"
)

type DashboardRepository struct {
	DB *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) *DashboardRepository {
	return &DashboardRepository{DB: db}
}

func (r *DashboardRepository) CountAlunosAtivos(ctx context.Context) (int64, error) {
	var n int64
	err := r.DB.WithContext(ctx).
		Model(&model.Aluno{}).
		Where("aluno_status = ?", model.AlunoStatusAtivo).
		Count(&n).Error
	return n, err
}

// CountInadimplentes counts active alunos with at least one pendente pagamento
// due before cutoff. The cutoff is a date so the comparison stays date against
// date on every driver. EXISTS keeps an aluno with many overdue rows at 1.
func (r *DashboardRepository) CountInadimplentes(ctx context.Context, cutoff datatypes.Date) (int64, error) {
	db := r.DB.WithContext(ctx)

	overdue := db.Table("pagamentos AS p").
		Select("1").
		Joins("JOIN matriculas AS m ON m.matricula_id = p.pagamento_matricula_id").
		Where("m.matricula_aluno_id = alunos.aluno_id").
		Where("p.pagamento_status = ?", model.PagamentoStatusPendente).
		Where("p.pagamento_data_vencimento < ?", cutoff)

	var n int64
	err := db.Model(&model.Aluno{}).
		Where("aluno_status = ?", model.AlunoStatusAtivo).
		Where("EXISTS (?)", overdue).
		Count(&n).Error
	return n, err
}
