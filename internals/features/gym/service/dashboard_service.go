package service

import (
	"context"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"academia_backend/internals/features/gym/dto"
	"academia_backend/internals/features/gym/repository"
	"academia_backend/internals/helpers/dbtime"
)

type DashboardService struct {
	repo *repository.DashboardRepository
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{repo: repository.NewDashboardRepository(db)}
}

// Metrics is recomputed on every call. A pendente pagamento due today already
// counts as overdue.
func (s *DashboardService) Metrics(ctx context.Context) (dto.DashboardMetricsResponse, error) {
	ativos, err := s.repo.CountAlunosAtivos(ctx)
	if err != nil {
		return dto.DashboardMetricsResponse{}, err
	}
	inadimplentes, err := s.repo.CountInadimplentes(ctx, datatypes.Date(dbtime.StartOfTomorrow()))
	if err != nil {
		return dto.DashboardMetricsResponse{}, err
	}
	return dto.DashboardMetricsResponse{
		TotalAlunosAtivos:  ativos,
		TotalInadimplentes: inadimplentes,
	}, nil
}
