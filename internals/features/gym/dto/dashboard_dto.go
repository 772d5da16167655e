package dto

type DashboardMetricsResponse struct {
	TotalAlunosAtivos  int64 `json:"totalAlunosAtivos"`
	TotalInadimplentes int64 `json:"totalInadimplentes"`
}
