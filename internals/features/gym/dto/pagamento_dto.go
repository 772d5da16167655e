package dto

import (
	"time"

	"academia_backend/internals/features/gym/model"
)

// PagamentoFilter is built from the list query string; nil fields are not applied.
type PagamentoFilter struct {
	MatriculaID *uint
	Status      *model.PagamentoStatus
}

type PagamentoResponse struct {
	ID              uint                  `json:"id"`
	MatriculaID     uint                  `json:"matriculaId"`
	Valor           float64               `json:"valor"`
	DataVencimento  time.Time             `json:"dataVencimento"`
	StatusPagamento model.PagamentoStatus `json:"statusPagamento"`
	DataPagamento   *time.Time            `json:"dataPagamento,omitempty"`
	CreatedAt       time.Time             `json:"createdAt"`
	UpdatedAt       time.Time             `json:"updatedAt"`
	Matricula       *MatriculaResponse    `json:"matricula,omitempty"`
}

func ToPagamentoResponse(m *model.Pagamento) PagamentoResponse {
	resp := PagamentoResponse{
		ID:              m.PagamentoID,
		MatriculaID:     m.PagamentoMatriculaID,
		Valor:           m.PagamentoValor,
		DataVencimento:  time.Time(m.PagamentoDataVencimento),
		StatusPagamento: m.PagamentoStatus,
		DataPagamento:   m.PagamentoDataPagamento,
		CreatedAt:       m.PagamentoCreatedAt,
		UpdatedAt:       m.PagamentoUpdatedAt,
	}
	if m.Matricula != nil {
		mt := ToMatriculaResponse(m.Matricula)
		resp.Matricula = &mt
	}
	return resp
}

func ToPagamentoResponses(rows []model.Pagamento) []PagamentoResponse {
	out := make([]PagamentoResponse, 0, len(rows))
	for i := range rows {
		out = append(out, ToPagamentoResponse(&rows[i]))
	}
	return out
}
