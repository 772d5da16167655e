package dto

import (
	"strings"
	"time"

	"academia_backend/internals/features/gym/model"
)

type CreateMatriculaRequest struct {
	AlunoID    *uint  `json:"alunoId" validate:"required,gt=0"`
	PlanoID    *uint  `json:"planoId" validate:"required,gt=0"`
	DataInicio string `json:"dataInicio" validate:"required,date"`
}

func (r *CreateMatriculaRequest) Normalize() {
	r.DataInicio = strings.TrimSpace(r.DataInicio)
}

type MatriculaResponse struct {
	ID         uint                `json:"id"`
	AlunoID    uint                `json:"alunoId"`
	PlanoID    uint                `json:"planoId"`
	DataInicio time.Time           `json:"dataInicio"`
	DataFim    time.Time           `json:"dataFim"`
	CreatedAt  time.Time           `json:"createdAt"`
	Aluno      *AlunoResponse      `json:"aluno,omitempty"`
	Plano      *PlanoResponse      `json:"plano,omitempty"`
	Pagamentos []PagamentoResponse `json:"pagamentos,omitempty"`
}

func ToMatriculaResponse(m *model.Matricula) MatriculaResponse {
	resp := MatriculaResponse{
		ID:         m.MatriculaID,
		AlunoID:    m.MatriculaAlunoID,
		PlanoID:    m.MatriculaPlanoID,
		DataInicio: time.Time(m.MatriculaDataInicio),
		DataFim:    time.Time(m.MatriculaDataFim),
		CreatedAt:  m.MatriculaCreatedAt,
	}
	if m.Aluno != nil {
		a := ToAlunoResponse(m.Aluno)
		resp.Aluno = &a
	}
	if m.Plano != nil {
		p := ToPlanoResponse(m.Plano)
		resp.Plano = &p
	}
	if len(m.Pagamentos) > 0 {
		resp.Pagamentos = ToPagamentoResponses(m.Pagamentos)
	}
	return resp
}
