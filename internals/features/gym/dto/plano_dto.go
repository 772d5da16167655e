package dto

import (
	"strings"
	"time"

	"academia_backend/internals/features/gym/model"
)

type CreatePlanoRequest struct {
	Nome        string   `json:"nome" validate:"required,min=2,max=100"`
	Preco       *float64 `json:"preco" validate:"required,gt=0,lte=99999999.99,finite,money"`
	DuracaoDias *int     `json:"duracaoDias" validate:"required,gt=0"`
}

func (r *CreatePlanoRequest) Normalize() {
	r.Nome = strings.TrimSpace(r.Nome)
}

func (r CreatePlanoRequest) ToModel() model.Plano {
	return model.Plano{
		PlanoNome:        r.Nome,
		PlanoPreco:       *r.Preco,
		PlanoDuracaoDias: *r.DuracaoDias,
	}
}

type UpdatePlanoRequest struct {
	Nome        *string  `json:"nome" validate:"omitempty,min=2,max=100"`
	Preco       *float64 `json:"preco" validate:"omitempty,gt=0,lte=99999999.99,finite,money"`
	DuracaoDias *int     `json:"duracaoDias" validate:"omitempty,gt=0"`
}

func (r *UpdatePlanoRequest) Normalize() {
	trimPtr(r.Nome)
}

func (r UpdatePlanoRequest) Changes() map[string]any {
	changes := map[string]any{}
	if r.Nome != nil {
		changes["plano_nome"] = *r.Nome
	}
	if r.Preco != nil {
		changes["plano_preco"] = *r.Preco
	}
	if r.DuracaoDias != nil {
		changes["plano_duracao_dias"] = *r.DuracaoDias
	}
	return changes
}

type PlanoCount struct {
	Matriculas int64 `json:"matriculas"`
}

type PlanoResponse struct {
	ID          uint                `json:"id"`
	Nome        string              `json:"nome"`
	Preco       float64             `json:"preco"`
	DuracaoDias int                 `json:"duracaoDias"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
	Matriculas  []MatriculaResponse `json:"matriculas,omitempty"`
	Count       *PlanoCount         `json:"_count,omitempty"`
}

func ToPlanoResponse(m *model.Plano) PlanoResponse {
	resp := PlanoResponse{
		ID:          m.PlanoID,
		Nome:        m.PlanoNome,
		Preco:       m.PlanoPreco,
		DuracaoDias: m.PlanoDuracaoDias,
		CreatedAt:   m.PlanoCreatedAt,
		UpdatedAt:   m.PlanoUpdatedAt,
	}
	if len(m.Matriculas) > 0 {
		resp.Matriculas = make([]MatriculaResponse, 0, len(m.Matriculas))
		for i := range m.Matriculas {
			resp.Matriculas = append(resp.Matriculas, ToMatriculaResponse(&m.Matriculas[i]))
		}
	}
	return resp
}

// ToPlanoListResponse attaches the per-plan enrollment count used by the list view.
func ToPlanoListResponse(rows []model.Plano, counts map[uint]int64) []PlanoResponse {
	out := make([]PlanoResponse, 0, len(rows))
	for i := range rows {
		resp := ToPlanoResponse(&rows[i])
		resp.Count = &PlanoCount{Matriculas: counts[rows[i].PlanoID]}
		out = append(out, resp)
	}
	return out
}
