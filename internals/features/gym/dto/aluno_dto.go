package dto

import (
	"strings"
	"time"

	"gorm.io/datatypes"

	"academia_backend/internals/features/gym/model"
	helper "academia_backend/internals/helpers"
	"academia_backend/internals/helpers/dbtime"
)

// ============================
// Create Request DTO
// ============================
type CreateAlunoRequest struct {
	Nome           string  `json:"nome" validate:"required,min=2,max=150"`
	CPF            string  `json:"cpf" validate:"required,cpf"`
	Email          string  `json:"email" validate:"required,email,max=150"`
	DataNascimento string  `json:"dataNascimento" validate:"required,date"`
	Status         *string `json:"status" validate:"omitempty,oneof=ativo inativo"`
	Plano          *string `json:"plano" validate:"omitempty,max=100"`
}

func (r *CreateAlunoRequest) Normalize() {
	r.Nome = strings.TrimSpace(r.Nome)
	r.CPF = strings.TrimSpace(r.CPF)
	r.Email = strings.TrimSpace(r.Email)
	r.DataNascimento = strings.TrimSpace(r.DataNascimento)
	trimPtr(r.Status)
	trimPtr(r.Plano)
}

func (r CreateAlunoRequest) ToModel() (model.Aluno, error) {
	nascimento, err := dbtime.ParseDay(r.DataNascimento)
	if err != nil {
		return model.Aluno{}, helper.FieldError("dataNascimento", "must be a valid date")
	}

	status := model.AlunoStatusAtivo
	if r.Status != nil {
		status = model.AlunoStatus(*r.Status)
	}
	plano := model.DefaultPlanoLabel
	if r.Plano != nil && *r.Plano != "" {
		plano = *r.Plano
	}

	return model.Aluno{
		AlunoNome:           r.Nome,
		AlunoCPF:            helper.NormalizeCPF(r.CPF),
		AlunoEmail:          r.Email,
		AlunoDataNascimento: datatypes.Date(nascimento),
		AlunoStatus:         status,
		AlunoPlano:          plano,
	}, nil
}

// ============================
// Update Request DTO (partial)
// ============================
type UpdateAlunoRequest struct {
	Nome           *string `json:"nome" validate:"omitempty,min=2,max=150"`
	CPF            *string `json:"cpf" validate:"omitempty,cpf"`
	Email          *string `json:"email" validate:"omitempty,email,max=150"`
	DataNascimento *string `json:"dataNascimento" validate:"omitempty,date"`
	Status         *string `json:"status" validate:"omitempty,oneof=ativo inativo"`
	Plano          *string `json:"plano" validate:"omitempty,max=100"`
}

func (r *UpdateAlunoRequest) Normalize() {
	trimPtr(r.Nome)
	trimPtr(r.CPF)
	trimPtr(r.Email)
	trimPtr(r.DataNascimento)
	trimPtr(r.Status)
	trimPtr(r.Plano)
}

// Changes returns only the columns the caller supplied.
func (r UpdateAlunoRequest) Changes() (map[string]any, error) {
	changes := map[string]any{}
	if r.Nome != nil {
		changes["aluno_nome"] = *r.Nome
	}
	if r.CPF != nil {
		changes["aluno_cpf"] = helper.NormalizeCPF(*r.CPF)
	}
	if r.Email != nil {
		changes["aluno_email"] = *r.Email
	}
	if r.DataNascimento != nil {
		d, err := dbtime.ParseDay(*r.DataNascimento)
		if err != nil {
			return nil, helper.FieldError("dataNascimento", "must be a valid date")
		}
		changes["aluno_data_nascimento"] = datatypes.Date(d)
	}
	if r.Status != nil {
		changes["aluno_status"] = model.AlunoStatus(*r.Status)
	}
	if r.Plano != nil {
		changes["aluno_plano"] = *r.Plano
	}
	return changes, nil
}

// ============================
// Response DTO
// ============================
type AlunoResponse struct {
	ID             uint                `json:"id"`
	Nome           string              `json:"nome"`
	CPF            string              `json:"cpf"`
	Email          string              `json:"email"`
	DataNascimento time.Time           `json:"dataNascimento"`
	Status         model.AlunoStatus   `json:"status"`
	Plano          string              `json:"plano"`
	CreatedAt      time.Time           `json:"createdAt"`
	UpdatedAt      time.Time           `json:"updatedAt"`
	Matriculas     []MatriculaResponse `json:"matriculas,omitempty"`
}

func ToAlunoResponse(m *model.Aluno) AlunoResponse {
	resp := AlunoResponse{
		ID:             m.AlunoID,
		Nome:           m.AlunoNome,
		CPF:            m.AlunoCPF,
		Email:          m.AlunoEmail,
		DataNascimento: time.Time(m.AlunoDataNascimento),
		Status:         m.AlunoStatus,
		Plano:          m.AlunoPlano,
		CreatedAt:      m.AlunoCreatedAt,
		UpdatedAt:      m.AlunoUpdatedAt,
	}
	if len(m.Matriculas) > 0 {
		resp.Matriculas = make([]MatriculaResponse, 0, len(m.Matriculas))
		for i := range m.Matriculas {
			resp.Matriculas = append(resp.Matriculas, ToMatriculaResponse(&m.Matriculas[i]))
		}
	}
	return resp
}

func ToAlunoResponses(rows []model.Aluno) []AlunoResponse {
	out := make([]AlunoResponse, 0, len(rows))
	for i := range rows {
		out = append(out, ToAlunoResponse(&rows[i]))
	}
	return out
}

func trimPtr(s *string) {
	if s != nil {
		*s = strings.TrimSpace(*s)
	}
}
