package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academia_backend/internals/features/gym/dto"
	"academia_backend/internals/features/gym/model"
	"academia_backend/internals/features/gym/repository"
	helper "academia_backend/internals/helpers"
)

var alunoDBMessages = helper.DBMessages{
	NotFound:  "aluno not found",
	Duplicate: "CPF or e-mail already registered",
	InUse:     "aluno has linked matriculas",
}

type AlunoController struct {
	repo *repository.AlunoRepository
}

func NewAlunoController(db *gorm.DB) *AlunoController {
	return &AlunoController{repo: repository.NewAlunoRepository(db)}
}

// GET /alunos?status=
func (ctrl *AlunoController) List(c *fiber.Ctx) error {
	var status *model.AlunoStatus
	if raw := strings.TrimSpace(c.Query("status")); raw != "" {
		s := model.AlunoStatus(strings.ToLower(raw))
		if !s.Valid() {
			return helper.FieldError("status", "must be one of: ativo, inativo")
		}
		status = &s
	}

	rows, err := ctrl.repo.List(c.UserContext(), status)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, dto.ToAlunoResponses(rows))
}

// GET /alunos/:id
func (ctrl *AlunoController) Get(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}
	row, err := ctrl.repo.FindByID(c.UserContext(), id)
	if err != nil {
		return helper.FromDBError(err, alunoDBMessages)
	}
	return helper.JsonOK(c, dto.ToAlunoResponse(row))
}

// POST /alunos
func (ctrl *AlunoController) Create(c *fiber.Ctx) error {
	var req dto.CreateAlunoRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}
	m, err := req.ToModel()
	if err != nil {
		return err
	}
	if err := ctrl.repo.Create(c.UserContext(), &m); err != nil {
		return helper.FromDBError(err, alunoDBMessages)
	}
	return helper.JsonCreated(c, dto.ToAlunoResponse(&m))
}

// PUT /alunos/:id (partial: omitted fields are kept)
func (ctrl *AlunoController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateAlunoRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}
	changes, err := req.Changes()
	if err != nil {
		return err
	}

	row, err := ctrl.repo.Update(c.UserContext(), id, changes)
	if err != nil {
		return helper.FromDBError(err, alunoDBMessages)
	}
	return helper.JsonOK(c, dto.ToAlunoResponse(row))
}

// DELETE /alunos/:id
func (ctrl *AlunoController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := ctrl.repo.Delete(c.UserContext(), id); err != nil {
		return helper.FromDBError(err, alunoDBMessages)
	}
	return helper.JsonDeleted(c)
}
