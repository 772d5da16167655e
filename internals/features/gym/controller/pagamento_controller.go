package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academia_backend/internals/features/gym/dto"
	"academia_backend/internals/features/gym/model"
	"academia_backend/internals/features/gym/repository"
	"academia_backend/internals/features/gym/service"
	helper "academia_backend/internals/helpers"
)

type PagamentoController struct {
	repo *repository.PagamentoRepository
	svc  *service.PagamentoService
}

func NewPagamentoController(db *gorm.DB) *PagamentoController {
	return &PagamentoController{
		repo: repository.NewPagamentoRepository(db),
		svc:  service.NewPagamentoService(db),
	}
}

// GET /pagamentos?matriculaId=&status=
// An unknown status is ignored, a malformed matriculaId is a 400.
func (ctrl *PagamentoController) List(c *fiber.Ctx) error {
	var f dto.PagamentoFilter

	matriculaID, ok, err := helper.ParseIDQuery(c, "matriculaId")
	if err != nil {
		return err
	}
	if ok {
		f.MatriculaID = &matriculaID
	}
	if s := model.PagamentoStatus(strings.ToLower(strings.TrimSpace(c.Query("status")))); s.Valid() {
		f.Status = &s
	}

	rows, err := ctrl.repo.List(c.UserContext(), f)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, dto.ToPagamentoResponses(rows))
}

// PATCH /pagamentos/:id/pagar
func (ctrl *PagamentoController) MarkPaid(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}
	row, err := ctrl.svc.MarkPaid(c.UserContext(), id)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, dto.ToPagamentoResponse(row))
}
