package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academia_backend/internals/features/gym/dto"
	"academia_backend/internals/features/gym/repository"
	helper "academia_backend/internals/helpers"
)

var planoDBMessages = helper.DBMessages{
	NotFound: "plano not found",
	InUse:    "plano has linked matriculas",
}

type PlanoController struct {
	repo *repository.PlanoRepository
}

func NewPlanoController(db *gorm.DB) *PlanoController {
	return &PlanoController{repo: repository.NewPlanoRepository(db)}
}

// GET /planos
func (ctrl *PlanoController) List(c *fiber.Ctx) error {
	rows, counts, err := ctrl.repo.List(c.UserContext())
	if err != nil {
		return err
	}
	return helper.JsonOK(c, dto.ToPlanoListResponse(rows, counts))
}

// GET /planos/:id
func (ctrl *PlanoController) Get(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}
	row, err := ctrl.repo.FindByID(c.UserContext(), id)
	if err != nil {
		return helper.FromDBError(err, planoDBMessages)
	}
	return helper.JsonOK(c, dto.ToPlanoResponse(row))
}

// POST /planos
func (ctrl *PlanoController) Create(c *fiber.Ctx) error {
	var req dto.CreatePlanoRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}
	m := req.ToModel()
	if err := ctrl.repo.Create(c.UserContext(), &m); err != nil {
		return helper.FromDBError(err, planoDBMessages)
	}
	return helper.JsonCreated(c, dto.ToPlanoResponse(&m))
}

// PUT /planos/:id
func (ctrl *PlanoController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdatePlanoRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}
	row, err := ctrl.repo.Update(c.UserContext(), id, req.Changes())
	if err != nil {
		return helper.FromDBError(err, planoDBMessages)
	}
	return helper.JsonOK(c, dto.ToPlanoResponse(row))
}

// DELETE /planos/:id
func (ctrl *PlanoController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := ctrl.repo.Delete(c.UserContext(), id); err != nil {
		return helper.FromDBError(err, planoDBMessages)
	}
	return helper.JsonDeleted(c)
}
