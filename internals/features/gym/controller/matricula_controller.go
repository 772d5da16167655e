package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academia_backend/internals/features/gym/dto"
	"academia_backend/internals/features/gym/service"
	helper "academia_backend/internals/helpers"
	"academia_backend/internals/helpers/dbtime"
)

type MatriculaController struct {
	svc *service.MatriculaService
}

func NewMatriculaController(db *gorm.DB) *MatriculaController {
	return &MatriculaController{svc: service.NewMatriculaService(db)}
}

// POST /matriculas
func (ctrl *MatriculaController) Create(c *fiber.Ctx) error {
	var req dto.CreateMatriculaRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}
	inicio, err := dbtime.ParseDay(req.DataInicio)
	if err != nil {
		return helper.FieldError("dataInicio", "must be a valid date")
	}

	m, err := ctrl.svc.Create(c.UserContext(), service.CreateMatriculaInput{
		AlunoID:    *req.AlunoID,
		PlanoID:    *req.PlanoID,
		DataInicio: inicio,
	})
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, dto.ToMatriculaResponse(m))
}
