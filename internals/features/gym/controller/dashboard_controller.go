package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academia_backend/internals/features/gym/service"
	helper "academia_backend/internals/helpers"
)

type DashboardController struct {
	svc *service.DashboardService
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{svc: service.NewDashboardService(db)}
}

// GET /dashboard/metrics
func (ctrl *DashboardController) Metrics(c *fiber.Ctx) error {
	out, err := ctrl.svc.Metrics(c.UserContext())
	if err != nil {
		return err
	}
	return helper.JsonOK(c, out)
}
