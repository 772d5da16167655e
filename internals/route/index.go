package routes

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	middlewares "academia_backend/internals/middlewares"
	routeDetails "academia_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB, metrics *middlewares.Metrics) {
	startTime = time.Now()

	slog.Debug("setting up base routes")
	BaseRoutes(app, db, metrics)

	slog.Debug("setting up gym routes")
	routeDetails.GymRoutes(app, db)
}
