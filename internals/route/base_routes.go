package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	database "academia_backend/internals/databases"
	middlewares "academia_backend/internals/middlewares"
)

func BaseRoutes(app *fiber.App, db *gorm.DB, metrics *middlewares.Metrics) {
	// liveness + DB reachability
	app.Get("/health", func(c *fiber.Ctx) error {
		status := "ok"
		httpStatus := fiber.StatusOK
		if err := database.Ping(c.UserContext(), db); err != nil {
			status = "degraded"
			httpStatus = fiber.StatusServiceUnavailable
		}

		return c.Status(httpStatus).JSON(fiber.Map{
			"status":    status,
			"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
			"uptime":    int(time.Since(startTime).Seconds()),
		})
	})

	if metrics != nil {
		app.Get("/metrics", metrics.Handler())
	}
}
