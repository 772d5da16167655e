package routes

import (
	"log/slog"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academia_backend/internals/configs"
	helper "academia_backend/internals/helpers"
	middlewares "academia_backend/internals/middlewares"
)

type Deps struct {
	DB             *gorm.DB
	Logger         *slog.Logger
	LimiterStorage fiber.Storage
}

// NewApp builds the fully wired fiber app; main only has to Listen.
func NewApp(cfg *configs.Config, deps Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "academia",
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		ErrorHandler:          helper.ErrorHandler,
		DisableStartupMessage: true,
		ReadTimeout:           15 * time.Second,
		WriteTimeout:          30 * time.Second,
		IdleTimeout:           90 * time.Second,
	})

	metrics := middlewares.NewMetrics()
	middlewares.SetupMiddlewares(app, cfg, middlewares.Options{
		Logger:         deps.Logger,
		Metrics:        metrics,
		LimiterStorage: deps.LimiterStorage,
	})

	SetupRoutes(app, deps.DB, metrics)

	// must stay last
	app.Use(helper.RouteNotFound)
	return app
}
