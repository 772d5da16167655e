package middlewares

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"

	"academia_backend/internals/configs"
	"academia_backend/internals/middlewares/logger"
)

type Options struct {
	Logger         *slog.Logger
	Metrics        *Metrics      // nil: no request metrics
	LimiterStorage fiber.Storage // nil: in-memory limiter
}

// SetupMiddlewares installs the global chain. Request id comes first so every
// later log line can carry it; recover sits inside the logger so a panic is
// still logged as a 500.
func SetupMiddlewares(app *fiber.App, cfg *configs.Config, opts Options) {
	app.Use(RequestID())
	if opts.Metrics != nil {
		app.Use(opts.Metrics.Middleware())
	}
	app.Use(logger.LoggerMiddleware(opts.Logger))
	app.Use(RecoveryMiddleware(cfg.AppEnv != "production"))
	app.Use(RequestTimeout(cfg.Timeout))
	app.Use(CorsMiddleware(cfg.CORSOrigins))
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())
	app.Use(GlobalRateLimiter(cfg.RateLimitMax, cfg.RateLimitWindow, opts.LimiterStorage))
}
