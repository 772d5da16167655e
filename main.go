package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"

	"academia_backend/internals/configs"
	database "academia_backend/internals/databases"
	middlewares "academia_backend/internals/middlewares"
	routes "academia_backend/internals/route"
	"academia_backend/internals/seeds"
)

func main() {
	os.Exit(run())
}

// run owns every deferred close so that a failing server still releases the
// DB pool and the Redis client before the process exits.
func run() int {
	cfg := configs.LoadEnv()
	logger := configs.SetupLogger(cfg)

	// 🔌 DB connect + pool + migrate
	db, err := database.ConnectDB(cfg, configs.NewGormLogger(logger, configs.GormLevelFor(configs.ParseLevel(cfg.LogLevel))))
	if err != nil {
		logger.Error("database connection failed", "error", err)
		return 1
	}
	defer database.Close(db)

	// go run . seed
	if len(os.Args) > 1 && os.Args[1] == "seed" {
		if err := seeds.RunAllSeeds(context.Background(), db); err != nil {
			logger.Error("seed failed", "error", err)
			return 1
		}
		return 0
	}

	// 🚦 limiter counters shared through Redis when configured
	var limiterStorage fiber.Storage
	if cfg.RedisURL != "" {
		store, err := middlewares.NewRedisStorageFromURL(context.Background(), cfg.RedisURL)
		if err != nil {
			logger.Warn("redis unavailable, rate limiter stays in memory", "error", err)
		} else {
			limiterStorage = store
			defer store.Close()
		}
	}

	app := routes.NewApp(cfg, routes.Deps{
		DB:             db,
		Logger:         logger,
		LimiterStorage: limiterStorage,
	})

	// graceful shutdown, deferred closes run after run() returns
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("listening", "port", cfg.Port, "env", cfg.AppEnv, "driver", cfg.DBDriver)
	if err := serve(app, "0.0.0.0:"+cfg.Port, quit); err != nil {
		logger.Error("server error", "error", err)
		return 1
	}
	logger.Info("server stopped")
	return 0
}

// serve blocks until the listener fails or a signal arrives on quit. A listen
// error is returned to the caller instead of exiting from the goroutine.
func serve(app *fiber.App, addr string, quit <-chan os.Signal) error {
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- app.Listen(addr)
	}()

	select {
	case err := <-serverErr:
		return err
	case <-quit:
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(ctx); err != nil {
			slog.Warn("shutdown", "error", err)
		}
		return nil
	}
}
