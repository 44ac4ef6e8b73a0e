package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/gofiber/fiber/v2"

	"recipe-service/internal/config"
	"recipe-service/internal/handlers"
	"recipe-service/internal/repository"
	service "recipe-service/internal/services"
	"recipe-service/internal/storage"
	"recipe-service/internal/utils"
	"recipe-service/internal/web"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		panic(err)
	}
	dev := cfg.App.Env == "development"

	// logger
	logger, _ := utils.NewLogger(dev)
	defer func() { _ = logger.Sync() }()

	// Mongo handle: owned here, connects lazily on first use
	db := repository.NewMongo(cfg.Mongo.URI, cfg.Mongo.Database, cfg.Mongo.Collection)
	repo := repository.NewRecipeRepo(db)

	// S3 presigner
	store, err := storage.NewS3Store(context.Background(), cfg.AWS.Region, cfg.AWS.Bucket, cfg.AWS.Endpoint)
	if err != nil {
		logger.Fatalf("s3 init: %v", err)
	}

	// services
	rsvc := service.NewRecipeService(repo)
	usvc := service.NewUploadService(store, cfg.S3.KeyPrefix, cfg.PresignExpiry)

	// fiber app & routes
	app := fiber.New(fiber.Config{
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	})
	rh := handlers.NewRecipeHandler(rsvc, logger)
	uh := handlers.NewUploadHandler(usvc, logger)

	api := app.Group("/api")
	api.Post("/s3/upload", uh.CreateUploadURL)
	api.Post("/recipes", rh.Create)
	api.Get("/recipes", rh.List)
	api.Get("/recipes/:id", rh.Get)

	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendString("ok") })

	pages, err := web.NewPages(rsvc, logger, cfg.S3.PublicBaseURL)
	if err != nil {
		logger.Fatalf("templates: %v", err)
	}
	app.Get("/", pages.Root)
	app.Get("/:locale", pages.Home)
	app.Get("/:locale/add-recipe", pages.AddRecipe)
	app.Get("/:locale/recipes/:id", pages.Recipe)

	// start server
	go func() {
		addr := fmt.Sprintf(":%d", cfg.App.Port)
		logger.Infof("starting recipe service on %s", addr)
		if err := app.Listen(addr); err != nil {
			logger.Fatalf("listen failed: %v", err)
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	logger.Info("shutdown requested")
	timeoutCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	_ = app.Shutdown()
	_ = db.Disconnect(timeoutCtx)
	logger.Info("shutdown completed")
}
