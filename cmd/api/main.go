package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"scoutportal/internal/auth"
	"scoutportal/internal/config"
	"scoutportal/internal/database"
	"scoutportal/internal/database/migration"
	handlers "scoutportal/internal/http/handler"
	"scoutportal/internal/http/middleware"
	"scoutportal/internal/otel"
	"scoutportal/internal/repository/postgres"
	"scoutportal/internal/service"
	"scoutportal/internal/storage"
)

func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	loc := time.UTC
	ctx := context.Background()

	// Tracing first so DB and HTTP instrumentation can attach to it
	shutdownTracing, err := otel.Init(ctx, loc)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Printf("tracing shutdown: %v", err)
		}
	}()

	// PostgreSQL connection (pooled via database/sql, instrumented by otelsql)
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, loc, cfg.Database.Host); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	// Blob store backend: local filesystem by default, MinIO when configured
	var blobs storage.Storage
	switch cfg.Storage.Backend {
	case "minio":
		blobs, err = storage.NewMinIO(cfg.Storage.MinIO)
	default:
		blobs, err = storage.NewFS(cfg.Storage.FSBaseDir)
	}
	if err != nil {
		log.Fatalf("failed to initialize blob storage: %v", err)
	}

	tokens, err := auth.NewTokenManager(cfg.Auth)
	if err != nil {
		log.Fatalf("failed to initialize token manager: %v", err)
	}

	svcs := handlers.Services{
		Auth:      service.NewAuthService(postgres.NewUserPostgres(db), auth.NewPasswordHasher(), tokens),
		Documents: service.NewDocumentService(blobs, postgres.NewDocumentPostgres(db)),
		Camps:     service.NewCampService(postgres.NewCampPostgres(db)),
		News:      service.NewNewsService(postgres.NewNewsPostgres(db)),
		Magazine:  service.NewMagazineService(blobs, postgres.NewMagazinePostgres(db)),
	}

	app := fiber.New(fiber.Config{
		BodyLimit:    cfg.BodyLimitMiB * 1024 * 1024,
		ErrorHandler: handlers.ErrorHandler(),
	})

	// Register global middleware
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger())
	app.Use(otelfiber.Middleware())

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	promMw, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatalf("failed to initialize metrics: %v", err)
	}
	app.Use(promMw.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	handlers.RegisterRoutes(app, db, tokens, svcs)

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
