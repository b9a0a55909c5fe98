package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"gyccsite/docs"
	"gyccsite/internal/auth"
	"gyccsite/internal/config"
	"gyccsite/internal/database"
	"gyccsite/internal/database/migration"
	handlers "gyccsite/internal/http/handler"
	"gyccsite/internal/http/middleware"
	"gyccsite/internal/logger"
	"gyccsite/internal/otel"
	"gyccsite/internal/repository/postgres"
	"gyccsite/internal/service"
	"gyccsite/internal/storage"
)

const (
	newsletterTable     = "newsletter_signup"
	newsletterTestTable = "newsletter_signup_test"
)

// @title GYCC Site API
// @version 1.0
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	log := logger.New(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize tracing")
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(sctx)
	}()

	// Initialize PostgreSQL connection (with pooling via database/sql)
	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, log, cfg.Database.Host); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	objStore, err := storage.New(ctx, cfg.Storage)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize object storage")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics, err := service.NewMetrics(reg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to register gallery metrics")
	}
	httpMetrics, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to register http metrics")
	}

	verifier, err := auth.NewOIDCVerifier(ctx, cfg.Auth)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize identity verifier")
	}

	subscriberTable := newsletterTable
	if cfg.IsDevelopment() {
		subscriberTable = newsletterTestTable
	}

	// One presigner serves the gallery, the Our Voice feed and editor uploads.
	presigner := service.NewPresigner(objStore, cfg.Gallery, metrics)
	deps := handlers.Deps{
		DB:              db,
		Gallery:         service.NewGalleryService(objStore, presigner, cfg.Gallery, metrics),
		Voice:           service.NewVoiceService(postgres.NewVoicePostPostgres(db), presigner),
		Blog:            service.NewBlogService(postgres.NewBlogPostgres(db)),
		Subscribers:     service.NewSubscriberService(postgres.NewSubscriberPostgres(db, subscriberTable)),
		Uploads:         service.NewUploadService(objStore, presigner, cfg.Upload),
		Gate:            auth.NewGate(verifier, cfg.Auth.AllowedDomain),
		StorageEndpoint: cfg.Storage.URL(),
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
		BodyLimit:    int(cfg.Upload.MaxBytes) + 1<<20,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(cfg.AllowedOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(otelfiber.Middleware())
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(log))
	app.Use(httpMetrics.Handler())

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})))

	handlers.RegisterRoutes(app, deps)

	mountSwagger(app, cfg)

	go func() {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(sctx); err != nil {
			log.Error().Err(err).Msg("graceful shutdown failed")
		}
	}()

	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Str("env", cfg.Environment).Msg("server starting")
	if err := app.Listen(addr); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}

// mountSwagger serves the API docs. The host and schemes are fixed before the
// first request; the handler only reads them.
func mountSwagger(app *fiber.App, cfg *config.AppConfig) {
	docs.SwaggerInfo.Host = cfg.AppHost
	docs.SwaggerInfo.Schemes = cfg.AppSchemes
	app.Get("/swagger/*", swagger.HandlerDefault)
}
