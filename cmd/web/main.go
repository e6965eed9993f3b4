package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/storemax-web/internal/application/assistant"
	"github.com/jhoicas/storemax-web/internal/application/auth"
	"github.com/jhoicas/storemax-web/internal/application/catalog"
	"github.com/jhoicas/storemax-web/internal/application/dashboard"
	"github.com/jhoicas/storemax-web/internal/application/pos"
	"github.com/jhoicas/storemax-web/internal/application/report"
	"github.com/jhoicas/storemax-web/internal/application/staff"
	"github.com/jhoicas/storemax-web/internal/domain/repository"
	"github.com/jhoicas/storemax-web/internal/infrastructure/backend"
	"github.com/jhoicas/storemax-web/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/storemax-web/internal/infrastructure/pdf"
	"github.com/jhoicas/storemax-web/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/storemax-web/internal/infrastructure/redis"
	httpRouter "github.com/jhoicas/storemax-web/internal/interfaces/http"
	"github.com/jhoicas/storemax-web/pkg/config"
	"github.com/jhoicas/storemax-web/pkg/logger"
	"github.com/jhoicas/storemax-web/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("backend", cfg.Backend.BaseURL).
		Str("session_driver", cfg.Session.Driver).
		Msg("iniciando aplicación")

	if cfg.Session.Secret == "" {
		// Solo fuera de production (config lo exige allí). Las cookies no sobreviven un reinicio.
		cfg.Session.Secret = uuid.NewString()
		log.Warn().Msg("SESSION_SECRET vacío: se usa un secreto efímero")
	}

	ctx := context.Background()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	rec := metrics.New(registry)

	// Almacenes: sesión, diario de recibos y contadores de login.
	var (
		sessions repository.SessionRepository = memory.NewSessionStore()
		receipts repository.ReceiptRepository = memory.NewReceiptJournal()
		limiter  httpRouter.RateCounter       = memory.NewRateLimitStore()
	)
	switch cfg.Session.Driver {
	case config.SessionDriverRedis:
		rdb, err := infraredis.New(ctx, cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer rdb.Close()
		sessions = infraredis.NewSessionStore(rdb)
		limiter = infraredis.NewRateLimitStore(rdb)
	case config.SessionDriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("esquema de PostgreSQL")
		}
		sessions = postgres.NewSessionRepository(pool)
		receipts = postgres.NewReceiptRepository(pool)
	}
	if !cfg.RateLimit.Enabled {
		limiter = nil
	}

	client := backend.NewClient(cfg.Backend.BaseURL,
		backend.WithMetrics(rec),
		backend.WithAttachToken(cfg.Backend.AttachToken),
	)

	carts := pos.NewRegistry()
	authUC := auth.NewUseCase(client, sessions, cfg.Login.MinPasswordLength)
	dashboardUC := dashboard.NewUseCase(client, client, client)
	catalogUC := catalog.NewUseCase(client)
	posUC := pos.NewUseCase(client, client, receipts, carts, log.Component("pos"))
	staffUC := staff.NewUseCase(client)
	assistantUC := assistant.NewUseCase(client)
	reportUC := report.NewUseCase(dashboardUC, infrapdf.NewMarotoRenderer(cfg.App.Name))

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(log.RequestLogger())
	app.Use(rec.Middleware())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "StoreMax Web",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	httpRouter.Router(app, httpRouter.RouterDeps{
		Session: httpRouter.SessionConfig{
			Store:      sessions,
			CookieName: cfg.Session.CookieName,
			Secret:     cfg.Session.Secret,
			Issuer:     cfg.App.Name,
			Secure:     cfg.Session.CookieSecure,
			Log:        log.Component("session"),
		},
		AuthUC:       authUC,
		DashboardUC:  dashboardUC,
		CatalogUC:    catalogUC,
		POSUC:        posUC,
		StaffUC:      staffUC,
		AssistantUC:  assistantUC,
		ReportUC:     reportUC,
		LoginLimiter: limiter,
		LoginLimit:   cfg.RateLimit.Limit,
		LoginWindow:  cfg.RateLimit.Window,
		Metrics:      rec,
		Log:          log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
