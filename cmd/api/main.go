package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/kelechidev/invoicer-api/internal/application/analytics"
	"github.com/kelechidev/invoicer-api/internal/application/billing"
	"github.com/kelechidev/invoicer-api/internal/application/usecase"
	"github.com/kelechidev/invoicer-api/internal/domain/entity"
	infraai "github.com/kelechidev/invoicer-api/internal/infrastructure/ai"
	infrapdf "github.com/kelechidev/invoicer-api/internal/infrastructure/pdf"
	"github.com/kelechidev/invoicer-api/internal/infrastructure/redisstore"
	httpRouter "github.com/kelechidev/invoicer-api/internal/interfaces/http"
	"github.com/kelechidev/invoicer-api/pkg/config"
	"github.com/kelechidev/invoicer-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	rdb, err := redisstore.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a Redis")
	}
	defer rdb.Close()

	// El store mantiene la colección en memoria y persiste en Redis tras
	// cada mutación. Un snapshot corrupto no impide arrancar.
	invoiceRepo := redisstore.New(rdb, log, cfg.Redis.Key)
	if err := invoiceRepo.Load(ctx); err != nil {
		log.Fatal().Err(err).Msg("cargar facturas desde Redis")
	}

	profile := entity.UserProfile{
		Name:         cfg.Profile.Name,
		Title:        cfg.Profile.Title,
		Email:        cfg.Profile.Email,
		BusinessName: cfg.Profile.BusinessName,
		Logo:         cfg.Profile.LogoURL,
		Website:      cfg.Profile.Website,
	}
	invoiceUC := billing.NewInvoiceUseCase(invoiceRepo, profile)

	geminiSvc := infraai.NewGeminiService(cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel)
	aiUC := usecase.NewAIUseCase(geminiSvc, log)
	dashboardUC := appanalytics.NewDashboardUseCase(invoiceRepo, aiUC)

	pdfGenerator := infrapdf.NewMarotoInvoiceGenerator()
	invoicePDFUC := billing.NewPDFUseCase(invoiceRepo, profile, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    cfg.App.Name,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		InvoiceUC:   invoiceUC,
		PDFUC:       invoicePDFUC,
		AIUC:        aiUC,
		DashboardUC: dashboardUC,
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
