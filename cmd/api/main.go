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
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/jhoicas/Directorio-api/internal/application/analytics"
	"github.com/jhoicas/Directorio-api/internal/application/roster"
	"github.com/jhoicas/Directorio-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/Directorio-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Directorio-api/internal/infrastructure/postgres"
	infraxlsx "github.com/jhoicas/Directorio-api/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/Directorio-api/internal/interfaces/http"
	"github.com/jhoicas/Directorio-api/pkg/config"
	"github.com/jhoicas/Directorio-api/pkg/logger"
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
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	sectorRepo := postgres.NewSectorRepository(pool)
	personRepo := postgres.NewPersonRepository(pool)
	registerRepo := postgres.NewRegisterRepository(pool)
	statsRepo := postgres.NewStatisticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Planillas xlsx (importación, reporte de errores y exportación) y listado PDF.
	codec := infraxlsx.NewCodec()
	pdfGenerator := infrapdf.NewMarotoRosterGenerator()

	companyUC := usecase.NewCompanyUseCase(companyRepo)
	sectorUC := usecase.NewSectorUseCase(sectorRepo)
	personUC := usecase.NewPersonUseCase(companyRepo, personRepo, cfg.Paging.DefaultSize, cfg.Paging.MaxSize)
	importUC := roster.NewImportUseCase(companyRepo, txRunner, codec, log.Component("roster"), cfg.Import.MaxRows)
	exportUC := roster.NewExportUseCase(companyRepo, personRepo, codec, pdfGenerator)
	statisticsUC := analytics.NewStatisticsUseCase(companyRepo, sectorRepo, statsRepo)
	registerUC := analytics.NewRegisterUseCase(companyRepo, sectorRepo, registerRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		// Margen sobre IMPORT_MAX_BYTES para las cabeceras multipart.
		BodyLimit: cfg.Import.MaxBytes + 64<<10,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Directorio API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Companies:      companyUC,
		Sectors:        sectorUC,
		Persons:        personUC,
		Importer:       importUC,
		Exporter:       exportUC,
		Statistics:     statisticsUC,
		Registers:      registerUC,
		ImportMaxBytes: int64(cfg.Import.MaxBytes),
		JWTSecret:      cfg.JWT.Secret,
		Log:            log.Component("http"),
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
