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

	appestoque "github.com/jhoicas/estoque-api/internal/application/estoque"
	"github.com/jhoicas/estoque-api/internal/infrastructure/excel"
	"github.com/jhoicas/estoque-api/internal/infrastructure/mail"
	"github.com/jhoicas/estoque-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/estoque-api/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/estoque-api/internal/interfaces/http"
	"github.com/jhoicas/estoque-api/pkg/config"
	"github.com/jhoicas/estoque-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	store := memory.NewStore()
	if cfg.Seed {
		if err := memory.Seed(store); err != nil {
			log.Fatal().Err(err).Msg("carga dos dados de demonstração")
		}
		log.Info().Msg("dados de demonstração carregados")
	}

	stockUC := appestoque.NewStockUseCase(store)
	locationUC := appestoque.NewLocationUseCase(store)
	entradaUC := appestoque.NewEntradaUseCase(store)
	saidaUC := appestoque.NewSaidaUseCase(store)
	dashboardUC := appestoque.NewDashboardUseCase(store)

	mailer := mail.NewMailer(cfg.SMTP)
	exportUC := appestoque.NewExportUseCase(
		store, excel.NewWriter(), infrapdf.NewMarotoReportWriter(), mailer,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI em local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Estoque API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		StockUC:     stockUC,
		LocationUC:  locationUC,
		EntradaUC:   entradaUC,
		SaidaUC:     saidaUC,
		DashboardUC: dashboardUC,
		ExportUC:    exportUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
