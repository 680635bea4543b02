package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/estoque-api/internal/application/estoque"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	StockUC     *estoque.StockUseCase
	LocationUC  *estoque.LocationUseCase
	EntradaUC   *estoque.EntradaUseCase
	SaidaUC     *estoque.SaidaUseCase
	DashboardUC *estoque.DashboardUseCase
	ExportUC    *estoque.ExportUseCase
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Estoque consolidado
	items := api.Group("/items")
	stockHandler := NewStockHandler(deps.StockUC)
	items.Get("/", stockHandler.List)
	items.Put("/:name", stockHandler.Update)
	items.Delete("/:name", stockHandler.Delete)

	// Locais de armazenamento
	locations := api.Group("/locations")
	locationHandler := NewLocationHandler(deps.LocationUC)
	locations.Get("/", locationHandler.List)
	locations.Post("/", locationHandler.Create)
	locations.Put("/:name", locationHandler.Rename)
	locations.Delete("/:name", locationHandler.Delete)

	// Histórico de entradas
	entradas := api.Group("/entradas")
	entradaHandler := NewEntradaHandler(deps.EntradaUC)
	entradas.Get("/", entradaHandler.List)
	entradas.Post("/", entradaHandler.Create)
	entradas.Put("/:id", entradaHandler.Update)
	entradas.Delete("/:id", entradaHandler.Delete)

	// Histórico de saídas
	saidas := api.Group("/saidas")
	saidaHandler := NewSaidaHandler(deps.SaidaUC)
	saidas.Get("/", saidaHandler.List)
	saidas.Post("/", saidaHandler.Create)
	saidas.Put("/:id", saidaHandler.Update)
	saidas.Delete("/:id", saidaHandler.Delete)

	// Painel
	dashboard := api.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.Summary)
	dashboard.Get("/filters", dashboardHandler.FilterOptions)

	// Relatórios
	exports := api.Group("/exports")
	exportHandler := NewExportHandler(deps.ExportUC)
	exports.Get("/stock.xls", exportHandler.StockSpreadsheet)
	exports.Get("/stock.pdf", exportHandler.StockPDF)
	exports.Post("/stock/share", exportHandler.StockShare)
	exports.Post("/stock/email", exportHandler.StockEmail)
	exports.Get("/:kind.xls", exportHandler.HistorySpreadsheet)
	exports.Get("/:kind.pdf", exportHandler.HistoryPDF)
}
