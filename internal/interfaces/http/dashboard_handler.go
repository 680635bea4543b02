package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/estoque-api/internal/application/estoque"
)

// DashboardHandler expõe os agregados do painel.
type DashboardHandler struct {
	uc *estoque.DashboardUseCase
}

// NewDashboardHandler constrói o handler.
func NewDashboardHandler(uc *estoque.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumo do período filtrado
// @Description  Totais e contagens de entradas e saídas restritos aos itens visíveis sob o filtro atual.
// @Tags         dashboard
// @Produce      json
// @Param        busca      query  string  false  "Busca por nome ou local"
// @Param        filtros    query  bool    false  "Filtros por dimensão habilitados"
// @Param        tipo       query  string  false  "Dimensão ativa (local, categoria ou data)"
// @Param        local      query  string  false  "Local selecionado ou all"
// @Param        categoria  query  string  false  "Categoria selecionada ou all"
// @Param        mes        query  string  false  "Mês selecionado (AAAA-MM) ou all"
// @Success      200  {object}  dto.DashboardSummaryResponse
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(parseFilter(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// FilterOptions godoc
// @Summary      Opções distintas para os seletores de filtro
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.FilterOptionsResponse
// @Router       /api/dashboard/filters [get]
func (h *DashboardHandler) FilterOptions(c *fiber.Ctx) error {
	out, err := h.uc.FilterOptions()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
