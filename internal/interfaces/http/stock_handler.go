package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/application/estoque"
)

// StockHandler trata as requisições HTTP do catálogo de itens.
type StockHandler struct {
	uc *estoque.StockUseCase
}

// NewStockHandler constrói o handler.
func NewStockHandler(uc *estoque.StockUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// List godoc
// @Summary      Listar itens de estoque (visão filtrada)
// @Tags         items
// @Produce      json
// @Param        busca      query  string  false  "Busca livre por nome ou local"
// @Param        filtros    query  bool    false  "Aplicar filtro de dimensão"  default(true)
// @Param        tipo       query  string  false  "Dimensão ativa: local | categoria | data"
// @Param        local      query  string  false  "Local selecionado ou all"
// @Param        categoria  query  string  false  "Categoria selecionada ou all"
// @Param        mes        query  string  false  "Mês YYYY-MM ou all"
// @Success      200  {object}  dto.StockListResponse
// @Router       /api/items [get]
func (h *StockHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(parseFilter(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar item (renomear propaga ao histórico)
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        name  path  string  true  "Nome atual do item"
// @Param        body  body  dto.EditStockItemRequest  true  "Novos dados"
// @Success      200  {object}  dto.StockItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/items/{name} [put]
func (h *StockHandler) Update(c *fiber.Ctx) error {
	name := paramName(c, "name")
	var in dto.EditStockItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Edit(name, in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Excluir item sem registros no histórico
// @Tags         items
// @Param        name  path  string  true  "Nome do item"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/items/{name} [delete]
func (h *StockHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(paramName(c, "name")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
