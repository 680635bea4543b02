package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/application/estoque"
)

// EntradaHandler trata as requisições HTTP dos registros de entrada.
type EntradaHandler struct {
	uc *estoque.EntradaUseCase
}

// NewEntradaHandler constrói o handler.
func NewEntradaHandler(uc *estoque.EntradaUseCase) *EntradaHandler {
	return &EntradaHandler{uc: uc}
}

// List godoc
// @Summary      Listar histórico de entradas
// @Tags         entradas
// @Produce      json
// @Success      200  {object}  dto.EntradaListResponse
// @Router       /api/entradas [get]
func (h *EntradaHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar entrada de estoque
// @Description  Soma a quantidade ao item existente ou cria um novo item no local informado.
// @Tags         entradas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEntradaRequest  true  "Dados da entrada"
// @Success      201  {object}  dto.EntradaResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/entradas [post]
func (h *EntradaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEntradaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Post(in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Corrigir registro de entrada
// @Description  Ajusta o estoque pela diferença entre a quantidade nova e a antiga.
// @Tags         entradas
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do registro"
// @Param        body  body  dto.UpdateEntradaRequest  true  "Dados corrigidos"
// @Success      200  {object}  dto.EntradaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/entradas/{id} [put]
func (h *EntradaHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateEntradaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Edit(c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Excluir registro de entrada
// @Description  Desfaz o efeito do registro subtraindo a quantidade do item.
// @Tags         entradas
// @Param        id  path  string  true  "ID do registro"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/entradas/{id} [delete]
func (h *EntradaHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
