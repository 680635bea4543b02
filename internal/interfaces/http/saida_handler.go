package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/application/estoque"
)

// SaidaHandler trata as requisições HTTP dos registros de saída.
type SaidaHandler struct {
	uc *estoque.SaidaUseCase
}

// NewSaidaHandler constrói o handler.
func NewSaidaHandler(uc *estoque.SaidaUseCase) *SaidaHandler {
	return &SaidaHandler{uc: uc}
}

// List godoc
// @Summary      Listar histórico de saídas
// @Tags         saidas
// @Produce      json
// @Success      200  {object}  dto.SaidaListResponse
// @Router       /api/saidas [get]
func (h *SaidaHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar saída de estoque
// @Description  Subtrai a quantidade do item; recusa quando o saldo ficaria negativo.
// @Tags         saidas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaidaRequest  true  "Dados da saída"
// @Success      201  {object}  dto.SaidaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/saidas [post]
func (h *SaidaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaidaRequest
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
// @Summary      Corrigir registro de saída
// @Tags         saidas
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do registro"
// @Param        body  body  dto.UpdateSaidaRequest  true  "Dados corrigidos"
// @Success      200  {object}  dto.SaidaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/saidas/{id} [put]
func (h *SaidaHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSaidaRequest
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
// @Summary      Excluir registro de saída
// @Description  Devolve ao item a quantidade registrada na saída.
// @Tags         saidas
// @Param        id  path  string  true  "ID do registro"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/saidas/{id} [delete]
func (h *SaidaHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
