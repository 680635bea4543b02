package http

import (
	"errors"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/domain"
)

// fail traduz um erro de domínio no status HTTP e no corpo de erro padrão.
// Centralizado para que todos os handlers mapeiem a taxonomia igualmente.
func fail(c *fiber.Ctx, err error) error {
	status, code := fiber.StatusInternalServerError, "INTERNAL"
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		status, code = fiber.StatusBadRequest, "VALIDATION"
	case errors.Is(err, domain.ErrNotFound):
		status, code = fiber.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrConflict):
		status, code = fiber.StatusConflict, "CONFLICT"
	case errors.Is(err, domain.ErrInsufficientStock):
		status, code = fiber.StatusUnprocessableEntity, "INSUFFICIENT_STOCK"
	case errors.Is(err, domain.ErrInvariant):
		status, code = fiber.StatusInternalServerError, "INVARIANT"
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: err.Error()})
}

// paramName devolve um parâmetro de rota percent-decodificado. Nomes de
// itens e locais carregam espaços e acentos, que o router não decodifica.
func paramName(c *fiber.Ctx, key string) string {
	raw := c.Params(key)
	if dec, err := url.PathUnescape(raw); err == nil {
		return dec
	}
	return raw
}

// parseFilter lê os parâmetros de filtragem da query string. O toggle de
// filtros nasce ligado, como no painel; as seleções ausentes valem "all".
func parseFilter(c *fiber.Ctx) dto.StockFilterRequest {
	return dto.StockFilterRequest{
		Search:   c.Query("busca"),
		Enabled:  c.QueryBool("filtros", true),
		Type:     c.Query("tipo", "local"),
		Location: c.Query("local", "all"),
		Category: c.Query("categoria", "all"),
		Month:    c.Query("mes", "all"),
	}
}
