package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/application/estoque"
	"github.com/jhoicas/estoque-api/internal/domain"
)

const (
	mimeExcel = "application/vnd.ms-excel"
	mimePDF   = "application/pdf"
)

// ExportHandler trata a geração dos relatórios (planilha, PDF, e-mail e
// compartilhamento). As respostas binárias saem com Content-Disposition
// para o navegador baixar com o nome certo.
type ExportHandler struct {
	uc *estoque.ExportUseCase
}

// NewExportHandler constrói o handler.
func NewExportHandler(uc *estoque.ExportUseCase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

func sendFile(c *fiber.Ctx, mime, filename string, payload []byte) error {
	c.Set(fiber.HeaderContentType, mime)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(payload)
}

// StockSpreadsheet godoc
// @Summary      Exportar estoque filtrado como planilha
// @Tags         exports
// @Produce      application/vnd.ms-excel
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/exports/stock.xls [get]
func (h *ExportHandler) StockSpreadsheet(c *fiber.Ctx) error {
	out, err := h.uc.StockSpreadsheet(parseFilter(c))
	if err != nil {
		return fail(c, err)
	}
	return sendFile(c, mimeExcel, "relatorio_estoque.xls", out)
}

// StockPDF godoc
// @Summary      Exportar estoque filtrado como PDF
// @Tags         exports
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/exports/stock.pdf [get]
func (h *ExportHandler) StockPDF(c *fiber.Ctx) error {
	out, share, err := h.uc.StockPDF(parseFilter(c))
	if err != nil {
		return fail(c, err)
	}
	return sendFile(c, mimePDF, share.Filename, out)
}

// StockShare godoc
// @Summary      Carga de compartilhamento do relatório em PDF
// @Description  Gera o PDF e devolve título, texto e nome de arquivo para a Web Share API do cliente.
// @Tags         exports
// @Produce      json
// @Success      200  {object}  dto.ShareResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/exports/stock/share [post]
func (h *ExportHandler) StockShare(c *fiber.Ctx) error {
	_, share, err := h.uc.StockPDF(parseFilter(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(share)
}

// StockEmail godoc
// @Summary      Enviar o relatório de estoque por e-mail
// @Description  Com SMTP configurado envia a mensagem; sem SMTP devolve assunto e corpo compostos para o cliente abrir o mailto.
// @Tags         exports
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EmailExportRequest  true  "Destinatário e anexo"
// @Success      200  {object}  dto.EmailExportResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/exports/stock/email [post]
func (h *ExportHandler) StockEmail(c *fiber.Ctx) error {
	var in dto.EmailExportRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.StockEmail(parseFilter(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// HistorySpreadsheet godoc
// @Summary      Exportar um histórico como planilha
// @Tags         exports
// @Produce      application/vnd.ms-excel
// @Param        kind  path  string  true  "entradas ou saidas"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/exports/{kind}.xls [get]
func (h *ExportHandler) HistorySpreadsheet(c *fiber.Ctx) error {
	kind, err := historyKind(c.Params("kind"))
	if err != nil {
		return fail(c, err)
	}
	out, filename, err := h.uc.HistorySpreadsheet(kind)
	if err != nil {
		return fail(c, err)
	}
	return sendFile(c, mimeExcel, filename, out)
}

// HistoryPDF godoc
// @Summary      Exportar um histórico como PDF
// @Tags         exports
// @Produce      application/pdf
// @Param        kind  path  string  true  "entradas ou saidas"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/exports/{kind}.pdf [get]
func (h *ExportHandler) HistoryPDF(c *fiber.Ctx) error {
	kind, err := historyKind(c.Params("kind"))
	if err != nil {
		return fail(c, err)
	}
	out, filename, err := h.uc.HistoryPDF(kind)
	if err != nil {
		return fail(c, err)
	}
	return sendFile(c, mimePDF, filename, out)
}

func historyKind(raw string) (estoque.HistoryKind, error) {
	switch estoque.HistoryKind(raw) {
	case estoque.HistoryEntradas:
		return estoque.HistoryEntradas, nil
	case estoque.HistorySaidas:
		return estoque.HistorySaidas, nil
	}
	return "", fmt.Errorf("histórico desconhecido %q: %w", raw, domain.ErrInvalidInput)
}
