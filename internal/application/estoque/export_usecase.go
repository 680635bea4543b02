package estoque

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/estoque"
)

// Colunas do relatório de estoque e dos históricos. Os colaboradores de
// exportação são consumidores puros: recebem snapshots tabulares já com os
// cabeçalhos nomeados e não carregam lógica de seleção de campos.
var (
	stockHeaders = []string{"Nome", "Quantidade", "Local", "Categoria", "Última Atualização"}
	stockWidths  = []int{30, 12, 20, 20, 20}

	entradaHeaders = []string{"Produto", "Quantidade", "Data"}
	saidaHeaders   = []string{"Produto", "Quantidade", "Data", "Observação"}
)

// HistoryKind seleciona qual histórico exportar.
type HistoryKind string

const (
	HistoryEntradas HistoryKind = "entradas"
	HistorySaidas   HistoryKind = "saidas"
)

// ExportUseCase monta os snapshots filtrados e os entrega aos colaboradores
// de exportação (planilha, PDF, e-mail, compartilhamento).
type ExportUseCase struct {
	tx      TxRunner
	sheets  SpreadsheetWriter
	reports ReportWriter
	mail    MailSender
}

// NewExportUseCase constrói o caso de uso.
func NewExportUseCase(tx TxRunner, sheets SpreadsheetWriter, reports ReportWriter, mail MailSender) *ExportUseCase {
	return &ExportUseCase{tx: tx, sheets: sheets, reports: reports, mail: mail}
}

// StockSpreadsheet exporta a visão filtrada do estoque como planilha.
func (uc *ExportUseCase) StockSpreadsheet(f dto.StockFilterRequest) ([]byte, error) {
	rows, err := uc.stockRows(f)
	if err != nil {
		return nil, err
	}
	return uc.sheets.Write("Estoque", stockHeaders, stockWidths, rows)
}

// StockPDF exporta a visão filtrada como PDF e devolve a carga de
// compartilhamento que o acompanha. O compartilhamento em si é
// fire-and-forget do lado da casca; aqui só se produz o documento.
func (uc *ExportUseCase) StockPDF(f dto.StockFilterRequest) ([]byte, *dto.ShareResponse, error) {
	var rows [][]string
	err := uc.tx.View(func(cat *estoque.Catalog, _ *estoque.Ledger) error {
		items := estoque.FilterItems(cat.Items(), toFilter(f))
		if len(items) == 0 {
			return fmt.Errorf("não há itens para exportar: %w", domain.ErrInvalidInput)
		}
		rows = make([][]string, 0, len(items))
		for _, it := range items {
			rows = append(rows, []string{it.Name, strconv.Itoa(it.Quantity), it.Location, it.Category})
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	pdf, err := uc.reports.Write("Relatório de Estoque", []string{"Nome", "Qtd", "Local", "Categoria"}, rows)
	if err != nil {
		return nil, nil, err
	}
	share := &dto.ShareResponse{
		Title:    "Relatório de Estoque",
		Text:     "Segue o relatório de estoque atual.",
		Filename: "relatorio_estoque.pdf",
	}
	return pdf, share, nil
}

// StockEmail compõe o e-mail do relatório (assunto + corpo em texto puro) e
// o envia quando há transporte SMTP configurado; sem transporte, devolve a
// mensagem composta para a casca abrir o cliente de e-mail do usuário.
func (uc *ExportUseCase) StockEmail(f dto.StockFilterRequest, in dto.EmailExportRequest) (*dto.EmailExportResponse, error) {
	var items []*entity.StockItem
	err := uc.tx.View(func(cat *estoque.Catalog, _ *estoque.Ledger) error {
		items = estoque.FilterItems(cat.Items(), toFilter(f))
		if len(items) == 0 {
			return fmt.Errorf("não há itens para enviar por e-mail: %w", domain.ErrInvalidInput)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	subject := "Relatório de Estoque"
	var b strings.Builder
	b.WriteString("Segue o relatório de estoque atual:\n\n")
	b.WriteString("Nome do Item | Quantidade | Local\n")
	b.WriteString("-----------------------------------\n")
	for _, it := range items {
		fmt.Fprintf(&b, "%s | %d | %s\n", it.Name, it.Quantity, it.Location)
	}
	body := b.String()

	if !uc.mail.Configured() || len(in.To) == 0 {
		return &dto.EmailExportResponse{Sent: false, Subject: subject, Body: body}, nil
	}

	var attachment []byte
	attachmentName := ""
	if in.Attach {
		if attachment, err = uc.StockSpreadsheet(f); err != nil {
			return nil, err
		}
		attachmentName = "relatorio_estoque.xls"
	}
	if err := uc.mail.Send(in.To, subject, body, attachmentName, attachment); err != nil {
		return nil, err
	}
	return &dto.EmailExportResponse{Sent: true, Subject: subject, Body: body}, nil
}

// HistorySpreadsheet exporta um histórico (mais recente primeiro) como
// planilha; devolve também o nome de arquivo sugerido.
func (uc *ExportUseCase) HistorySpreadsheet(kind HistoryKind) ([]byte, string, error) {
	headers, rows, err := uc.historyRows(kind)
	if err != nil {
		return nil, "", err
	}
	widths := historyWidths(headers)
	out, err := uc.sheets.Write("Histórico", headers, widths, rows)
	if err != nil {
		return nil, "", err
	}
	return out, fmt.Sprintf("historico_%s.xls", kind), nil
}

// HistoryPDF exporta um histórico (mais recente primeiro) como PDF.
func (uc *ExportUseCase) HistoryPDF(kind HistoryKind) ([]byte, string, error) {
	headers, rows, err := uc.historyRows(kind)
	if err != nil {
		return nil, "", err
	}
	title := "Histórico de Entradas"
	if kind == HistorySaidas {
		title = "Histórico de Saídas"
	}
	out, err := uc.reports.Write(title, headers, rows)
	if err != nil {
		return nil, "", err
	}
	return out, fmt.Sprintf("historico_%s.pdf", kind), nil
}

func (uc *ExportUseCase) stockRows(f dto.StockFilterRequest) ([][]string, error) {
	var rows [][]string
	err := uc.tx.View(func(cat *estoque.Catalog, _ *estoque.Ledger) error {
		items := estoque.FilterItems(cat.Items(), toFilter(f))
		if len(items) == 0 {
			return fmt.Errorf("não há itens para exportar: %w", domain.ErrInvalidInput)
		}
		rows = make([][]string, 0, len(items))
		for _, it := range items {
			rows = append(rows, []string{
				it.Name, strconv.Itoa(it.Quantity), it.Location, it.Category, it.LastUpdated,
			})
		}
		return nil
	})
	return rows, err
}

func (uc *ExportUseCase) historyRows(kind HistoryKind) ([]string, [][]string, error) {
	var headers []string
	var rows [][]string
	err := uc.tx.View(func(_ *estoque.Catalog, led *estoque.Ledger) error {
		switch kind {
		case HistoryEntradas:
			entradas := led.Entradas()
			if len(entradas) == 0 {
				return fmt.Errorf("não há registros no histórico para exportar: %w", domain.ErrInvalidInput)
			}
			headers = entradaHeaders
			rows = make([][]string, 0, len(entradas))
			for i := len(entradas) - 1; i >= 0; i-- {
				e := entradas[i]
				rows = append(rows, []string{e.ItemName, strconv.Itoa(e.Quantity), e.Date})
			}
		case HistorySaidas:
			saidas := led.Saidas()
			if len(saidas) == 0 {
				return fmt.Errorf("não há registros no histórico para exportar: %w", domain.ErrInvalidInput)
			}
			headers = saidaHeaders
			rows = make([][]string, 0, len(saidas))
			for i := len(saidas) - 1; i >= 0; i-- {
				s := saidas[i]
				rows = append(rows, []string{s.ItemName, strconv.Itoa(s.Quantity), s.Date, s.Observation})
			}
		default:
			return domain.ErrInvalidInput
		}
		return nil
	})
	return headers, rows, err
}

// historyWidths replica as larguras do painel: colunas de produto largas,
// observação mais larga ainda, o resto compacto.
func historyWidths(headers []string) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		low := strings.ToLower(h)
		switch {
		case strings.Contains(low, "produto"):
			widths[i] = 30
		case strings.Contains(low, "observação"):
			widths[i] = 40
		default:
			widths[i] = 15
		}
	}
	return widths
}
