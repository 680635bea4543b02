// Package pdf gera os relatórios tabulares em PDF (relatório de estoque e
// históricos de entradas/saídas) usando Maroto v2.
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appestoque "github.com/jhoicas/estoque-api/internal/application/estoque"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Ensure MarotoReportWriter implements estoque.ReportWriter.
var _ appestoque.ReportWriter = (*MarotoReportWriter)(nil)

// MarotoReportWriter escreve relatórios A4 com título e tabela.
type MarotoReportWriter struct{}

// NewMarotoReportWriter constrói o escritor.
func NewMarotoReportWriter() *MarotoReportWriter { return &MarotoReportWriter{} }

// Write gera o PDF e devolve seus bytes.
func (w *MarotoReportWriter) Write(title string, headers []string, rows [][]string) ([]byte, error) {
	if len(headers) == 0 {
		return nil, fmt.Errorf("pdf: cabeçalhos são obrigatórios")
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(row.New(10).Add(
		text.NewCol(12, title, props.Text{
			Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
		}),
	))
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(headerRow(headers))
	for _, r := range rows {
		m.AddRows(dataRow(headers, r))
	}

	m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.3}))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: cabeçalhos em negrito. A primeira coluna recebe a sobra da
// divisão do grid de 12 para acomodar nomes de item mais longos.
func headerRow(headers []string) core.Row {
	r := row.New(7)
	for i, h := range headers {
		r.Add(text.NewCol(colSize(len(headers), i), h, props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 1,
		}))
	}
	return r
}

func dataRow(headers []string, values []string) core.Row {
	r := row.New(6)
	for i := range headers {
		v := ""
		if i < len(values) {
			v = values[i]
		}
		r.Add(text.NewCol(colSize(len(headers), i), v, props.Text{Size: 8, Top: 1}))
	}
	return r
}

func colSize(cols, idx int) int {
	base := 12 / cols
	if idx == 0 {
		return base + 12%cols
	}
	return base
}
