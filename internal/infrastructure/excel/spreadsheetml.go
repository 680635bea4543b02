// Package excel gera planilhas no formato SpreadsheetML (Excel 2003 XML),
// legível pelo Excel, LibreOffice e Google Sheets sem dependência de zip.
package excel

import (
	"fmt"
	"strconv"

	"github.com/beevik/etree"

	appestoque "github.com/jhoicas/estoque-api/internal/application/estoque"
)

// Namespaces do SpreadsheetML 2003.
const (
	nsSpreadsheet = "urn:schemas-microsoft-com:office:spreadsheet"
	nsOffice      = "urn:schemas-microsoft-com:office:office"
	nsExcel       = "urn:schemas-microsoft-com:office:excel"
)

// Largura de coluna em pontos por caractere (aproximação do Excel para a
// fonte padrão).
const pointsPerChar = 5.5

// Ensure Writer implements estoque.SpreadsheetWriter.
var _ appestoque.SpreadsheetWriter = (*Writer)(nil)

// Writer constrói o documento Workbook com etree.
type Writer struct{}

// NewWriter constrói o escritor.
func NewWriter() *Writer { return &Writer{} }

// Write gera a planilha: uma aba com linha de cabeçalho em negrito, larguras
// de coluna em caracteres e as linhas de dados. Células numéricas são
// tipadas como Number para o Excel somar/ordenar corretamente.
func (w *Writer) Write(sheet string, headers []string, widths []int, rows [][]string) ([]byte, error) {
	if sheet == "" || len(headers) == 0 {
		return nil, fmt.Errorf("excel: aba e cabeçalhos são obrigatórios")
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	doc.CreateProcInst("mso-application", `progid="Excel.Sheet"`)

	wb := doc.CreateElement("Workbook")
	wb.CreateAttr("xmlns", nsSpreadsheet)
	wb.CreateAttr("xmlns:o", nsOffice)
	wb.CreateAttr("xmlns:x", nsExcel)
	wb.CreateAttr("xmlns:ss", nsSpreadsheet)

	styles := wb.CreateElement("Styles")
	header := styles.CreateElement("Style")
	header.CreateAttr("ss:ID", "header")
	font := header.CreateElement("Font")
	font.CreateAttr("ss:Bold", "1")

	ws := wb.CreateElement("Worksheet")
	ws.CreateAttr("ss:Name", sheet)
	table := ws.CreateElement("Table")

	for i := range headers {
		col := table.CreateElement("Column")
		width := 15
		if i < len(widths) && widths[i] > 0 {
			width = widths[i]
		}
		col.CreateAttr("ss:Width", strconv.FormatFloat(float64(width)*pointsPerChar, 'f', 1, 64))
	}

	headRow := table.CreateElement("Row")
	for _, h := range headers {
		cell := headRow.CreateElement("Cell")
		cell.CreateAttr("ss:StyleID", "header")
		data := cell.CreateElement("Data")
		data.CreateAttr("ss:Type", "String")
		data.SetText(h)
	}

	for _, r := range rows {
		row := table.CreateElement("Row")
		for _, v := range r {
			cell := row.CreateElement("Cell")
			data := cell.CreateElement("Data")
			if _, err := strconv.Atoi(v); err == nil && v != "" {
				data.CreateAttr("ss:Type", "Number")
			} else {
				data.CreateAttr("ss:Type", "String")
			}
			data.SetText(v)
		}
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("excel: serializar workbook: %w", err)
	}
	return out, nil
}
