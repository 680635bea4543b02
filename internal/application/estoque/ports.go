package estoque

import (
	"github.com/jhoicas/estoque-api/internal/domain/estoque"
)

// TxRunner executa uma função com acesso exclusivo aos agregados Catalog e
// Ledger. Run serializa escritas; View permite leituras concorrentes.
// Garante a atomicidade observável das operações: cada caso de uso valida
// antes de mutar dentro do mesmo Run.
type TxRunner interface {
	Run(fn func(cat *estoque.Catalog, led *estoque.Ledger) error) error
	View(fn func(cat *estoque.Catalog, led *estoque.Ledger) error) error
}

// SpreadsheetWriter gera uma planilha a partir de um snapshot tabular.
// widths são larguras de coluna em caracteres, alinhadas com headers.
type SpreadsheetWriter interface {
	Write(sheet string, headers []string, widths []int, rows [][]string) ([]byte, error)
}

// ReportWriter gera um relatório PDF tabular com título.
type ReportWriter interface {
	Write(title string, headers []string, rows [][]string) ([]byte, error)
}

// MailSender envia o relatório por e-mail. attachment pode ser nil.
// Implementações devolvem erro se o transporte não estiver configurado; o
// caso de uso então devolve a mensagem composta em vez de enviá-la.
type MailSender interface {
	Configured() bool
	Send(to []string, subject, body, attachmentName string, attachment []byte) error
}
