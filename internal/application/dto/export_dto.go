package dto

// EmailExportRequest envio do relatório de estoque por e-mail.
type EmailExportRequest struct {
	To     []string `json:"to"`
	Attach bool     `json:"attach"` // anexa a planilha ao e-mail
}

// EmailExportResponse resultado do envio. Quando o SMTP não está
// configurado, Sent fica em false e o assunto/corpo compostos são devolvidos
// para a casca de apresentação abrir o cliente de e-mail do usuário.
type EmailExportResponse struct {
	Sent    bool   `json:"sent"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// ShareResponse carga do compartilhamento: o texto da mensagem acompanha o
// PDF gerado (entregue como corpo binário na mesma resposta multiparte ou em
// chamada separada, a critério da casca).
type ShareResponse struct {
	Title    string `json:"title"`
	Text     string `json:"text"`
	Filename string `json:"filename"`
}
