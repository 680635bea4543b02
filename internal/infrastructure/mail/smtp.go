// Package mail envia o relatório de estoque por SMTP.
package mail

import (
	"fmt"
	"io"

	gomail "gopkg.in/gomail.v2"

	appestoque "github.com/jhoicas/estoque-api/internal/application/estoque"
	"github.com/jhoicas/estoque-api/pkg/config"
)

// Ensure Mailer implements estoque.MailSender.
var _ appestoque.MailSender = (*Mailer)(nil)

// Mailer envolve a configuração SMTP. Sem host configurado o envio é
// desabilitado e o caso de uso devolve a mensagem composta ao chamador.
type Mailer struct {
	host     string
	port     int
	user     string
	password string
	from     string
}

// NewMailer constrói o mailer a partir da configuração.
func NewMailer(cfg config.SMTPConfig) *Mailer {
	return &Mailer{
		host:     cfg.Host,
		port:     cfg.Port,
		user:     cfg.User,
		password: cfg.Password,
		from:     cfg.From,
	}
}

// Configured informa se há transporte SMTP disponível.
func (m *Mailer) Configured() bool { return m.host != "" && m.from != "" }

// Send envia a mensagem em texto puro, com anexo opcional.
func (m *Mailer) Send(to []string, subject, body, attachmentName string, attachment []byte) error {
	if !m.Configured() {
		return fmt.Errorf("mail: transporte SMTP não configurado")
	}
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	if attachmentName != "" && attachment != nil {
		msg.Attach(attachmentName, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(attachment)
			return err
		}))
	}

	d := gomail.NewDialer(m.host, m.port, m.user, m.password)
	if err := d.DialAndSend(msg); err != nil {
		return fmt.Errorf("mail: enviar relatório: %w", err)
	}
	return nil
}
