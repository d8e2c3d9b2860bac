package mail

import (
	"bytes"
	"fmt"
	"html/template"

	"gopkg.in/gomail.v2"

	"github.com/xavierca1/mini-crm/internal/entity"
)

const leadWonTemplate = `
<h2>Negócio fechado! 🎉</h2>
<p><strong>{{.LegalName}}</strong>{{if .TradeName}} ({{.TradeName}}){{end}} acabou de entrar na fase <strong>Ganho</strong>.</p>
<ul>
	<li>Score: {{.Score}}</li>
	<li>Cidade: {{.City}}/{{.State}}</li>
	{{if .Notes}}<li>Notas: {{.Notes}}</li>{{end}}
</ul>
`

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	To       string
}

func NewEmailSender(host string, port int, user, password, from, to string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
		To:       to,
	}
}

// SendLeadWon avisa o time comercial que um lead virou negócio ganho.
func (s *EmailSender) SendLeadWon(lead *entity.Lead) error {
	t, err := template.New("lead-won").Parse(leadWonTemplate)
	if err != nil {
		return fmt.Errorf("erro ao preparar template de email: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, lead); err != nil {
		return fmt.Errorf("erro ao processar template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", s.To)
	m.SetHeader("Subject", fmt.Sprintf("Negócio ganho: %s", lead.LegalName))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("erro ao enviar email SMTP: %w", err)
	}
	return nil
}
