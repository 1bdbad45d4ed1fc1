package mail

import (
	"bytes"
	"fmt"
	"text/template"

	"gopkg.in/gomail.v2"

	"github.com/xavierca1/telecrm/internal/infra/queue"
)

const followUpTemplate = `
<p>Hi {{.TelecallerName}},</p>
<p><strong>{{.LeadName}}</strong> ({{.Phone}}) asked for a callback on {{.RequestedAt}}.</p>
<p>Remember to reach out again.</p>
`

func NewEmailSender(host string, port int, user, password, from string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}
}

func (s *EmailSender) SendFollowUpReminder(payload queue.FollowUpPayload) error {
	data := FollowUpEmailData{
		TelecallerName: payload.TelecallerName,
		LeadName:       payload.LeadName,
		Phone:          payload.Phone,
		RequestedAt:    payload.RequestedAt.Format("2006-01-02 15:04"),
	}

	t, err := template.New("followup").Parse(followUpTemplate)
	if err != nil {
		return fmt.Errorf("failed parsing reminder template: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		return fmt.Errorf("failed rendering reminder template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", payload.TelecallerEmail)
	m.SetHeader("Subject", fmt.Sprintf("Callback reminder: %s", payload.LeadName))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed sending reminder email: %w", err)
	}

	return nil
}
