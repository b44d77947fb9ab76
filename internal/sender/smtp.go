package sender

import (
	"context"

	gopkgmail "gopkg.in/gomail.v2"
)

const defaultSubject = "A note from Aimee Wine Merchants"

// SMTPSender — реальная доставка через SMTP. Включается флагом конфигурации;
// по умолчанию сервис работает с SimulatedSender.
type SMTPSender struct {
	host     string
	port     int
	user     string
	password string
	from     string
}

func NewSMTPSender(host string, port int, user, password, from string) *SMTPSender {
	return &SMTPSender{
		host:     host,
		port:     port,
		user:     user,
		password: password,
		from:     from,
	}
}

func (s *SMTPSender) Send(ctx context.Context, to, body string) error {
	m := gopkgmail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", defaultSubject)
	m.SetBody("text/plain", body)

	d := gopkgmail.NewDialer(s.host, s.port, s.user, s.password)
	d.SSL = true
	return d.DialAndSend(m)
}
