package infra

import (
	"fmt"
	"net/smtp"

	"github.com/CarlosLeonGaleas/EventRegistration/internal/config"

	"github.com/jordan-wright/email"
)

// Mailer wraps SMTP configuration for sending tickets as attachments.
type Mailer struct {
	host     string
	port     int
	user     string
	password string
	addr     string
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		user:     cfg.SMTPUser,
		password: cfg.SMTPPassword,
		addr:     fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort),
	}
}

// SendTicket mails the participant their ticket image as an attachment.
func (m *Mailer) SendTicket(to, subject, body, ticketPath string) error {
	e := email.NewEmail()
	e.From = m.user
	e.To = []string{to}
	e.Subject = subject
	e.Text = []byte(body)

	if ticketPath != "" {
		if _, err := e.AttachFile(ticketPath); err != nil {
			return fmt.Errorf("mailer: attach ticket: %w", err)
		}
	}

	auth := smtp.PlainAuth("", m.user, m.password, m.host)
	return e.Send(m.addr, auth)
}
