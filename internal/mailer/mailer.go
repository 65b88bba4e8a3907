// Package mailer delivers transactional mail. Only the password-reset
// message exists today.
package mailer

import (
	"fmt"
	"log"
	"net/smtp"

	"github.com/suhrawardy-med/lifeline/internal/config"
)

type Mailer struct {
	host string
	port string
	user string
	pass string
	from string
}

func New(cfg *config.Config) *Mailer {
	return &Mailer{
		host: cfg.SMTPHost,
		port: cfg.SMTPPort,
		user: cfg.SMTPUser,
		pass: cfg.SMTPPass,
		from: cfg.MailFrom,
	}
}

// SendPasswordReset mails the reset link. Without an SMTP host configured
// the message is logged instead, which keeps local development working.
func (m *Mailer) SendPasswordReset(to, resetURL string) error {
	subject := "Password Reset Request"
	body := fmt.Sprintf("Click the link to reset your password: %s", resetURL)

	if m.host == "" {
		log.Printf("SMTP not configured, reset mail for %s: %s", to, resetURL)
		return nil
	}

	msg := []byte(fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n", m.from, to, subject, body))

	var auth smtp.Auth

	if m.user != "" {
		auth = smtp.PlainAuth("", m.user, m.pass, m.host)
	}

	return smtp.SendMail(m.host+":"+m.port, auth, m.from, []string{to}, msg)
}
