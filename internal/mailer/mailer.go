package mailer

import (
	logrus "github.com/sirupsen/logrus"
	gomail "gopkg.in/gomail.v2"
)

// Mailer sends portal email. Delivery is fire-and-forget: failures are
// logged and never surfaced to the request that triggered them.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

// New builds a mailer for the given SMTP endpoint. An empty host yields a
// disabled mailer that silently drops messages (test and dev default).
func New(host string, port int, user, pass, from string) *Mailer {
	m := &Mailer{from: from}
	if host != "" {
		m.dialer = gomail.NewDialer(host, port, user, pass)
	}
	return m
}

// Send delivers a message to the recipients in the background.
func (m *Mailer) Send(to []string, subject, body string) {
	if m == nil || m.dialer == nil || len(to) == 0 {
		return
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	go func() {
		if err := m.dialer.DialAndSend(msg); err != nil {
			logrus.WithError(err).WithField("subject", subject).Error("failed to send email")
		}
	}()
}
