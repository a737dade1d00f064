// Package notify sends best-effort user emails. Delivery is asynchronous and
// failures are logged and swallowed: a notification never blocks or fails a
// request.
package notify

import (
	"fmt"
	"net/smtp"

	"go.uber.org/zap"
)

type Notifier interface {
	Notify(email, subject, message string)
}

type EmailNotifier struct {
	addr   string
	from   string
	logger *zap.SugaredLogger
}

func NewEmailNotifier(addr, from string, logger *zap.SugaredLogger) *EmailNotifier {
	return &EmailNotifier{addr: addr, from: from, logger: logger}
}

func (n *EmailNotifier) Notify(email, subject, message string) {
	go func() {
		if n.addr == "" {
			n.logger.Infow("email notification skipped, no SMTP configured",
				"to", email, "subject", subject)
			return
		}

		body := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n", n.from, email, subject, message)
		if err := smtp.SendMail(n.addr, nil, n.from, []string{email}, []byte(body)); err != nil {
			n.logger.Errorf("send email to %s: %v", email, err)
		}
	}()
}
