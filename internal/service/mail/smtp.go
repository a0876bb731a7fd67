package mail

import (
	"context"
	"fmt"

	gomail "github.com/wneessen/go-mail"

	"bestchungsan/internal/domain"
)

// SMTPTransport sends through an authenticated submission server
// (smtp.naver.com:587 with STARTTLS by default).
type SMTPTransport struct {
	host     string
	port     int
	username string
	password string
}

func NewSMTPTransport(host string, port int, username, password string) *SMTPTransport {
	return &SMTPTransport{host: host, port: port, username: username, password: password}
}

func (t *SMTPTransport) Send(ctx context.Context, m domain.Mail) (string, error) {
	msg, err := buildMessage(m)
	if err != nil {
		return "", err
	}

	client, err := gomail.NewClient(t.host,
		gomail.WithPort(t.port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(t.username),
		gomail.WithPassword(t.password),
		gomail.WithTLSPolicy(gomail.TLSMandatory),
	)
	if err != nil {
		return "", fmt.Errorf("smtp client: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return "", fmt.Errorf("smtp send: %w", err)
	}
	return m.MessageID, nil
}

// buildMessage turns a domain mail into a MIME message.
func buildMessage(m domain.Mail) (*gomail.Msg, error) {
	msg := gomail.NewMsg()
	if err := msg.FromFormat(m.FromName, m.From); err != nil {
		return nil, fmt.Errorf("invalid sender %q: %w", m.From, err)
	}
	if err := msg.To(m.To); err != nil {
		return nil, fmt.Errorf("invalid receiver %q: %w", m.To, err)
	}
	msg.Subject(m.Subject)
	msg.SetDate()
	if m.MessageID != "" {
		msg.SetMessageIDWithValue(m.MessageID)
	}
	msg.SetBodyString(gomail.TypeTextHTML, m.HTML)
	return msg, nil
}
