package domain

import "context"

// Mail is one outbound HTML message.
type Mail struct {
	FromName  string
	From      string
	To        string
	Subject   string
	HTML      string
	MessageID string
}

type MailTransport interface {
	// Send delivers the message and returns the Message-ID it went out with.
	Send(ctx context.Context, mail Mail) (string, error)
}
