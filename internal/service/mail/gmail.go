package mail

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"

	"bestchungsan/internal/domain"
)

// GmailTransport sends through the Gmail API as user, using a service
// account with domain-wide delegation.
type GmailTransport struct {
	srv  *gmail.Service
	user string
}

// NewGmailTransport decodes the base64 service-account JSON and
// impersonates user for gmail.send.
func NewGmailTransport(ctx context.Context, base64Creds, user string) (*GmailTransport, error) {
	credBytes, err := base64.StdEncoding.DecodeString(base64Creds)
	if err != nil {
		return nil, fmt.Errorf("cannot decode gmail credentials from base64: %w", err)
	}
	jwtConfig, err := google.JWTConfigFromJSON(credBytes, gmail.GmailSendScope)
	if err != nil {
		return nil, fmt.Errorf("cannot parse gmail credentials: %w", err)
	}
	jwtConfig.Subject = user

	srv, err := gmail.NewService(ctx, option.WithTokenSource(jwtConfig.TokenSource(ctx)))
	if err != nil {
		return nil, fmt.Errorf("cannot init gmail service: %w", err)
	}
	return NewGmailTransportWithService(srv, user), nil
}

func NewGmailTransportWithService(srv *gmail.Service, user string) *GmailTransport {
	return &GmailTransport{srv: srv, user: user}
}

func (t *GmailTransport) Send(ctx context.Context, m domain.Mail) (string, error) {
	msg, err := buildMessage(m)
	if err != nil {
		return "", err
	}
	var raw bytes.Buffer
	if _, err := msg.WriteTo(&raw); err != nil {
		return "", fmt.Errorf("gmail: encode message: %w", err)
	}

	_, err = t.srv.Users.Messages.Send(t.user, &gmail.Message{
		Raw: base64.URLEncoding.EncodeToString(raw.Bytes()),
	}).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("gmail send: %w", err)
	}
	return m.MessageID, nil
}
