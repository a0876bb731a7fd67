// Package mail holds the outbound transports of the relay channel.
package mail

import (
	"context"
	"errors"
	"fmt"

	"bestchungsan/internal/config"
	"bestchungsan/internal/domain"
)

const (
	DriverSMTP  = "smtp"
	DriverGmail = "gmail"
)

var ErrMissingCredentials = errors.New("mail transport credentials are not configured")

// NewTransport picks the transport named by cfg.Driver.
func NewTransport(ctx context.Context, cfg config.MailConfig) (domain.MailTransport, error) {
	switch cfg.Driver {
	case DriverSMTP, "":
		if cfg.AppPassword == "" {
			return nil, fmt.Errorf("%w: NAVER_APP_PASSWORD", ErrMissingCredentials)
		}
		return NewSMTPTransport(cfg.SMTPHost, cfg.SMTPPort, cfg.Account, cfg.AppPassword), nil
	case DriverGmail:
		if cfg.CredentialsBase64 == "" {
			return nil, fmt.Errorf("%w: GMAIL_CREDENTIALS_BASE64", ErrMissingCredentials)
		}
		t, err := NewGmailTransport(ctx, cfg.CredentialsBase64, cfg.Account)
		if err != nil {
			return nil, err
		}
		return t, nil
	}
	return nil, fmt.Errorf("unknown mail driver %q", cfg.Driver)
}
