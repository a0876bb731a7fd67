// Package relay is the server-side delivery channel: it renders a
// submission into the owner's HTML mail and hands it to a mail transport.
// A failed send is final; nothing is queued or retried.
package relay

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"bestchungsan/internal/config"
	"bestchungsan/internal/domain"
	"bestchungsan/internal/form"
	"bestchungsan/internal/model"
)

const (
	ChannelName = "relay"
	senderName  = "베스트청산 의뢰 시스템"
)

var ErrConfigMissing = errors.New("relay: mail account or receiver is not configured")

type Service struct {
	transport domain.MailTransport
	notifier  domain.Notifier
	cfg       config.MailConfig
	logger    *zap.Logger

	// Now stamps the mail footer.
	Now func() time.Time
}

// NewService wires the relay. notifier may be nil; a nil transport makes
// every Send fail with ErrConfigMissing.
func NewService(transport domain.MailTransport, notifier domain.Notifier, cfg config.MailConfig, logger *zap.Logger) *Service {
	return &Service{
		transport: transport,
		notifier:  notifier,
		cfg:       cfg,
		logger:    logger,
		Now:       time.Now,
	}
}

// Send renders and mails one submission, returning the Message-ID.
func (s *Service) Send(ctx context.Context, sub model.Submission) (string, error) {
	if s.transport == nil || s.cfg.Account == "" || s.cfg.Receiver == "" {
		return "", ErrConfigMissing
	}
	if missing := form.MissingRequired(sub); len(missing) > 0 {
		s.logger.Warn("relay submission has empty required fields", zap.Strings("fields", missing))
	}

	html, err := Render(sub, s.Now())
	if err != nil {
		return "", err
	}

	mail := domain.Mail{
		FromName:  senderName,
		From:      s.cfg.Account,
		To:        s.cfg.Receiver,
		Subject:   Subject(sub),
		HTML:      html,
		MessageID: newMessageID(s.cfg.Account),
	}
	id, err := s.transport.Send(ctx, mail)
	if err != nil {
		return "", fmt.Errorf("relay: send mail: %w", err)
	}
	s.logger.Info("Email sent", zap.String("message_id", id), zap.String("apartment", sub.ApartmentName))

	if s.notifier != nil {
		if err := s.notifier.Notify(ctx, ChannelName, sub); err != nil {
			s.logger.Error("error notifying owner", zap.Error(err))
		}
	}
	return id, nil
}

// newMessageID returns "uuid@host" with the host of the sending account.
func newMessageID(account string) string {
	host := "bestchungsan.local"
	if i := strings.LastIndex(account, "@"); i >= 0 && i < len(account)-1 {
		host = account[i+1:]
	}
	return uuid.NewString() + "@" + host
}
