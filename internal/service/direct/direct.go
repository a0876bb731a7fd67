// Package direct is the delivery channel that hands the form straight to
// the EmailJS template service, the way the site's own form does.
package direct

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"bestchungsan/internal/config"
	"bestchungsan/internal/domain"
	"bestchungsan/internal/form"
	"bestchungsan/internal/labels"
	"bestchungsan/internal/model"
)

const ChannelName = "emailjs"

var (
	ErrConfigMissing = errors.New("emailjs service id or template id is not configured")
	ErrRejected      = errors.New("emailjs rejected the message")
)

type Sender struct {
	client   domain.TemplateSender
	notifier domain.Notifier
	cfg      config.EmailJSConfig
	logger   *zap.Logger

	// Now stamps submittedAt.
	Now func() time.Time
}

// NewSender wires the channel. notifier may be nil.
func NewSender(client domain.TemplateSender, notifier domain.Notifier, cfg config.EmailJSConfig, logger *zap.Logger) *Sender {
	return &Sender{
		client:   client,
		notifier: notifier,
		cfg:      cfg,
		logger:   logger,
		Now:      time.Now,
	}
}

// Params flattens a submission into EmailJS template parameters.
// "email" repeats clientEmail for templates that reply to the sender.
func Params(s model.Submission, now time.Time) map[string]string {
	return map[string]string{
		"clientName":    s.ClientName,
		"clientPhone":   s.ClientPhone,
		"clientEmail":   s.ClientEmail,
		"email":         s.ClientEmail,
		"apartmentName": s.ApartmentName,
		"clientType":    labels.ClientType(s.ClientType),
		"unpaidPeriod":  s.UnpaidPeriod,
		"unpaidAmount":  model.FormatAmount(s.UnpaidAmount),
		"unpaidDetails": labels.UnpaidDetails(s.UnpaidDetails),
		"submittedAt":   labels.Timestamp(now),
	}
}

// Send delivers one submission. Anything but a 200 answer is a failure.
func (s *Sender) Send(ctx context.Context, sub model.Submission) error {
	if s.cfg.ServiceID == "" || s.cfg.TemplateID == "" {
		s.logger.Error("EmailJS environment variables are not set")
		return ErrConfigMissing
	}
	if missing := form.MissingRequired(sub); len(missing) > 0 {
		s.logger.Warn("submission has empty required fields", zap.Strings("fields", missing))
	}

	params := Params(sub, s.Now())
	s.logger.Debug("sending email with params", zap.Any("params", params))

	resp, err := s.client.Send(ctx, s.cfg.ServiceID, s.cfg.TemplateID, params)
	if err != nil {
		return fmt.Errorf("emailjs send: %w", err)
	}
	if resp.Status != http.StatusOK {
		return fmt.Errorf("%w: status %d: %s", ErrRejected, resp.Status, resp.Text)
	}
	s.logger.Info("EmailJS accepted submission", zap.String("apartment", sub.ApartmentName))

	if s.notifier != nil {
		if err := s.notifier.Notify(ctx, ChannelName, sub); err != nil {
			s.logger.Error("error notifying owner", zap.Error(err))
		}
	}
	return nil
}
