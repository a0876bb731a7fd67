package domain

import (
	"context"

	"bestchungsan/pkg/emailjs"
)

// TemplateSender is the third-party send used by the direct channel.
type TemplateSender interface {
	Send(ctx context.Context, serviceID, templateID string, params map[string]string) (emailjs.Response, error)
}
