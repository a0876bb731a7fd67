package domain

import (
	"context"

	"bestchungsan/internal/model"
)

// Notifier tells the owner that a lead was delivered. Failures are the
// caller's to log; they never change the delivery result.
type Notifier interface {
	Notify(ctx context.Context, channel string, sub model.Submission) error
}
