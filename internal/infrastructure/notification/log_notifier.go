// Package notification provides Notifier implementations. Real delivery
// channels (email, push) are external collaborators; the log notifier is
// the in-process default.
package notification

import (
	"context"

	"go.uber.org/zap"

	appnotification "github.com/tourbook/backend/internal/application/notification"
)

// LogNotifier writes notifications to the structured log instead of
// delivering them.
type LogNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier creates a new LogNotifier
func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Send logs the notification
func (n *LogNotifier) Send(_ context.Context, notification appnotification.Notification) error {
	n.logger.Info("Notification dispatched",
		zap.String("recipient", notification.Recipient),
		zap.String("channel", notification.Channel),
		zap.String("subject", notification.Subject),
		zap.String("body", notification.Body),
	)
	return nil
}

var _ appnotification.Notifier = (*LogNotifier)(nil)
