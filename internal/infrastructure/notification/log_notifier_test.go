package notification

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	appnotification "github.com/tourbook/backend/internal/application/notification"
)

func TestLogNotifierSend(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	notifier := NewLogNotifier(zap.New(core))

	err := notifier.Send(context.Background(), appnotification.Notification{
		Recipient: "vendor-1",
		Channel:   "email",
		Subject:   "Booking confirmed",
		Body:      "A booking for your tour was confirmed",
	})
	require.NoError(t, err)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "Notification dispatched", entries[0].Message)
	assert.Equal(t, "vendor-1", entries[0].ContextMap()["recipient"])
}
