package notify

import (
	"context"
	"log/slog"
)

// LogNotifier records outbound messages in the server log. It is the
// default transport for installs without a webhook or broker.
type LogNotifier struct{}

// Send implements Notifier.
func (LogNotifier) Send(_ context.Context, msg Message) error {
	slog.Info("requisition notification",
		"protocol", msg.Protocol,
		"requester", msg.Requester,
	)
	return nil
}
