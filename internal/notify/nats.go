package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
)

// NATSNotifier publishes requisition messages to a NATS subject, for sites
// that route notifications through a broker instead of a webhook.
type NATSNotifier struct {
	conn    *nats.Conn
	subject string
}

// NewNATSNotifier connects to the broker and returns the transport.
func NewNATSNotifier(url, subject string) (*NATSNotifier, error) {
	conn, err := nats.Connect(url)
	if err != nil {
		return nil, fmt.Errorf("connecting to NATS: %w", err)
	}
	return &NATSNotifier{conn: conn, subject: subject}, nil
}

// Send implements Notifier.
func (n *NATSNotifier) Send(_ context.Context, msg Message) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encoding notification: %w", err)
	}
	if err := n.conn.Publish(n.subject, data); err != nil {
		return fmt.Errorf("publishing notification: %w", err)
	}
	return nil
}

// Close drains the underlying connection.
func (n *NATSNotifier) Close() {
	n.conn.Close()
}
