// Package notify is the outbound-message port for finalized requisitions.
// The checkout workflow hands a structured message to a Notifier and does
// not wait for delivery.
package notify

import "context"

// Message is the structured payload for one finalized requisition.
type Message struct {
	Protocol  string `json:"protocol"`
	Requester string `json:"requester"`
	Text      string `json:"text"`
}

// Notifier delivers a requisition message to an external channel.
type Notifier interface {
	Send(ctx context.Context, msg Message) error
}
