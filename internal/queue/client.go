package queue

import "context"

// Client sends messages to a queue backend.
type Client interface {
	Send(ctx context.Context, msg Message) error
}

// Noop discards every message. Used when no janitor queue is configured.
type Noop struct{}

// Send drops the message.
func (Noop) Send(ctx context.Context, msg Message) error {
	_ = ctx
	_ = msg
	return nil
}

var _ Client = Noop{}
