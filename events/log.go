package events

import (
	"context"
	"log/slog"
)

// LogPublisher writes events to the log instead of a broker.
type LogPublisher struct {
	Log *slog.Logger
}

func (p LogPublisher) Publish(ctx context.Context, e Event) error {
	p.Log.InfoContext(ctx, "event",
		"type", e.Type,
		"key", e.Key,
		"from_status", e.FromStatus,
		"status", e.Status,
		"actor", e.Actor,
	)
	return nil
}

func (LogPublisher) Close() error { return nil }
