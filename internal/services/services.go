// Package services implements the mutation and read flows the screens
// call: validated CRUD over the three collections and the dashboard
// summary. Every mutation is a whole-collection read-modify-write
// against the storage gateway.
package services

import (
	"context"
	"log/slog"
)

// Publisher emits entity change notifications after successful
// mutations. A nil Publisher disables events.
type Publisher interface {
	Publish(ctx context.Context, collection, entityID, action string) error
}

// publish is best effort: the mutation already succeeded locally, so a
// broker failure is logged and swallowed.
func publish(ctx context.Context, p Publisher, collection, entityID, action string) {
	if p == nil {
		return
	}
	if err := p.Publish(ctx, collection, entityID, action); err != nil {
		slog.ErrorContext(ctx, "Failed to publish change message",
			"collection", collection,
			"entity_id", entityID,
			"action", action,
			"error", err)
	}
}
