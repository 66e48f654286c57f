package services

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"catalog-admin/application/ports"
	"catalog-admin/domain/events"
	"catalog-admin/pkg/auth"
	"catalog-admin/pkg/observability"
)

// notifier publishes catalog events and counts writes. Publishing is best effort:
// a failed publish is logged and never fails the write that caused it.
type notifier struct {
	publisher ports.EventPublisher
	metrics   *observability.Metrics
	logger    *zap.Logger
}

func (n notifier) changed(ctx context.Context, entity, action, id string, fields map[string]interface{}) {
	n.metrics.CatalogWrite(entity, action)
	if n.publisher == nil {
		return
	}

	var names []string
	for k := range fields {
		if k == "password" {
			continue
		}
		names = append(names, k)
	}
	sort.Strings(names)

	event := events.NewCatalogChanged(entity, action, id, actorID(ctx), names, time.Now().UTC())
	if err := n.publisher.Publish(ctx, event); err != nil {
		n.logger.Warn("Failed to publish catalog event",
			zap.String("eventType", event.GetEventType()),
			zap.String("id", id),
			zap.Error(err),
		)
	}
}

func actorID(ctx context.Context) string {
	if user, err := auth.GetUserFromContext(ctx); err == nil {
		return user.UserID
	}
	return ""
}
