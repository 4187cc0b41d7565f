package ports

import (
	"context"

	"github.com/stpnv0/EventCatalog/internal/domain"
)

type EventNotifier interface {
	NotifyEventPublished(ctx context.Context, event *domain.CulturalEvent)
	NotifyEventCancelled(ctx context.Context, event *domain.CulturalEvent)
}
