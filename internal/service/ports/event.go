package ports

import (
	"context"

	"github.com/stpnv0/EventCatalog/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.CulturalEvent) error
	GetByID(ctx context.Context, id string) (*domain.CulturalEvent, error)
	List(ctx context.Context) ([]*domain.CulturalEvent, error)
	Update(ctx context.Context, e *domain.CulturalEvent) error
	Delete(ctx context.Context, id string) error
}
