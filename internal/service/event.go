package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stpnv0/EventCatalog/internal/domain"
	"github.com/stpnv0/EventCatalog/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// EventService is the backend the event store talks to. It validates payloads,
// assigns ids and timestamps and announces publication and cancellation.
type EventService struct {
	repo     ports.EventRepo
	notifier ports.EventNotifier
	metrics  ports.BackendMetrics
	clock    clockwork.Clock
	logger   logger.Logger
}

func NewEventService(
	repo ports.EventRepo,
	notifier ports.EventNotifier,
	metrics ports.BackendMetrics,
	clock clockwork.Clock,
	logger logger.Logger,
) *EventService {
	return &EventService{
		repo:     repo,
		notifier: notifier,
		metrics:  metrics,
		clock:    clock,
		logger:   logger,
	}
}

func (s *EventService) List(ctx context.Context) (events []*domain.CulturalEvent, err error) {
	defer s.observe("list", s.clock.Now(), &err)

	events, err = s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

func (s *EventService) Get(ctx context.Context, id string) (event *domain.CulturalEvent, err error) {
	defer s.observe("get", s.clock.Now(), &err)

	return s.repo.GetByID(ctx, id)
}

func (s *EventService) Create(ctx context.Context, input domain.CreateEventInput) (event *domain.CulturalEvent, err error) {
	defer s.observe("create", s.clock.Now(), &err)

	if err = input.Validate(); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = domain.StatusDraft
	}

	now := s.clock.Now().UTC()
	event = &domain.CulturalEvent{
		ID:          uuid.New().String(),
		Title:       input.Title,
		Date:        input.Date,
		Category:    input.Category,
		Status:      status,
		Venue:       input.Venue,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		Price:       input.Price,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err = s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.logger.Info("event created",
		logger.String("event_id", event.ID),
		logger.String("category", string(event.Category)),
		logger.String("status", string(event.Status)),
	)

	s.announce(ctx, "", event)

	return event, nil
}

func (s *EventService) Update(ctx context.Context, id string, patch domain.EventPatch) (event *domain.CulturalEvent, err error) {
	defer s.observe("update", s.clock.Now(), &err)

	if err = patch.Validate(); err != nil {
		return nil, err
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	updated := patch.Apply(*current)
	updated.UpdatedAt = s.clock.Now().UTC()

	if err = s.repo.Update(ctx, &updated); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}

	if updated.Status != current.Status {
		s.logger.Info("event status changed",
			logger.String("event_id", id),
			logger.String("from", string(current.Status)),
			logger.String("to", string(updated.Status)),
		)
	}

	s.announce(ctx, current.Status, &updated)

	return &updated, nil
}

func (s *EventService) Remove(ctx context.Context, id string) (err error) {
	defer s.observe("remove", s.clock.Now(), &err)

	if err = s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	s.logger.Info("event deleted", logger.String("event_id", id))

	return nil
}

// announce notifies subscribers when event has just entered the published or
// cancelled status.
func (s *EventService) announce(ctx context.Context, previous domain.EventStatus, event *domain.CulturalEvent) {
	if event.Status == previous {
		return
	}

	snapshot := *event
	switch event.Status {
	case domain.StatusPublished:
		go s.notifier.NotifyEventPublished(context.WithoutCancel(ctx), &snapshot)
	case domain.StatusCancelled:
		go s.notifier.NotifyEventCancelled(context.WithoutCancel(ctx), &snapshot)
	}
}

func (s *EventService) observe(op string, start time.Time, err *error) {
	s.metrics.ObserveBackendCall(op, s.clock.Since(start), *err)
}
