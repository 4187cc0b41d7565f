package store

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/stpnv0/EventCatalog/internal/domain"
	"github.com/stpnv0/EventCatalog/internal/observable"
	"github.com/wb-go/wbf/logger"
)

// EventBackend supplies and persists event records.
type EventBackend interface {
	List(ctx context.Context) ([]*domain.CulturalEvent, error)
	Get(ctx context.Context, id string) (*domain.CulturalEvent, error)
	Create(ctx context.Context, input domain.CreateEventInput) (*domain.CulturalEvent, error)
	Update(ctx context.Context, id string, patch domain.EventPatch) (*domain.CulturalEvent, error)
	Remove(ctx context.Context, id string) error
}

type state struct {
	events    []domain.CulturalEvent
	eventsRev uint64
	filters   domain.EventFilters
	loading   bool
	err       string

	selectedID     string
	selectionGen   uint64
	detail         *domain.CulturalEvent
	detailLoading  bool
	detailNotFound bool

	loadGen uint64
}

// Store owns the authoritative event collection and the filter state, and
// publishes a Snapshot after every mutation.
//
// Backend calls run without holding the state lock, so results are applied in
// arrival order. Loads and detail fetches carry a generation and results of
// superseded requests are dropped.
//
// Subscribers are called synchronously while the store is locked: they may
// read Snapshot but must not issue commands from inside the callback.
type Store struct {
	backend EventBackend
	logger  logger.Logger

	mu      sync.Mutex
	st      state
	cache   derivedCache
	version uint64
	value   *observable.Value[Snapshot]
}

func New(backend EventBackend, log logger.Logger) *Store {
	s := &Store{
		backend: backend,
		logger:  log,
		st:      state{filters: domain.DefaultFilters()},
	}
	s.value = observable.New(s.buildLocked())
	return s
}

func (s *Store) Snapshot() Snapshot {
	return s.value.Get()
}

func (s *Store) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	return s.value.Subscribe(fn)
}

// LoadEvents replaces the collection with the backend's. On failure the
// previous events are kept and the error is recorded.
func (s *Store) LoadEvents(ctx context.Context) error {
	s.mu.Lock()
	s.st.loadGen++
	gen := s.st.loadGen
	s.st.loading = true
	s.publishLocked()
	s.mu.Unlock()

	events, err := s.backend.List(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.st.loadGen {
		s.logger.Debug("discarding superseded load result", logger.Any("generation", gen))
		if err != nil {
			return fmt.Errorf("load events: %w", err)
		}
		return nil
	}

	s.st.loading = false
	if err != nil {
		s.st.err = err.Error()
		s.publishLocked()
		s.logger.Error("failed to load events", logger.String("error", err.Error()))
		return fmt.Errorf("load events: %w", err)
	}

	next := make([]domain.CulturalEvent, 0, len(events))
	for _, e := range events {
		if e != nil {
			next = append(next, *e)
		}
	}
	s.setEventsLocked(next)
	s.st.err = ""
	s.publishLocked()

	return nil
}

// SelectEvent makes id the selected event and returns it. An event that is
// not resident is fetched from the backend; the result is applied to the
// selection only if it has not changed meanwhile, but it is returned to the
// caller either way. An empty id clears the selection.
func (s *Store) SelectEvent(ctx context.Context, id string) (*domain.CulturalEvent, error) {
	if id == "" {
		s.ClearSelection()
		return nil, nil
	}

	s.mu.Lock()
	s.st.selectionGen++
	gen := s.st.selectionGen
	s.st.selectedID = id
	s.st.detail = nil
	s.st.detailNotFound = false

	if i := s.indexLocked(id); i >= 0 {
		resident := s.st.events[i]
		s.st.detailLoading = false
		s.publishLocked()
		s.mu.Unlock()
		return &resident, nil
	}

	s.st.detailLoading = true
	s.publishLocked()
	s.mu.Unlock()

	event, err := s.backend.Get(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()

	stale := gen != s.st.selectionGen
	if stale {
		s.logger.Debug("discarding stale detail fetch", logger.String("event_id", id))
	}

	switch {
	case errors.Is(err, domain.ErrEventNotFound):
		if !stale {
			s.st.detailLoading = false
			s.st.detailNotFound = true
			s.publishLocked()
		}
		return nil, err
	case err != nil:
		if !stale {
			s.st.detailLoading = false
			s.st.err = err.Error()
			s.publishLocked()
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	fetched := *event
	if !stale {
		detail := fetched
		s.st.detailLoading = false
		s.st.detail = &detail
		s.publishLocked()
	}

	return &fetched, nil
}

// ClearSelection drops the selection. A fetch still in flight for the
// previous selection is ignored when it returns.
func (s *Store) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.clearSelectionLocked()
	s.publishLocked()
}

func (s *Store) UpdateFilters(patch domain.FilterPatch) error {
	if err := patch.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.st.filters = patch.Merge(s.st.filters)
	s.publishLocked()

	return nil
}

func (s *Store) ResetFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.st.filters = domain.DefaultFilters()
	s.publishLocked()
}

// CreateEvent appends the record confirmed by the backend.
func (s *Store) CreateEvent(ctx context.Context, input domain.CreateEventInput) (*domain.CulturalEvent, error) {
	event, err := s.backend.Create(ctx, input)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.recordErrorLocked(err)
		return nil, fmt.Errorf("create event: %w", err)
	}

	next := slices.Clone(s.st.events)
	if i := s.indexLocked(event.ID); i >= 0 {
		next[i] = *event
	} else {
		next = append(next, *event)
	}
	s.setEventsLocked(next)
	s.st.err = ""
	s.publishLocked()

	s.logger.Info("event created",
		logger.String("event_id", event.ID),
		logger.String("title", event.Title),
	)

	return event, nil
}

// UpdateEvent applies patch through the backend and replaces the local record
// in place.
func (s *Store) UpdateEvent(ctx context.Context, id string, patch domain.EventPatch) (*domain.CulturalEvent, error) {
	event, err := s.backend.Update(ctx, id, patch)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.recordErrorLocked(err)
		return nil, fmt.Errorf("update event: %w", err)
	}

	s.applyUpdatedLocked(*event)
	return event, nil
}

// DeleteEvent removes the event once the backend confirms. A deleted selected
// event also clears the selection.
func (s *Store) DeleteEvent(ctx context.Context, id string) error {
	err := s.backend.Remove(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.recordErrorLocked(err)
		return fmt.Errorf("delete event: %w", err)
	}

	if i := s.indexLocked(id); i >= 0 {
		next := slices.Delete(slices.Clone(s.st.events), i, i+1)
		s.setEventsLocked(next)
	}
	if s.st.selectedID == id {
		s.clearSelectionLocked()
	}
	s.st.err = ""
	s.publishLocked()

	s.logger.Info("event deleted", logger.String("event_id", id))

	return nil
}

// ToggleEventStatus moves the event to the next status of the
// draft -> published -> cancelled cycle and persists it.
func (s *Store) ToggleEventStatus(ctx context.Context, id string) (*domain.CulturalEvent, error) {
	s.mu.Lock()
	i := s.indexLocked(id)
	if i < 0 {
		s.recordErrorLocked(domain.ErrEventNotFound)
		s.mu.Unlock()
		return nil, fmt.Errorf("toggle status of %q: %w", id, domain.ErrEventNotFound)
	}
	next := s.st.events[i].Status.Next()
	s.mu.Unlock()

	event, err := s.backend.Update(ctx, id, domain.EventPatch{Status: &next})

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.recordErrorLocked(err)
		return nil, fmt.Errorf("toggle status: %w", err)
	}

	s.applyUpdatedLocked(*event)

	s.logger.Info("event status changed",
		logger.String("event_id", id),
		logger.String("status", string(event.Status)),
	)

	return event, nil
}

func (s *Store) applyUpdatedLocked(event domain.CulturalEvent) {
	if i := s.indexLocked(event.ID); i >= 0 {
		next := slices.Clone(s.st.events)
		next[i] = event
		s.setEventsLocked(next)
	}
	if s.st.detail != nil && s.st.detail.ID == event.ID {
		s.st.detail = &event
	}
	s.st.err = ""
	s.publishLocked()
}

func (s *Store) recordErrorLocked(err error) {
	s.st.err = err.Error()
	s.publishLocked()
	s.logger.Warn("event command failed", logger.String("error", err.Error()))
}

func (s *Store) clearSelectionLocked() {
	s.st.selectionGen++
	s.st.selectedID = ""
	s.st.detail = nil
	s.st.detailLoading = false
	s.st.detailNotFound = false
}

func (s *Store) setEventsLocked(events []domain.CulturalEvent) {
	s.st.events = events
	s.st.eventsRev++
}

func (s *Store) indexLocked(id string) int {
	return slices.IndexFunc(s.st.events, func(e domain.CulturalEvent) bool {
		return e.ID == id
	})
}

func (s *Store) publishLocked() {
	s.value.Set(s.buildLocked())
}

func (s *Store) buildLocked() Snapshot {
	s.version++
	filtered, counts := s.cache.get(s.st.events, s.st.eventsRev, s.st.filters)

	sel := Selection{
		ID:       s.st.selectedID,
		Loading:  s.st.detailLoading,
		NotFound: s.st.detailNotFound,
	}
	if s.st.selectedID != "" {
		if i := s.indexLocked(s.st.selectedID); i >= 0 {
			e := s.st.events[i]
			sel.Event = &e
		} else if s.st.detail != nil {
			d := *s.st.detail
			sel.Event = &d
		}
	}

	events := s.st.events
	if events == nil {
		events = []domain.CulturalEvent{}
	}

	return Snapshot{
		Version:        s.version,
		Events:         events,
		Filters:        s.st.filters,
		Loading:        s.st.loading,
		Error:          s.st.err,
		Selection:      sel,
		FilteredEvents: filtered,
		Counts:         counts,
	}
}
