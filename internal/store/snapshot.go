package store

import "github.com/stpnv0/EventCatalog/internal/domain"

// Selection describes the event chosen for the detail view.
type Selection struct {
	ID       string                `json:"id,omitempty"`
	Event    *domain.CulturalEvent `json:"event,omitempty"`
	Loading  bool                  `json:"loading"`
	NotFound bool                  `json:"not_found"`
}

// Snapshot is an immutable view of the store state. Derived fields are always
// consistent with Events and Filters of the same snapshot.
type Snapshot struct {
	Version   uint64                 `json:"version"`
	Events    []domain.CulturalEvent `json:"events"`
	Filters   domain.EventFilters    `json:"filters"`
	Loading   bool                   `json:"loading"`
	Error     string                 `json:"error,omitempty"`
	Selection Selection              `json:"selection"`

	FilteredEvents []domain.CulturalEvent `json:"filtered_events"`
	Counts         domain.EventCounts     `json:"counts"`
}

func (s Snapshot) SelectedEvent() *domain.CulturalEvent {
	return s.Selection.Event
}

// derivedCache memoizes the filtered view and counts on the identity of their
// inputs: the events revision and the filter value.
type derivedCache struct {
	countsRev uint64
	counts    domain.EventCounts
	hasCounts bool

	filteredRev     uint64
	filteredFilters domain.EventFilters
	filtered        []domain.CulturalEvent
	hasFiltered     bool
}

func (c *derivedCache) get(events []domain.CulturalEvent, rev uint64, filters domain.EventFilters) ([]domain.CulturalEvent, domain.EventCounts) {
	if !c.hasCounts || c.countsRev != rev {
		c.counts = domain.CountEvents(events)
		c.countsRev = rev
		c.hasCounts = true
	}
	if !c.hasFiltered || c.filteredRev != rev || c.filteredFilters != filters {
		c.filtered = domain.FilterEvents(events, filters)
		c.filteredRev = rev
		c.filteredFilters = filters
		c.hasFiltered = true
	}
	return c.filtered, c.counts
}
