// Package view holds the lifecycle-scoped contexts the presentation layer
// opens over the store: the event list and the event detail.
package view

import (
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stpnv0/EventCatalog/internal/debounce"
	"github.com/stpnv0/EventCatalog/internal/domain"
	"github.com/stpnv0/EventCatalog/internal/favorites"
	"github.com/stpnv0/EventCatalog/internal/store"
	"github.com/wb-go/wbf/logger"
)

type ListItem struct {
	domain.CulturalEvent
	Favorite bool `json:"favorite"`
}

type ListModel struct {
	Events    []ListItem          `json:"events"`
	Filters   domain.EventFilters `json:"filters"`
	Counts    domain.EventCounts  `json:"counts"`
	Loading   bool                `json:"loading"`
	Error     string              `json:"error,omitempty"`
	HasStats  bool                `json:"has_stats"`
	HasEvents bool                `json:"has_events"`
	IsEmpty   bool                `json:"is_empty"`
	ShowGrid  bool                `json:"show_grid"`
	// Filtering reports whether any filter narrows the list.
	Filtering bool `json:"filtering"`
	// PendingSearch is the typed term not yet committed, if any.
	PendingSearch *string `json:"pending_search,omitempty"`
}

// ListView binds the search box to the store filters through a debouncer.
type ListView struct {
	store     *store.Store
	favorites *favorites.Repository
	search    *debounce.Debouncer
	logger    logger.Logger
}

func NewListView(
	s *store.Store,
	favs *favorites.Repository,
	clock clockwork.Clock,
	quiet time.Duration,
	log logger.Logger,
) *ListView {
	v := &ListView{
		store:     s,
		favorites: favs,
		logger:    log,
	}
	v.search = debounce.New(clock, quiet, v.committedTerm, v.commitTerm)
	return v
}

// Search feeds a raw search box value.
func (v *ListView) Search(raw string) {
	v.search.Input(raw)
}

func (v *ListView) Filter(patch domain.FilterPatch) error {
	return v.store.UpdateFilters(patch)
}

// Reset clears every filter along with the pending search. Filters go first so
// the empty input matches the committed term and only cancels the timer.
func (v *ListView) Reset() {
	v.store.ResetFilters()
	v.search.Input("")
}

func (v *ListView) Model() ListModel {
	return BuildListModel(v.store.Snapshot(), v.favorites.Favorites(), v.pending())
}

// Close cancels a pending search commit.
func (v *ListView) Close() {
	v.search.Close()
}

func (v *ListView) pending() *string {
	term, ok := v.search.Pending()
	if !ok {
		return nil
	}
	return &term
}

func (v *ListView) committedTerm() string {
	return v.store.Snapshot().Filters.SearchTerm
}

func (v *ListView) commitTerm(term string) {
	if err := v.store.UpdateFilters(domain.FilterPatch{SearchTerm: &term}); err != nil {
		v.logger.Error("failed to apply search term",
			logger.String("term", term),
			logger.String("error", err.Error()),
		)
		return
	}
	v.logger.Debug("search term committed", logger.String("term", term))
}

func BuildListModel(snap store.Snapshot, favs favorites.Set, pending *string) ListModel {
	items := make([]ListItem, 0, len(snap.FilteredEvents))
	for _, e := range snap.FilteredEvents {
		items = append(items, ListItem{CulturalEvent: e, Favorite: favs.Has(e.ID)})
	}

	settled := !snap.Loading && snap.Error == ""

	return ListModel{
		Events:        items,
		Filters:       snap.Filters,
		Counts:        snap.Counts,
		Loading:       snap.Loading,
		Error:         snap.Error,
		HasStats:      snap.Counts.Total > 0,
		HasEvents:     len(items) > 0,
		IsEmpty:       settled && len(items) == 0,
		ShowGrid:      settled && len(items) > 0,
		Filtering:     snap.Filters.Active(),
		PendingSearch: pending,
	}
}
