package view

import (
	"context"
	"sync"
	"time"

	"github.com/stpnv0/EventCatalog/internal/countdown"
	"github.com/stpnv0/EventCatalog/internal/domain"
	"github.com/stpnv0/EventCatalog/internal/store"
)

type DetailModel struct {
	Event     *domain.CulturalEvent `json:"event"`
	Loading   bool                  `json:"loading"`
	NotFound  bool                  `json:"not_found"`
	Favorite  bool                  `json:"favorite"`
	Countdown *domain.Countdown     `json:"countdown"`
}

type detailStore interface {
	Snapshot() store.Snapshot
	Subscribe(fn func(store.Snapshot)) (unsubscribe func())
	SelectEvent(ctx context.Context, id string) (*domain.CulturalEvent, error)
	ClearSelection()
}

type favoriteChecker interface {
	IsFavorite(id string) bool
}

// DetailView owns the selection and the countdown of one opened event. The
// countdown restarts when the selected event's date changes and is released
// by Close.
type DetailView struct {
	store     detailStore
	favorites favoriteChecker
	ticker    *countdown.Ticker

	mu          sync.Mutex
	id          string
	target      time.Time
	unsubscribe func()
	closed      bool
}

func NewDetailView(s detailStore, favs favoriteChecker, ticker *countdown.Ticker) *DetailView {
	return &DetailView{store: s, favorites: favs, ticker: ticker}
}

// Open selects id and starts the countdown once the event is known.
// A missing event is reported through the model, not as a failure of Open.
func (v *DetailView) Open(ctx context.Context, id string) error {
	v.mu.Lock()
	if v.unsubscribe != nil {
		v.unsubscribe()
	}
	v.id = id
	v.target = time.Time{}
	v.closed = false
	v.unsubscribe = v.store.Subscribe(v.onSnapshot)
	v.mu.Unlock()

	_, err := v.store.SelectEvent(ctx, id)

	// the event may already have been resident, in which case no snapshot
	// arrived after subscribing with a selection for id
	v.onSnapshot(v.store.Snapshot())

	return err
}

// Model describes the opened event. It is empty once the selection has moved
// to another event.
func (v *DetailView) Model() DetailModel {
	v.mu.Lock()
	id := v.id
	v.mu.Unlock()

	snap := v.store.Snapshot()
	if snap.Selection.ID != id {
		return DetailModel{}
	}
	c := v.ticker.Current()
	return BuildDetailModel(snap, v.favorites.IsFavorite(id), &c)
}

// BuildDetailModel describes the selected event of snap. The countdown is only
// attached when an event is selected.
func BuildDetailModel(snap store.Snapshot, favorite bool, countdown *domain.Countdown) DetailModel {
	m := DetailModel{
		Event:    snap.SelectedEvent(),
		Loading:  snap.Selection.Loading,
		NotFound: snap.Selection.NotFound,
	}
	if m.Event != nil {
		m.Favorite = favorite
		m.Countdown = countdown
	}
	return m
}

// Close stops the countdown and stops observing the store. The selection is
// cleared unless another view has selected a different event since.
func (v *DetailView) Close() {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return
	}
	v.closed = true
	id := v.id
	if v.unsubscribe != nil {
		v.unsubscribe()
		v.unsubscribe = nil
	}
	v.mu.Unlock()

	v.ticker.Stop()
	if v.store.Snapshot().Selection.ID == id {
		v.store.ClearSelection()
	}
}

func (v *DetailView) onSnapshot(snap store.Snapshot) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.closed || snap.Selection.ID != v.id {
		return
	}
	event := snap.SelectedEvent()
	if event == nil || event.Date.Equal(v.target) {
		return
	}
	v.target = event.Date
	v.ticker.Start(event.Date)
}
