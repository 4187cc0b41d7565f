package websocket

import (
	"github.com/stpnv0/EventCatalog/internal/favorites"
	"github.com/stpnv0/EventCatalog/internal/store"
	"github.com/stpnv0/EventCatalog/internal/view"
)

// PublishCatalog broadcasts the list model after every store snapshot and the
// favorite ids after every favorites change. The returned func stops both.
func (h *Hub) PublishCatalog(s *store.Store, favs *favorites.Repository) (stop func()) {
	stopStore := s.Subscribe(func(snap store.Snapshot) {
		h.Broadcast(NewMessage(TypeSnapshot, view.BuildListModel(snap, favs.Favorites(), nil)))
	})
	stopFavs := favs.Subscribe(func(set favorites.Set) {
		h.Broadcast(NewMessage(TypeFavorites, set.IDs()))
	})

	return func() {
		stopStore()
		stopFavs()
	}
}
