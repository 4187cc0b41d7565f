package favorites

import (
	"context"
	"encoding/json"
	"errors"
	"slices"
	"sync"

	"github.com/stpnv0/EventCatalog/internal/domain"
	"github.com/stpnv0/EventCatalog/internal/observable"
	"github.com/wb-go/wbf/logger"
)

const DefaultStorageKey = "favorites"

// Storage is a durable string-keyed store.
// GetItem returns domain.ErrItemNotFound when the key is absent.
type Storage interface {
	GetItem(ctx context.Context, key string) (string, error)
	SetItem(ctx context.Context, key, value string) error
	RemoveItem(ctx context.Context, key string) error
}

// Set is an immutable snapshot of favorited event ids.
type Set map[string]struct{}

func (s Set) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// IDs returns the members sorted.
func (s Set) IDs() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Repository keeps the set of favorite event ids and mirrors it into Storage.
// Storage failures never reach the caller: the in-memory set stays correct
// for the session even when persistence does not.
type Repository struct {
	storage Storage
	key     string
	logger  logger.Logger

	mu  sync.Mutex
	set *observable.Value[Set]
}

func New(ctx context.Context, storage Storage, key string, log logger.Logger) *Repository {
	if key == "" {
		key = DefaultStorageKey
	}
	r := &Repository{
		storage: storage,
		key:     key,
		logger:  log,
	}
	r.set = observable.New(r.load(ctx))
	return r
}

func (r *Repository) IsFavorite(id string) bool {
	return r.set.Get().Has(id)
}

func (r *Repository) Favorites() Set {
	return r.set.Get()
}

func (r *Repository) Subscribe(fn func(Set)) (unsubscribe func()) {
	return r.set.Subscribe(fn)
}

// Toggle flips membership of id and persists the whole set.
func (r *Repository) Toggle(ctx context.Context, id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur := r.set.Get()
	next := make(Set, len(cur)+1)
	for k := range cur {
		next[k] = struct{}{}
	}
	if next.Has(id) {
		delete(next, id)
	} else {
		next[id] = struct{}{}
	}

	r.set.Set(next)
	r.persist(ctx, next)
}

// Clear empties the set and removes the persisted record.
func (r *Repository) Clear(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.set.Set(Set{})
	if err := r.storage.RemoveItem(ctx, r.key); err != nil {
		r.logger.Warn("failed to remove favorites",
			logger.String("key", r.key),
			logger.String("error", err.Error()),
		)
	}
}

func (r *Repository) load(ctx context.Context) Set {
	raw, err := r.storage.GetItem(ctx, r.key)
	if err != nil {
		if !errors.Is(err, domain.ErrItemNotFound) {
			r.logger.Warn("failed to read favorites, starting empty",
				logger.String("key", r.key),
				logger.String("error", err.Error()),
			)
		}
		return Set{}
	}

	var ids []string
	if err = json.Unmarshal([]byte(raw), &ids); err != nil {
		r.logger.Warn("malformed favorites record, starting empty",
			logger.String("key", r.key),
			logger.String("error", err.Error()),
		)
		return Set{}
	}

	set := make(Set, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func (r *Repository) persist(ctx context.Context, set Set) {
	raw, err := json.Marshal(set.IDs())
	if err != nil {
		r.logger.Warn("failed to encode favorites", logger.String("error", err.Error()))
		return
	}

	if err = r.storage.SetItem(ctx, r.key, string(raw)); err != nil {
		r.logger.Warn("failed to persist favorites",
			logger.String("key", r.key),
			logger.Int("count", len(set)),
			logger.String("error", err.Error()),
		)
	}
}
