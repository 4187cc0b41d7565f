// Package observable provides a publish/subscribe holder for immutable snapshots.
package observable

import "sync"

// Value holds the latest snapshot of T and delivers new snapshots to its
// subscribers synchronously. Observers never see an older snapshot after a
// newer one; under contention an intermediate snapshot may be skipped.
//
// Snapshots must not be mutated after Set. Subscribers may call Get, but must
// not call Set on the same Value from inside the callback.
type Value[T any] struct {
	mu      sync.RWMutex
	current T
	seq     uint64
	subs    map[uint64]func(T)
	nextID  uint64

	deliver   sync.Mutex
	delivered uint64
}

func New[T any](initial T) *Value[T] {
	return &Value[T]{
		current: initial,
		subs:    make(map[uint64]func(T)),
	}
}

func (v *Value[T]) Get() T {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.current
}

// Set replaces the snapshot and notifies subscribers before returning, unless
// a newer snapshot has already been delivered.
func (v *Value[T]) Set(next T) {
	v.mu.Lock()
	v.current = next
	v.seq++
	seq := v.seq
	subs := make([]func(T), 0, len(v.subs))
	for _, fn := range v.subs {
		subs = append(subs, fn)
	}
	v.mu.Unlock()

	v.deliver.Lock()
	defer v.deliver.Unlock()
	if seq < v.delivered {
		return
	}
	v.delivered = seq

	for _, fn := range subs {
		fn(next)
	}
}

// Subscribe registers fn and returns a function that removes it. fn is not
// invoked with the current snapshot; call Get for that.
func (v *Value[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	v.mu.Lock()
	id := v.nextID
	v.nextID++
	v.subs[id] = fn
	v.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			v.mu.Lock()
			delete(v.subs, id)
			v.mu.Unlock()
		})
	}
}

func (v *Value[T]) SubscriberCount() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.subs)
}
