// Package store holds the reactive, single-value state shared with views.
package store

import "sync"

// Store holds the latest value of one synchronized resource and notifies
// subscribers whenever it changes.
//
// Set notifies synchronously, in subscription order, and Sets are serialized:
// each subscriber observes every Set exactly once, in the order issued.
// A subscriber may call Get, Loaded or its own unsubscribe function, but must
// not call Set or Subscribe on the store that is notifying it.
type Store[T any] struct {
	notifyMu sync.Mutex // serializes Set and Subscribe, held during notification
	mu       sync.Mutex // guards the fields below, never held during a callback
	value    T
	loaded   bool
	nextID   uint64
	subs     []subscription[T]
}

type subscription[T any] struct {
	id uint64
	fn func(T)
}

// New returns a store with no value; Loaded reports false until the first Set.
func New[T any]() *Store[T] {
	return &Store[T]{}
}

// NewWith returns a store already holding initial.
func NewWith[T any](initial T) *Store[T] {
	return &Store[T]{value: initial, loaded: true}
}

// Get returns the current value.
func (s *Store[T]) Get() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

// Loaded reports whether the store has ever been given a value.
func (s *Store[T]) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

// Set replaces the held value and notifies all current subscribers.
func (s *Store[T]) Set(v T) {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	s.value = v
	s.loaded = true
	subs := s.snapshot()
	s.mu.Unlock()

	for _, sub := range subs {
		sub.fn(v)
	}
}

// Subscribe registers fn, calls it once with the current value and then on
// every subsequent Set. The returned function stops further notification.
func (s *Store[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscription[T]{id: id, fn: fn})
	current := s.value
	s.mu.Unlock()

	fn(current)

	var once sync.Once
	return func() {
		once.Do(func() { s.remove(id) })
	}
}

// snapshot copies subs; s.mu must be held.
func (s *Store[T]) snapshot() []subscription[T] {
	out := make([]subscription[T], len(s.subs))
	copy(out, s.subs)
	return out
}

func (s *Store[T]) remove(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, sub := range s.subs {
		if sub.id == id {
			s.subs = append(s.subs[:i], s.subs[i+1:]...)
			return
		}
	}
}
