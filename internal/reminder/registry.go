// Package reminder holds who wants daily reminders and who has already
// finished today's task.
package reminder

import (
	"iter"
	"slices"
	"sync"
)

// Stats is a point-in-time view of both pools.
type Stats struct {
	Subscribed int
	Finished   int
	Pending    int
}

// Registry owns the reminder pool and the finished pool. One mutex guards
// both so that a reset never interleaves with a pending-set snapshot.
type Registry struct {
	mu       sync.RWMutex
	pool     []string
	inPool   map[string]struct{}
	finished map[string]struct{}
}

// NewRegistry creates a registry whose reminder pool is seeded with ids,
// keeping their order and dropping repeats.
func NewRegistry(seed ...string) *Registry {
	r := &Registry{
		inPool:   make(map[string]struct{}, len(seed)),
		finished: make(map[string]struct{}),
	}
	for _, id := range seed {
		r.subscribeLocked(id)
	}
	return r
}

// Subscribe adds id to the reminder pool.
func (r *Registry) Subscribe(id string) SubscribeResult {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.subscribeLocked(id) {
		return AlreadySubscribed
	}
	return Subscribed
}

func (r *Registry) subscribeLocked(id string) bool {
	if _, ok := r.inPool[id]; ok {
		return false
	}
	r.inPool[id] = struct{}{}
	r.pool = append(r.pool, id)
	return true
}

// Unsubscribe removes id from the reminder pool.
func (r *Registry) Unsubscribe(id string) UnsubscribeResult {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.inPool[id]; !ok {
		return NotSubscribed
	}
	delete(r.inPool, id)
	if i := slices.Index(r.pool, id); i >= 0 {
		r.pool = slices.Delete(r.pool, i, i+1)
	}
	return Unsubscribed
}

// MarkDone records that id finished today's task. Subscription is not required.
func (r *Registry) MarkDone(id string) DoneResult {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.finished[id]; ok {
		return AlreadyDone
	}
	r.finished[id] = struct{}{}
	return MarkedDone
}

// ResetCompletions empties the finished pool and returns how many entries
// were dropped. A second call before anyone marks done again returns 0.
func (r *Registry) ResetCompletions() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := len(r.finished)
	clear(r.finished)
	return n
}

// PendingReminders yields subscribed ids that have not finished, in
// subscription order. Every iteration takes a fresh snapshot under the lock
// and yields outside it, so callers may do slow work per id.
func (r *Registry) PendingReminders() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, id := range r.pendingSnapshot() {
			if !yield(id) {
				return
			}
		}
	}
}

func (r *Registry) pendingSnapshot() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	pending := make([]string, 0, len(r.pool))
	for _, id := range r.pool {
		if _, done := r.finished[id]; !done {
			pending = append(pending, id)
		}
	}
	return pending
}

// IsSubscribed reports whether id is in the reminder pool.
func (r *Registry) IsSubscribed(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.inPool[id]
	return ok
}

// IsDone reports whether id is in the finished pool.
func (r *Registry) IsDone(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.finished[id]
	return ok
}

// Subscribers returns a copy of the reminder pool in subscription order.
func (r *Registry) Subscribers() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.pool)
}

// Stats counts both pools under a single lock.
func (r *Registry) Stats() Stats {
	r.mu.RLock()
	defer r.mu.RUnlock()
	pending := 0
	for _, id := range r.pool {
		if _, done := r.finished[id]; !done {
			pending++
		}
	}
	return Stats{
		Subscribed: len(r.pool),
		Finished:   len(r.finished),
		Pending:    pending,
	}
}
