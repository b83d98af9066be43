// Package registry holds the in-memory client collection shared across
// screens. It is an injectable repository with an explicit subscribe/notify
// contract; consumers declare the dependency instead of reaching for an
// ambient singleton.
package registry

import (
	"sync"

	"github.com/diewo77/billing-client/internal/models"
)

// Registry is an ordered collection of client records keyed by server id.
// All operations are synchronous local replacements; freshness comes from
// callers re-fetching and calling ReplaceAll.
type Registry struct {
	mu      sync.RWMutex
	clients []models.Client

	subMu sync.Mutex
	subs  map[int]func([]models.Client)
	nextS int
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{subs: make(map[int]func([]models.Client))}
}

// Subscribe registers fn to be called with a snapshot after every mutation.
// The returned function cancels the subscription.
func (r *Registry) Subscribe(fn func([]models.Client)) (cancel func()) {
	r.subMu.Lock()
	id := r.nextS
	r.nextS++
	r.subs[id] = fn
	r.subMu.Unlock()

	return func() {
		r.subMu.Lock()
		delete(r.subs, id)
		r.subMu.Unlock()
	}
}

// ReplaceAll swaps the whole collection, keeping server order.
func (r *Registry) ReplaceAll(clients []models.Client) {
	r.mu.Lock()
	r.clients = append([]models.Client(nil), clients...)
	r.mu.Unlock()
	r.notify()
}

// Append adds one record to the end, after a successful create.
func (r *Registry) Append(c models.Client) {
	r.mu.Lock()
	r.clients = append(r.clients, c)
	r.mu.Unlock()
	r.notify()
}

// ReplaceByID swaps the record with the same id in place. Returns false and
// notifies nobody when the id is unknown.
func (r *Registry) ReplaceByID(c models.Client) bool {
	r.mu.Lock()
	replaced := false
	for i := range r.clients {
		if r.clients[i].ID == c.ID {
			r.clients[i] = c
			replaced = true
			break
		}
	}
	r.mu.Unlock()
	if replaced {
		r.notify()
	}
	return replaced
}

// RemoveByID drops the record with the given id. Returns false when absent.
func (r *Registry) RemoveByID(id string) bool {
	r.mu.Lock()
	removed := false
	for i := range r.clients {
		if r.clients[i].ID == id {
			r.clients = append(r.clients[:i], r.clients[i+1:]...)
			removed = true
			break
		}
	}
	r.mu.Unlock()
	if removed {
		r.notify()
	}
	return removed
}

// ToggleExpanded flips the transient accordion flag of one record.
func (r *Registry) ToggleExpanded(id string) {
	r.mu.Lock()
	for i := range r.clients {
		if r.clients[i].ID == id {
			r.clients[i].Expanded = !r.clients[i].Expanded
			break
		}
	}
	r.mu.Unlock()
	r.notify()
}

// Get looks a record up by id.
func (r *Registry) Get(id string) (models.Client, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.clients {
		if r.clients[i].ID == id {
			return r.clients[i], true
		}
	}
	return models.Client{}, false
}

// All returns a snapshot of the collection in order.
func (r *Registry) All() []models.Client {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]models.Client(nil), r.clients...)
}

// Len returns the number of records.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.clients)
}

func (r *Registry) notify() {
	snapshot := r.All()
	r.subMu.Lock()
	fns := make([]func([]models.Client), 0, len(r.subs))
	for _, fn := range r.subs {
		fns = append(fns, fn)
	}
	r.subMu.Unlock()
	for _, fn := range fns {
		fn(snapshot)
	}
}
