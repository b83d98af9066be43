package app

import (
	"errors"
	"sync"
)

// ErrActionInFlight is returned when an action is re-triggered while a
// previous invocation is still outstanding; the duplicate is refused
// instead of producing a duplicate submission.
var ErrActionInFlight = errors.New("action already in flight")

// Guard hands out a monotonically increasing token per action. Completions
// whose token is no longer the latest must be discarded, which keeps racing
// responses from being applied out of order.
type Guard struct {
	mu       sync.Mutex
	tokens   map[string]uint64
	inflight map[string]bool
}

// NewGuard returns an empty guard.
func NewGuard() *Guard {
	return &Guard{
		tokens:   make(map[string]uint64),
		inflight: make(map[string]bool),
	}
}

// Begin claims the action and returns its token. A second Begin before End
// fails with ErrActionInFlight.
func (g *Guard) Begin(action string) (uint64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.inflight[action] {
		return 0, ErrActionInFlight
	}
	g.tokens[action]++
	g.inflight[action] = true
	return g.tokens[action], nil
}

// End releases the action.
func (g *Guard) End(action string) {
	g.mu.Lock()
	g.inflight[action] = false
	g.mu.Unlock()
}

// Latest reports whether token is still the newest issued for the action.
// Stale completions must not touch shared state.
func (g *Guard) Latest(action string, token uint64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.tokens[action] == token
}
