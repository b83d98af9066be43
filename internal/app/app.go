// Package app is the action layer: one method per user-initiated action.
// Each action owns its failure boundary — a failure never corrupts state
// used by unrelated actions, and nothing is retried automatically.
package app

import (
	"log/slog"

	"github.com/diewo77/billing-client/internal/api"
	"github.com/diewo77/billing-client/internal/registry"
	"github.com/diewo77/billing-client/internal/session"
)

// Confirm asks the user a yes/no question before a destructive action.
// A false return aborts the action without any network call.
type Confirm func(message string) bool

// App wires the gateway, the shared client registry and the session store.
type App struct {
	gw       *api.Gateway
	clients  *registry.Registry
	sessions *session.Store
	guard    *Guard
	log      *slog.Logger
}

// New assembles the action layer.
func New(gw *api.Gateway, clients *registry.Registry, sessions *session.Store, log *slog.Logger) *App {
	return &App{
		gw:       gw,
		clients:  clients,
		sessions: sessions,
		guard:    NewGuard(),
		log:      log,
	}
}

// Clients exposes the shared registry for consumers that subscribe to it.
func (a *App) Clients() *registry.Registry {
	return a.clients
}
