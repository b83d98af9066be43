package app

import (
	"context"
	"fmt"

	"github.com/diewo77/billing-client/internal/logger"
	"github.com/diewo77/billing-client/internal/models"
)

// RefreshClients re-fetches the full collection and replaces the registry.
// A stale completion (superseded by a newer refresh) is discarded.
func (a *App) RefreshClients(ctx context.Context) error {
	const action = "clients.refresh"
	token, err := a.guard.Begin(action)
	if err != nil {
		return err
	}
	defer a.guard.End(action)

	ctx = logger.WithAction(ctx, action)
	clients, err := a.gw.ListClients(ctx)
	if err != nil {
		return err
	}
	if !a.guard.Latest(action, token) {
		a.log.DebugContext(ctx, "discarding stale refresh response")
		return nil
	}
	a.clients.ReplaceAll(clients)
	return nil
}

// AddClient creates a record and appends the server's copy to the registry.
func (a *App) AddClient(ctx context.Context, c models.Client) (models.Client, error) {
	if c.Country != "" && !models.ValidCountry(c.Country) {
		return models.Client{}, fmt.Errorf("unsupported country %q", c.Country)
	}

	const action = "clients.add"
	token, err := a.guard.Begin(action)
	if err != nil {
		return models.Client{}, err
	}
	defer a.guard.End(action)

	ctx = logger.WithAction(ctx, action)
	created, err := a.gw.CreateClient(ctx, c)
	if err != nil {
		return models.Client{}, err
	}
	if a.guard.Latest(action, token) {
		a.clients.Append(created)
	}
	return created, nil
}

// EditClient replaces a record in full and swaps the registry entry.
// Editing without a selected id aborts locally.
func (a *App) EditClient(ctx context.Context, c models.Client) (models.Client, error) {
	if c.ID == "" {
		return models.Client{}, fmt.Errorf("no client selected")
	}
	if c.Country != "" && !models.ValidCountry(c.Country) {
		return models.Client{}, fmt.Errorf("unsupported country %q", c.Country)
	}

	const action = "clients.edit"
	token, err := a.guard.Begin(action)
	if err != nil {
		return models.Client{}, err
	}
	defer a.guard.End(action)

	ctx = logger.WithAction(ctx, action)
	updated, err := a.gw.UpdateClient(ctx, c)
	if err != nil {
		return models.Client{}, err
	}
	if a.guard.Latest(action, token) {
		a.clients.ReplaceByID(updated)
	}
	return updated, nil
}

// DeleteClient removes a record after confirmation. A declined confirmation
// issues no network call and leaves the registry untouched.
func (a *App) DeleteClient(ctx context.Context, id string, confirm Confirm) error {
	if confirm != nil && !confirm("confirm_delete_client") {
		return nil
	}

	const action = "clients.delete"
	token, err := a.guard.Begin(action)
	if err != nil {
		return err
	}
	defer a.guard.End(action)

	ctx = logger.WithAction(ctx, action)
	if err := a.gw.DeleteClient(ctx, id); err != nil {
		return err
	}
	if a.guard.Latest(action, token) {
		a.clients.RemoveByID(id)
	}
	return nil
}

// ToggleClient flips a record's accordion flag. Purely local.
func (a *App) ToggleClient(id string) {
	a.clients.ToggleExpanded(id)
}
