package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/diewo77/billing-client/internal/models"
)

// ListClients fetches the full client collection. GET /clients.
func (g *Gateway) ListClients(ctx context.Context) ([]models.Client, error) {
	var clients []models.Client
	err := g.do(ctx, "clients", "list", http.MethodGet, "/clients", nil, &clients, true)
	return clients, err
}

// CreateClient creates a record and returns it with its server-assigned id.
// POST /clients.
func (g *Gateway) CreateClient(ctx context.Context, c models.Client) (models.Client, error) {
	var created models.Client
	err := g.do(ctx, "clients", "create", http.MethodPost, "/clients", c, &created, true)
	return created, err
}

// UpdateClient replaces a record in full. PUT /clients/{id}.
func (g *Gateway) UpdateClient(ctx context.Context, c models.Client) (models.Client, error) {
	var updated models.Client
	err := g.do(ctx, "clients", "update", http.MethodPut, "/clients/"+url.PathEscape(c.ID), c, &updated, true)
	return updated, err
}

// DeleteClient removes a record. DELETE /clients/{id}.
func (g *Gateway) DeleteClient(ctx context.Context, id string) error {
	return g.do(ctx, "clients", "delete", http.MethodDelete, "/clients/"+url.PathEscape(id), nil, nil, true)
}
