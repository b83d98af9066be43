package api

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"

	pdfapi "github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/diewo77/billing-client/internal/models"
)

// ListInvoices fetches the full invoice collection. GET /invoices.
func (g *Gateway) ListInvoices(ctx context.Context) ([]models.Invoice, error) {
	var invoices []models.Invoice
	err := g.do(ctx, "invoices", "list", http.MethodGet, "/invoices", nil, &invoices, true)
	return invoices, err
}

// CreateInvoice persists a new invoice and returns it with the
// server-assigned id and invoice reference. POST /invoices.
func (g *Gateway) CreateInvoice(ctx context.Context, inv models.Invoice) (models.Invoice, error) {
	var created models.Invoice
	err := g.do(ctx, "invoices", "create", http.MethodPost, "/invoices", inv, &created, true)
	return created, err
}

// UpdateInvoice replaces an invoice in full. PUT /invoices/{id}.
func (g *Gateway) UpdateInvoice(ctx context.Context, inv models.Invoice) (models.Invoice, error) {
	var updated models.Invoice
	err := g.do(ctx, "invoices", "update", http.MethodPut, "/invoices/"+url.PathEscape(inv.ID), inv, &updated, true)
	return updated, err
}

// DeleteInvoice removes an invoice. DELETE /invoices/{id}.
func (g *Gateway) DeleteInvoice(ctx context.Context, id string) error {
	return g.do(ctx, "invoices", "delete", http.MethodDelete, "/invoices/"+url.PathEscape(id), nil, nil, true)
}

// DownloadDocument fetches the rendered invoice document and checks it is a
// well-formed PDF before handing it over, so a corrupt download fails here
// instead of inside the print dialog. GET /invoices/download/{id}.
func (g *Gateway) DownloadDocument(ctx context.Context, id string) ([]byte, error) {
	data, err := g.raw(ctx, "invoice document", "download", http.MethodGet, "/invoices/download/"+url.PathEscape(id))
	if err != nil {
		return nil, err
	}
	if err := pdfapi.Validate(bytes.NewReader(data), nil); err != nil {
		return nil, fmt.Errorf("downloaded document for invoice %s is not a valid PDF: %w", id, err)
	}
	return data, nil
}
