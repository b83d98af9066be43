package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/diewo77/billing-client/internal/form"
	"github.com/diewo77/billing-client/internal/logger"
	"github.com/diewo77/billing-client/internal/models"
	"github.com/diewo77/billing-client/internal/validation"
)

// ValidationError carries the per-field violations a draft failed with.
type ValidationError struct {
	Violations validation.Violations
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Violations))
	for f, msg := range e.Violations {
		fields = append(fields, f+": "+msg)
	}
	sort.Strings(fields)
	return "validation failed: " + strings.Join(fields, "; ")
}

// ListInvoices fetches the invoice collection. Each screen keeps its own
// snapshot; nothing is shared or reconciled with the client registry.
func (a *App) ListInvoices(ctx context.Context) ([]models.Invoice, error) {
	return a.gw.ListInvoices(logger.WithAction(ctx, "invoices.list"))
}

// AddInvoice promotes the draft and persists it. Unparsable numeric input
// comes back as *ValidationError before any network attempt.
func (a *App) AddInvoice(ctx context.Context, draft *form.Draft) (models.Invoice, error) {
	inv, violations := draft.Build()
	if !violations.Empty() {
		return models.Invoice{}, &ValidationError{Violations: violations}
	}

	const action = "invoices.add"
	if _, err := a.guard.Begin(action); err != nil {
		return models.Invoice{}, err
	}
	defer a.guard.End(action)

	return a.gw.CreateInvoice(logger.WithAction(ctx, action), inv)
}

// UpdateInvoice promotes the draft and replaces the stored invoice.
// Editing without a selected id aborts locally.
func (a *App) UpdateInvoice(ctx context.Context, draft *form.Draft) (models.Invoice, error) {
	if draft.ID() == "" {
		return models.Invoice{}, fmt.Errorf("no invoice selected")
	}

	inv, violations := draft.Build()
	if !violations.Empty() {
		return models.Invoice{}, &ValidationError{Violations: violations}
	}

	const action = "invoices.update"
	if _, err := a.guard.Begin(action); err != nil {
		return models.Invoice{}, err
	}
	defer a.guard.End(action)

	return a.gw.UpdateInvoice(logger.WithAction(ctx, action), inv)
}

// DeleteInvoice removes an invoice after confirmation. A declined
// confirmation issues no network call.
func (a *App) DeleteInvoice(ctx context.Context, id string, confirm Confirm) error {
	if confirm != nil && !confirm("confirm_delete_invoice") {
		return nil
	}

	const action = "invoices.delete"
	if _, err := a.guard.Begin(action); err != nil {
		return err
	}
	defer a.guard.End(action)

	return a.gw.DeleteInvoice(logger.WithAction(ctx, action), id)
}

// PrintInvoice downloads the rendered document and writes it next to the
// other temp files as <id>.pdf, returning the path for the platform
// print/share hand-off.
func (a *App) PrintInvoice(ctx context.Context, id string) (string, error) {
	const action = "invoices.print"
	if _, err := a.guard.Begin(action); err != nil {
		return "", err
	}
	defer a.guard.End(action)

	data, err := a.gw.DownloadDocument(logger.WithAction(ctx, action), id)
	if err != nil {
		return "", err
	}

	path := filepath.Join(os.TempDir(), id+".pdf")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("write invoice document: %w", err)
	}
	return path, nil
}
