package app

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"

	"github.com/diewo77/billing-client/internal/logger"
	"github.com/diewo77/billing-client/internal/models"
	"github.com/diewo77/billing-client/internal/validation"
)

// FetchProfile loads the company profile.
func (a *App) FetchProfile(ctx context.Context) (models.CompanyProfile, error) {
	return a.gw.GetProfile(logger.WithAction(ctx, "profile.fetch"))
}

// FinishOnboarding submits the record collected by the wizard. Navigation
// never blocked on validation, so the remaining violations are returned for
// display while the server stays the final authority.
func (a *App) FinishOnboarding(ctx context.Context, w *validation.Wizard) (models.CompanyProfile, validation.Violations, error) {
	violations := w.AllViolations()
	values := w.Values()

	profile := models.CompanyProfile{
		CompanyName:        values["company_name"],
		FiscalCode:         values["fisical_code"],
		Address:            values["address"],
		ZipCode:            values["zip_code"],
		Country:            values["country"],
		Phone:              values["phone"],
		Email:              values["email"],
		LocalCurrency:      values["local_currency"],
		LocalTaxPercentage: values["local_tax_percentage"],
	}

	created, err := a.gw.CreateProfile(logger.WithAction(ctx, "profile.create"), profile)
	if err != nil {
		return models.CompanyProfile{}, violations, err
	}
	return created, violations, nil
}

// UpdateProfile applies a partial update to the company profile.
func (a *App) UpdateProfile(ctx context.Context, patch models.ProfilePatch) (models.CompanyProfile, error) {
	const action = "profile.update"
	if _, err := a.guard.Begin(action); err != nil {
		return models.CompanyProfile{}, err
	}
	defer a.guard.End(action)

	return a.gw.PatchProfile(logger.WithAction(ctx, action), patch)
}

// SetPicture reads an image file and uploads it base64-encoded. Any image
// resizing or compression happened before the file was handed over.
func (a *App) SetPicture(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read picture file: %w", err)
	}
	encoded := base64.StdEncoding.EncodeToString(data)
	return a.gw.SetPicture(logger.WithAction(ctx, "profile.picture.set"), encoded)
}

// DeletePicture removes the company logo.
func (a *App) DeletePicture(ctx context.Context) error {
	return a.gw.DeletePicture(logger.WithAction(ctx, "profile.picture.delete"))
}
