package api

import (
	"context"
	"net/http"

	"github.com/diewo77/billing-client/internal/models"
)

// GetProfile fetches the company profile. GET /users/profile.
func (g *Gateway) GetProfile(ctx context.Context) (models.CompanyProfile, error) {
	var p models.CompanyProfile
	err := g.do(ctx, "profile", "get", http.MethodGet, "/users/profile", nil, &p, true)
	return p, err
}

// CreateProfile creates the singleton profile at the end of onboarding.
// POST /users/profile.
func (g *Gateway) CreateProfile(ctx context.Context, p models.CompanyProfile) (models.CompanyProfile, error) {
	var created models.CompanyProfile
	err := g.do(ctx, "profile", "create", http.MethodPost, "/users/profile", p, &created, true)
	return created, err
}

// PatchProfile applies a partial update. PATCH /users/profile.
func (g *Gateway) PatchProfile(ctx context.Context, patch models.ProfilePatch) (models.CompanyProfile, error) {
	var updated models.CompanyProfile
	err := g.do(ctx, "profile", "update", http.MethodPatch, "/users/profile", patch, &updated, true)
	return updated, err
}

type pictureRequest struct {
	Picture string `json:"picture"`
}

// SetPicture replaces the company logo with base64-encoded image bytes.
// PATCH /users/profile/picture.
func (g *Gateway) SetPicture(ctx context.Context, pictureBase64 string) error {
	return g.do(ctx, "profile picture", "update", http.MethodPatch, "/users/profile/picture",
		pictureRequest{Picture: pictureBase64}, nil, true)
}

// DeletePicture removes the company logo. DELETE /users/profile/picture.
func (g *Gateway) DeletePicture(ctx context.Context) error {
	return g.do(ctx, "profile picture", "delete", http.MethodDelete, "/users/profile/picture", nil, nil, true)
}
