package api

import (
	"context"
	"net/http"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// Login exchanges credentials for a bearer token. POST /users/login.
func (g *Gateway) Login(ctx context.Context, username, password string) (string, error) {
	var resp tokenResponse
	err := g.do(ctx, "session", "login", http.MethodPost, "/users/login",
		credentialsRequest{Username: username, Password: password}, &resp, false)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}

// Register creates an account and returns its first token. POST /users/register.
func (g *Gateway) Register(ctx context.Context, username, password string) (string, error) {
	var resp tokenResponse
	err := g.do(ctx, "session", "register", http.MethodPost, "/users/register",
		credentialsRequest{Username: username, Password: password}, &resp, false)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// ChangePassword rotates the account password. POST /users/change-password.
func (g *Gateway) ChangePassword(ctx context.Context, current, next, confirm string) (string, error) {
	var resp messageResponse
	err := g.do(ctx, "password", "change", http.MethodPost, "/users/change-password",
		changePasswordRequest{CurrentPassword: current, NewPassword: next, ConfirmPassword: confirm}, &resp, true)
	if err != nil {
		return "", err
	}
	return resp.Message, nil
}
