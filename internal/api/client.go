// Package api is the remote data gateway: one method per (resource, verb)
// pair of the invoicing REST API. Every authenticated call reads the bearer
// credential from the session store first; a missing or expired credential
// is a precondition failure reported before any network attempt.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/diewo77/billing-client/internal/config"
	"github.com/diewo77/billing-client/internal/logger"
	"github.com/diewo77/billing-client/internal/session"
)

const defaultRetryWaitMax = 5 * time.Second

// Gateway issues the CRUD calls and maps JSON responses to typed records.
// No response is cached; every caller owns its own snapshot.
type Gateway struct {
	client   *http.Client
	baseURL  string
	sessions *session.Store
	log      *slog.Logger
}

// New builds a gateway from config. Transport-level failures are retried up
// to cfg.RetryAttempts times; an HTTP response, whatever its status, is
// never retried — a failed call stays terminal for that user action.
func New(cfg config.Config, sessions *session.Store, log *slog.Logger) *Gateway {
	rc := retryablehttp.NewClient()
	rc.RetryMax = cfg.RetryAttempts
	rc.RetryWaitMin = time.Second
	rc.RetryWaitMax = defaultRetryWaitMax
	rc.HTTPClient.Timeout = cfg.HTTPTimeout
	rc.Logger = nil

	rc.CheckRetry = func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if err != nil {
			return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
		}
		return false, nil
	}

	return &Gateway{
		client:   rc.StandardClient(),
		baseURL:  strings.TrimRight(cfg.APIBaseURL, "/"),
		sessions: sessions,
		log:      log,
	}
}

// do runs one JSON round trip. body and out may be nil; authed attaches the
// bearer credential. Non-2xx responses come back as *APIError.
func (g *Gateway) do(ctx context.Context, resource, verb, method, path string, body, out any, authed bool) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal %s %s request: %w", resource, verb, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create %s %s request: %w", resource, verb, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	reqID := uuid.Must(uuid.NewV4()).String()
	req.Header.Set("X-Request-Id", reqID)
	ctx = logger.WithRequestID(ctx, reqID)

	if authed {
		token, err := g.sessions.Token()
		if err != nil {
			return err
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	g.log.DebugContext(ctx, "dispatching request", "resource", resource, "verb", verb, "method", method, "path", path)

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("send %s %s request: %w", resource, verb, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s %s response: %w", resource, verb, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := &APIError{Resource: resource, Verb: verb, Status: resp.StatusCode, Message: serverMessage(data)}
		g.log.WarnContext(ctx, "request failed", "resource", resource, "verb", verb, "status", resp.StatusCode)
		return apiErr
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode %s %s response: %w", resource, verb, err)
		}
	}
	return nil
}

// raw runs one authenticated round trip returning the body verbatim, for
// endpoints serving opaque byte streams.
func (g *Gateway) raw(ctx context.Context, resource, verb, method, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("create %s %s request: %w", resource, verb, err)
	}

	reqID := uuid.Must(uuid.NewV4()).String()
	req.Header.Set("X-Request-Id", reqID)
	ctx = logger.WithRequestID(ctx, reqID)

	token, err := g.sessions.Token()
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	g.log.DebugContext(ctx, "dispatching request", "resource", resource, "verb", verb, "method", method, "path", path)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send %s %s request: %w", resource, verb, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s %s response: %w", resource, verb, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &APIError{Resource: resource, Verb: verb, Status: resp.StatusCode, Message: serverMessage(data)}
	}
	return data, nil
}
