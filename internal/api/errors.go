package api

import (
	"encoding/json"
	"fmt"
	"strings"
)

// APIError is the single failure class for non-2xx responses. It names the
// resource and verb so callers can decide user messaging; Message carries
// server-supplied validation text when the server sent any.
type APIError struct {
	Resource string
	Verb     string
	Status   int
	Message  string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s %s failed: status %d: %s", e.Resource, e.Verb, e.Status, e.Message)
	}
	return fmt.Sprintf("%s %s failed: status %d", e.Resource, e.Verb, e.Status)
}

// serverMessage extracts {"error": "..."} from an error body, falling back
// to the trimmed raw text.
func serverMessage(body []byte) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	return strings.TrimSpace(string(body))
}
