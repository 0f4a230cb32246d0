package middleware

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/heartmarshall/casedesk-backend/internal/domain"
)

// Auth failure codes returned in the "code" field of 401 responses.
const (
	CodeUnauthenticated = "unauthenticated"
	CodeInvalidToken    = "invalid_token"
	CodeTokenExpired    = "token_expired"
)

// AuthErrorCode classifies an authentication failure. Clients use the code
// to decide between refreshing the session and logging in again.
func AuthErrorCode(err error) string {
	switch {
	case errors.Is(err, domain.ErrTokenExpired):
		return CodeTokenExpired
	case errors.Is(err, domain.ErrInvalidToken):
		return CodeInvalidToken
	default:
		return CodeUnauthenticated
	}
}

// ErrorBody is the JSON error envelope shared by middleware and handlers.
type ErrorBody struct {
	Error  string `json:"error"`
	Code   string `json:"code,omitempty"`
	Fields any    `json:"fields,omitempty"`
}

// WriteError writes an ErrorBody with the given status.
func WriteError(w http.ResponseWriter, status int, body ErrorBody) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body) //nolint:errcheck
}

func writeUnauthorized(w http.ResponseWriter, err error) {
	WriteError(w, http.StatusUnauthorized, ErrorBody{Error: "unauthorized", Code: AuthErrorCode(err)})
}
