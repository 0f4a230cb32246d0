package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/casedesk-backend/internal/domain"
	"github.com/heartmarshall/casedesk-backend/internal/transport/middleware"
	"github.com/heartmarshall/casedesk-backend/pkg/ctxutil"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	middleware.WriteError(w, status, middleware.ErrorBody{Error: message, Code: code})
}

// transitionErrorBody reports both sides of a rejected move so the client
// can refresh its view of the case.
type transitionErrorBody struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	Current   string `json:"current"`
	Attempted string `json:"attempted"`
}

type fieldErrorBody struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// presenter maps service errors to HTTP responses. Outside production the
// text of unexpected errors is returned to help debugging.
type presenter struct {
	log        *slog.Logger
	production bool
}

func (p presenter) error(w http.ResponseWriter, r *http.Request, err error) {
	var (
		verr *domain.ValidationError
		terr *domain.TransitionError
	)
	switch {
	case errors.As(err, &verr):
		fields := make([]fieldErrorBody, len(verr.Errors))
		for i, f := range verr.Errors {
			fields[i] = fieldErrorBody{Field: f.Field, Message: f.Message}
		}
		middleware.WriteError(w, http.StatusBadRequest, middleware.ErrorBody{
			Error: "validation failed", Code: "validation", Fields: fields,
		})
	case errors.As(err, &terr):
		writeJSON(w, http.StatusUnprocessableEntity, transitionErrorBody{
			Error:     terr.Error(),
			Code:      "illegal_transition",
			Current:   terr.Current.String(),
			Attempted: terr.Attempted.String(),
		})
	case errors.Is(err, domain.ErrTokenExpired),
		errors.Is(err, domain.ErrInvalidToken),
		errors.Is(err, domain.ErrUnauthenticated):
		writeError(w, http.StatusUnauthorized, middleware.AuthErrorCode(err), "unauthorized")
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "invalid_credentials", "unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden", "forbidden")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", "not found")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "already_exists", "already exists")
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "conflict", "conflict")
	default:
		p.log.ErrorContext(r.Context(), "request failed",
			slog.String("error", err.Error()),
			slog.String("path", r.URL.Path),
			slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())))
		msg := "internal server error"
		if !p.production {
			msg = err.Error()
		}
		code := "internal"
		if errors.Is(err, domain.ErrLedgerWrite) {
			code = "ledger_write"
		}
		writeError(w, http.StatusInternalServerError, code, msg)
	}
}

func decode(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return domain.NewValidationError("body", "invalid JSON: "+err.Error())
	}
	return nil
}

func uuidParam(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, domain.NewValidationError(name, "invalid id")
	}
	return id, nil
}

func intQuery(r *http.Request, name string, def int) (int, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, domain.NewValidationError(name, "must be a non-negative integer")
	}
	return n, nil
}
