package rest

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/casedesk-backend/internal/domain"
)

type ledgerVerifier interface {
	VerifyLedger(ctx context.Context) ([]domain.CaseMismatch, error)
}

type cooldownAdmin interface {
	List(ctx context.Context, now time.Time) ([]domain.Cooldown, error)
	Clear(ctx context.Context, key string) error
}

// AdminHandler serves operator endpoints. Routes are mounted behind
// middleware.RequireAdmin.
type AdminHandler struct {
	ledger    ledgerVerifier
	cooldowns cooldownAdmin
	out       presenter
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(ledger ledgerVerifier, cooldowns cooldownAdmin, logger *slog.Logger, production bool) *AdminHandler {
	return &AdminHandler{
		ledger:    ledger,
		cooldowns: cooldowns,
		out:       presenter{log: logger.With("handler", "admin"), production: production},
	}
}

type ledgerReport struct {
	Consistent bool               `json:"consistent"`
	Mismatches []mismatchResponse `json:"mismatches"`
}

type cooldownResponse struct {
	EndpointKey string    `json:"endpointKey"`
	Until       time.Time `json:"until"`
	Reason      string    `json:"reason"`
}

// VerifyLedger handles GET /admin/ledger/verify.
func (h *AdminHandler) VerifyLedger(w http.ResponseWriter, r *http.Request) {
	mismatches, err := h.ledger.VerifyLedger(r.Context())
	if err != nil {
		h.out.error(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ledgerReport{
		Consistent: len(mismatches) == 0,
		Mismatches: toMismatchResponses(mismatches),
	})
}

// ListCooldowns handles GET /admin/cooldowns.
func (h *AdminHandler) ListCooldowns(w http.ResponseWriter, r *http.Request) {
	items, err := h.cooldowns.List(r.Context(), time.Now())
	if err != nil {
		h.out.error(w, r, err)
		return
	}
	out := make([]cooldownResponse, len(items))
	for i, c := range items {
		out[i] = cooldownResponse{EndpointKey: c.EndpointKey, Until: c.Until, Reason: c.Reason}
	}
	writeJSON(w, http.StatusOK, out)
}

// ClearCooldown handles DELETE /admin/cooldowns/{key}. Keys contain colons,
// so clients path-escape them.
func (h *AdminHandler) ClearCooldown(w http.ResponseWriter, r *http.Request) {
	key, err := url.PathUnescape(chi.URLParam(r, "key"))
	if err != nil || key == "" {
		h.out.error(w, r, domain.NewValidationError("key", "invalid cooldown key"))
		return
	}
	if err := h.cooldowns.Clear(r.Context(), key); err != nil {
		h.out.error(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
