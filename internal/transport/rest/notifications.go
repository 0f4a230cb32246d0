package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/casedesk-backend/internal/domain"
	"github.com/heartmarshall/casedesk-backend/internal/service/notification"
)

type notificationService interface {
	List(ctx context.Context, customerID uuid.UUID, limit int) ([]domain.CustomerNotification, error)
	Refresh(ctx context.Context, customerID uuid.UUID) (notification.FeedResult, error)
}

// NotificationHandler serves the per-customer notification feed.
type NotificationHandler struct {
	svc notificationService
	out presenter
}

// NewNotificationHandler creates a NotificationHandler.
func NewNotificationHandler(svc notificationService, logger *slog.Logger, production bool) *NotificationHandler {
	return &NotificationHandler{svc: svc, out: presenter{log: logger.With("handler", "notifications"), production: production}}
}

type feedResponse struct {
	Fetched    int  `json:"fetched"`
	Inserted   int  `json:"inserted"`
	Suppressed bool `json:"suppressed"`
	Superseded bool `json:"superseded"`
}

// List handles GET /customers/{id}/notifications?limit=N, newest first.
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.out.error(w, r, err)
		return
	}
	limit, err := intQuery(r, "limit", 0)
	if err != nil {
		h.out.error(w, r, err)
		return
	}
	items, err := h.svc.List(r.Context(), id, limit)
	if err != nil {
		h.out.error(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toNotificationResponses(items))
}

// Refresh handles POST /customers/{id}/notifications/refresh. A suppressed
// refresh is a normal 200 with suppressed=true: the portal is cooling down.
func (h *NotificationHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.out.error(w, r, err)
		return
	}
	res, err := h.svc.Refresh(r.Context(), id)
	if err != nil {
		h.out.error(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, feedResponse{
		Fetched:    res.Fetched,
		Inserted:   res.Inserted,
		Suppressed: res.Suppressed,
		Superseded: res.Superseded,
	})
}
